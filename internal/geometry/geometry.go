// Package geometry provides the cell adjacency and distance primitives
// (spec §4.1): neighbour enumeration and Manhattan/Chebyshev distance, for
// both orthogonal and diagonal adjacency modes. Stateless and deterministic,
// in the style of the teacher's internal/sudoku/human grid helpers.
package geometry

import "github.com/sbj42/hidoku/internal/core"

// dirs4 lists the four orthogonal step directions in the fixed enumeration
// order spec §4.5 requires: N, E, S, W.
var dirs4 = [4]core.Location{
	{X: 0, Y: -1}, // N
	{X: 1, Y: 0},  // E
	{X: 0, Y: 1},  // S
	{X: -1, Y: 0}, // W
}

// dirs8 lists the diagonal step directions appended after dirs4 when
// diagonal adjacency is enabled: NE, SE, SW, NW.
var dirs8 = [4]core.Location{
	{X: 1, Y: -1}, // NE
	{X: 1, Y: 1},  // SE
	{X: -1, Y: 1}, // SW
	{X: -1, Y: -1}, // NW
}

// Neighbours returns the in-bounds neighbours of (x,y) in the fixed
// N,E,S,W[,NE,SE,SW,NW] order.
func Neighbours(w, h int, diagonal bool, x, y int) []core.Location {
	out := make([]core.Location, 0, 8)
	for _, d := range dirs4 {
		nx, ny := x+d.X, y+d.Y
		if nx >= 0 && nx < w && ny >= 0 && ny < h {
			out = append(out, core.Location{X: nx, Y: ny})
		}
	}
	if diagonal {
		for _, d := range dirs8 {
			nx, ny := x+d.X, y+d.Y
			if nx >= 0 && nx < w && ny >= 0 && ny < h {
				out = append(out, core.Location{X: nx, Y: ny})
			}
		}
	}
	return out
}

// NeighboursExcept returns Neighbours(x,y) with ex filtered out.
func NeighboursExcept(w, h int, diagonal bool, x, y int, ex core.Location) []core.Location {
	all := Neighbours(w, h, diagonal, x, y)
	out := all[:0:0]
	for _, l := range all {
		if l != ex {
			out = append(out, l)
		}
	}
	return out
}

// Distance is Manhattan distance in orthogonal mode, Chebyshev in diagonal
// mode, per spec §3.
func Distance(a, b core.Location, diagonal bool) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if diagonal {
		return max(dx, dy)
	}
	return dx + dy
}

// AreNeighbours reports whether a and b are adjacent under the given
// adjacency rule (distance exactly 1).
func AreNeighbours(a, b core.Location, diagonal bool) bool {
	return Distance(a, b, diagonal) == 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
