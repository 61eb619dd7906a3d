// Package core holds the grid/path/gap data model shared by the path
// generator, the solver and the puzzle generator.
package core

import "fmt"

// NoCoord marks a Location as "not on the grid" (the §3 sentinel location).
const NoCoord = -1

// Location is a single grid cell coordinate.
type Location struct {
	X, Y int
}

// NoLocation is the sentinel value for "no location known".
var NoLocation = Location{X: NoCoord, Y: NoCoord}

// IsNone reports whether l is the sentinel "no location" value.
func (l Location) IsNone() bool {
	return l.X == NoCoord
}

func (l Location) String() string {
	if l.IsNone() {
		return "(none)"
	}
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Path is an ordered sequence of locations, consecutive entries adjacent.
type Path []Location

// Grid is a row-major W*H array of cell values. 0 means empty, otherwise
// the cell holds a number in 1..W*H.
type Grid struct {
	W, H  int
	Cells []int
}

// NewGrid allocates an empty W*H grid.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h, Cells: make([]int, w*h)}
}

// Area returns W*H.
func (g Grid) Area() int {
	return g.W * g.H
}

func (g Grid) index(x, y int) int {
	return y*g.W + x
}

// At returns the value at (x,y).
func (g Grid) At(x, y int) int {
	return g.Cells[g.index(x, y)]
}

// AtLoc returns the value at location l.
func (g Grid) AtLoc(l Location) int {
	return g.At(l.X, l.Y)
}

// Set writes v at (x,y).
func (g Grid) Set(x, y, v int) {
	g.Cells[g.index(x, y)] = v
}

// SetLoc writes v at location l.
func (g Grid) SetLoc(l Location, v int) {
	g.Set(l.X, l.Y, v)
}

// InBounds reports whether (x,y) is within the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]int, len(g.Cells))
	copy(cells, g.Cells)
	return Grid{W: g.W, H: g.H, Cells: cells}
}

// Locate scans the grid for the cell holding n, returning NoLocation if
// absent. Used sparingly (bulk callers should build a map via LocationsOf).
func (g Grid) Locate(n int) Location {
	for i, v := range g.Cells {
		if v == n {
			return Location{X: i % g.W, Y: i / g.W}
		}
	}
	return NoLocation
}

// LocationsOf builds a number -> location map for every non-zero cell.
func (g Grid) LocationsOf() map[int]Location {
	m := make(map[int]Location, len(g.Cells))
	for i, v := range g.Cells {
		if v != 0 {
			m[v] = Location{X: i % g.W, Y: i / g.W}
		}
	}
	return m
}

// ToPath reads a fully solved grid back into a path ordered 1..A.
func (g Grid) ToPath() Path {
	a := g.Area()
	locs := g.LocationsOf()
	path := make(Path, a)
	for n := 1; n <= a; n++ {
		path[n-1] = locs[n]
	}
	return path
}

// PathToGrid renders a path into a grid, cell of path[i] holding i+1.
func PathToGrid(w, h int, path Path) Grid {
	g := NewGrid(w, h)
	for i, l := range path {
		g.SetLoc(l, i+1)
	}
	return g
}

// Gap is a maximal run of empty cells bracketed by two numbered cells, as
// defined in spec §3. N1==0/L1==NoLocation marks an open low end; N2==A+1/
// L2==NoLocation marks an open high end.
type Gap struct {
	N1 int
	L1 Location
	N2 int
	L2 Location
}

// Length is the count of missing numbers in the gap (n2-n1-1).
func (g Gap) Length() int {
	return g.N2 - g.N1 - 1
}

// Open reports whether either end of the gap is open-ended.
func (g Gap) Open() bool {
	return g.L1.IsNone() || g.L2.IsNone()
}

// Difficulty selects whether the solver may recurse (HARD) or must solve
// purely by deduction (EASY), per spec §4.6/§6.
type Difficulty string

const (
	DifficultyEasy Difficulty = "EASY"
	DifficultyHard Difficulty = "HARD"
)

// Pattern is a clue-removal constraint recognised by the puzzle generator.
type Pattern string

const (
	PatternNone   Pattern = "NONE"
	PatternRot2   Pattern = "ROT2"
	PatternRing   Pattern = "RING"
	PatternBorder Pattern = "BORDER"
)
