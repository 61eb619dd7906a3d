// Package pathgen builds a random Hamiltonian path on a W*H grid (spec
// §4.2): a boustrophedon seed path, refined by an iterative backbite
// shuffle with a mid-budget full reversal. Grounded on the teacher's
// internal/sudoku/dp/solver.go fillGrid/rng pattern: a small injected PRNG
// drives a backtracking-adjacent construction, generalized here from
// digit-filling to path-shuffling.
package pathgen

import (
	"github.com/sbj42/hidoku/internal/core"
	"github.com/sbj42/hidoku/internal/geometry"
)

// DefaultShuffleFactor is the "5" tuning constant from spec §4.2: the
// shuffle budget is 2*DefaultShuffleFactor*A backbite operations.
const DefaultShuffleFactor = 5

// Rand is the minimal PRNG surface the generator needs; *math/rand.Rand
// satisfies it directly.
type Rand interface {
	Intn(n int) int
}

// RandomHamPath builds a random Hamiltonian path of length W*H using the
// default shuffle factor.
func RandomHamPath(w, h int, diagonal bool, rng Rand) core.Path {
	return RandomHamPathTuned(w, h, diagonal, rng, DefaultShuffleFactor)
}

// RandomHamPathTuned is RandomHamPath with an explicit shuffle-factor
// override (the default must remain DefaultShuffleFactor per spec §4.2).
func RandomHamPathTuned(w, h int, diagonal bool, rng Rand, shuffleFactor int) core.Path {
	path := boustrophedon(w, h)
	a := w * h
	k := 2 * shuffleFactor * a
	half := k / 2
	for i := 0; i < k; i++ {
		if i == half {
			reverse(path)
		}
		backbite(path, w, h, diagonal, rng)
	}
	return path
}

// boustrophedon builds the zig-zag seed path: row 0 left-to-right, row 1
// right-to-left, and so on.
func boustrophedon(w, h int) core.Path {
	path := make(core.Path, 0, w*h)
	for y := 0; y < h; y++ {
		if y%2 == 0 {
			for x := 0; x < w; x++ {
				path = append(path, core.Location{X: x, Y: y})
			}
		} else {
			for x := w - 1; x >= 0; x-- {
				path = append(path, core.Location{X: x, Y: y})
			}
		}
	}
	return path
}

// backbite performs one polymer-chain shuffle move (spec §4.2): pick a
// random neighbour q of the path's head (other than its current
// successor), find q's index j in the path, and reverse the prefix
// path[0:j]. This preserves the invariant that consecutive path entries
// remain adjacent.
func backbite(path core.Path, w, h int, diagonal bool, rng Rand) {
	p0 := path[0]
	p1 := path[1]
	candidates := geometry.NeighboursExcept(w, h, diagonal, p0.X, p0.Y, p1)
	if len(candidates) == 0 {
		return
	}
	q := candidates[rng.Intn(len(candidates))]
	j := indexOf(path, q)
	reversePrefix(path, j)
}

func indexOf(path core.Path, l core.Location) int {
	for i, v := range path {
		if v == l {
			return i
		}
	}
	return -1
}

func reversePrefix(path core.Path, j int) {
	for lo, hi := 0, j-1; lo < hi; lo, hi = lo+1, hi-1 {
		path[lo], path[hi] = path[hi], path[lo]
	}
}

func reverse(path core.Path) {
	for lo, hi := 0, len(path)-1; lo < hi; lo, hi = lo+1, hi-1 {
		path[lo], path[hi] = path[hi], path[lo]
	}
}
