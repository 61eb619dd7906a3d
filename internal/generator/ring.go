package generator

import "github.com/sbj42/hidoku/internal/core"

// tryRing implements the RING clue pattern (spec §4.6): keep only the
// rectangular ring of cells at distance 1 from the border, verify, and let
// the caller restart from a fresh path if the instance isn't uniquely
// solvable.
func tryRing(params Params, full core.Grid, progress Progress, attempt int) (core.Grid, bool) {
	puzzle := full.Clone()
	for y := 0; y < params.H; y++ {
		for x := 0; x < params.W; x++ {
			if !onRing(x, y, params.W, params.H) {
				puzzle.Set(x, y, 0)
			}
		}
	}

	if progress != nil {
		progress(attempt, "verify-ring")
	}

	budget := stepBudget(params.Diagonal, core.PatternRing)
	if !verify(puzzle, params, MaxGapLength, budget, params.Difficulty) {
		return core.Grid{}, false
	}
	return puzzle, true
}

// onRing reports whether (x,y) lies on the ring exactly 1 cell in from the
// border (i.e. x==1 or x==W-2 or y==1 or y==H-2, within the interior).
func onRing(x, y, w, h int) bool {
	if x < 1 || x > w-2 || y < 1 || y > h-2 {
		return false
	}
	return x == 1 || x == w-2 || y == 1 || y == h-2
}
