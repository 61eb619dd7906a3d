package generator

import "github.com/sbj42/hidoku/internal/core"

// tryBorder implements the BORDER clue pattern (spec §4.6): keep only the
// outermost border cells with even x+y, force HARD difficulty, and widen
// the longest-gap cap to accommodate the larger corridors a sparse border
// leaves behind.
func tryBorder(params Params, full core.Grid, progress Progress, attempt int) (core.Grid, bool) {
	puzzle := full.Clone()
	for y := 0; y < params.H; y++ {
		for x := 0; x < params.W; x++ {
			if !onBorder(x, y, params.W, params.H) || (x+y)%2 != 0 {
				puzzle.Set(x, y, 0)
			}
		}
	}

	if progress != nil {
		progress(attempt, "verify-border")
	}

	maxGapLength := maxOf(params.W, params.H)
	if params.Difficulty == core.DifficultyHard {
		maxGapLength += 4
	}

	budget := stepBudget(params.Diagonal, core.PatternBorder)
	if !verify(puzzle, params, maxGapLength, budget, core.DifficultyHard) {
		return core.Grid{}, false
	}
	return puzzle, true
}

func onBorder(x, y, w, h int) bool {
	return x == 0 || x == w-1 || y == 0 || y == h-1
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
