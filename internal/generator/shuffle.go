package generator

import "github.com/sbj42/hidoku/internal/core"

// tryShuffleRemoval implements the NONE and ROT2 clue patterns (spec
// §4.6): shuffle the cell positions (or just the first half for ROT2),
// and try removing each (with its rotational mirror, for ROT2), keeping
// the removal whenever the puzzle stays uniquely solvable. Grounded on
// the teacher's CarveGivens: shuffle candidate positions, clear one,
// verify, restore on failure.
func tryShuffleRemoval(params Params, full core.Grid, rng Rand, progress Progress, attempt int) (core.Grid, bool) {
	puzzle := full.Clone()
	a := params.W * params.H

	n := a
	if params.Pattern == core.PatternRot2 {
		n = (a + 1) / 2
	}

	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	shuffle(positions, rng)

	budget := stepBudget(params.Diagonal, params.Pattern)

	for step, pos := range positions {
		if progress != nil && step%64 == 0 {
			progress(attempt, "carve")
		}

		x, y := pos%params.W, pos/params.W
		var mirrorX, mirrorY int
		hasMirror := params.Pattern == core.PatternRot2
		if hasMirror {
			mirrorX, mirrorY = params.W-1-x, params.H-1-y
		}

		if params.KeepEnds && isEndNumber(puzzle, params, x, y, hasMirror, mirrorX, mirrorY) {
			continue
		}

		old := puzzle.At(x, y)
		var oldMirror int
		if hasMirror {
			oldMirror = puzzle.At(mirrorX, mirrorY)
		}
		puzzle.Set(x, y, 0)
		if hasMirror {
			puzzle.Set(mirrorX, mirrorY, 0)
		}

		if verify(puzzle, params, MaxGapLength, budget, params.Difficulty) {
			continue
		}

		puzzle.Set(x, y, old)
		if hasMirror {
			puzzle.Set(mirrorX, mirrorY, oldMirror)
		}
	}

	return puzzle, true
}

// isEndNumber reports whether removing (x,y) (or its ROT2 mirror) would
// blank clue 1 or clue A, which keep_ends forbids (spec §4.6).
func isEndNumber(puzzle core.Grid, params Params, x, y int, hasMirror bool, mx, my int) bool {
	a := params.W * params.H
	v := puzzle.At(x, y)
	if v == 1 || v == a {
		return true
	}
	if hasMirror {
		mv := puzzle.At(mx, my)
		if mv == 1 || mv == a {
			return true
		}
	}
	return false
}

func shuffle(positions []int, rng Rand) {
	for i := len(positions) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		positions[i], positions[j] = positions[j], positions[i]
	}
}
