// Package generator drives clue removal on top of a full Hamiltonian path
// (spec §4.6): starting from a complete solution, it removes clues while
// C4/C5 confirm unique solvability, honouring a clue pattern and a
// per-pattern difficulty/step budget. Grounded on the teacher's
// internal/sudoku/dp/solver.go CarveGivens/CarveGivensWithSubset: shuffle
// candidate cell positions, remove one at a time, verify, restore on
// failure — generalized here to pattern-constrained removal plus the
// whole-path-regeneration outer retry spec §4.6 requires for RING/BORDER.
package generator

import (
	"fmt"

	"github.com/sbj42/hidoku/internal/core"
	"github.com/sbj42/hidoku/internal/pathgen"
	"github.com/sbj42/hidoku/internal/solve"
)

// MaxGapLength caps recursive depth in the verifier during generation
// (spec §4.6's MAX_GAP_LENGTH).
const MaxGapLength = 9

// Params bundles generate_puzzle's parameters (spec §4.6).
type Params struct {
	W, H       int
	Diagonal   bool
	Pattern    core.Pattern
	KeepEnds   bool
	Difficulty core.Difficulty
}

// Rand is the PRNG surface the generator and path builder need.
type Rand interface {
	Intn(n int) int
}

// Progress is invoked at the start of each outer retry attempt (stage
// "path"), before each RING/BORDER verification ("verify-ring"/
// "verify-border") and every 64 candidate cells of NONE/ROT2 carving
// ("carve"), letting callers (the CLI's spinner, in particular) report how
// many whole-path regenerations a generation has needed.
type Progress func(attempt int, stage string)

// GeneratePuzzle implements spec §4.6's algorithm: build a random
// Hamiltonian path, blank cells per the requested pattern, verify unique
// solvability with the pattern's step budget, and restart from a fresh
// path whenever the pattern yields no uniquely-solvable instance.
func GeneratePuzzle(params Params, rng Rand, progress Progress) (core.Grid, error) {
	if err := validate(params); err != nil {
		return core.Grid{}, err
	}

	attempt := 0
	for {
		attempt++
		if progress != nil {
			progress(attempt, "path")
		}
		path := pathgen.RandomHamPath(params.W, params.H, params.Diagonal, rng)
		full := core.PathToGrid(params.W, params.H, path)

		puzzle, ok := tryPattern(params, full, rng, progress, attempt)
		if ok {
			return puzzle, nil
		}
	}
}

func validate(p Params) error {
	if p.W < 3 || p.H < 3 {
		return fmt.Errorf("generator: grid dimensions must be at least 3x3, got %dx%d", p.W, p.H)
	}
	if p.W*p.H > 99 {
		return fmt.Errorf("generator: grid area must be <= 99, got %d", p.W*p.H)
	}
	switch p.Pattern {
	case core.PatternNone, core.PatternRot2, core.PatternRing, core.PatternBorder:
	default:
		return fmt.Errorf("generator: unknown pattern %q", p.Pattern)
	}
	switch p.Difficulty {
	case core.DifficultyEasy, core.DifficultyHard:
	default:
		return fmt.Errorf("generator: unknown difficulty %q", p.Difficulty)
	}
	return nil
}

func tryPattern(params Params, full core.Grid, rng Rand, progress Progress, attempt int) (core.Grid, bool) {
	switch params.Pattern {
	case core.PatternRing:
		return tryRing(params, full, progress, attempt)
	case core.PatternBorder:
		return tryBorder(params, full, progress, attempt)
	default:
		return tryShuffleRemoval(params, full, rng, progress, attempt)
	}
}

func verify(grid core.Grid, params Params, maxGapLength, stepLimit int, difficulty core.Difficulty) bool {
	_, ok := solve.Solve(grid, solve.Options{
		Diagonal:      params.Diagonal,
		MaxGapLength:  maxGapLength,
		MaxDifficulty: difficulty,
		StepLimit:     stepLimit,
		UniqueOnly:    true,
	})
	return ok
}
