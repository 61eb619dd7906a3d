package solve

import "github.com/sbj42/hidoku/internal/core"

// Options bundles the solve() parameters from spec §6.2.
type Options struct {
	Diagonal      bool
	MaxGapLength  int        // -1 disables the longest-gap prefilter
	MaxDifficulty core.Difficulty
	StepLimit     int // <=0 disables the step budget
	UniqueOnly    bool
}

// Solve is the package's external entry point (spec §6.2): fills a
// partially-filled grid, returning the solved grid and true on success, or
// an empty grid and false if there is no solution, no unique solution (when
// UniqueOnly is set), or the step budget was exhausted before a unique
// solution could be confirmed.
func Solve(grid core.Grid, opts Options) (core.Grid, bool) {
	state := NewState(grid, opts.Diagonal, opts.MaxGapLength, opts.StepLimit)

	if opts.MaxDifficulty == core.DifficultyEasy {
		if state.ExceedsMaxGapLength() {
			return core.Grid{}, false
		}
		if !state.Fixpoint() || len(state.Gaps) != 0 {
			return core.Grid{}, false
		}
		return state.Grid, true
	}

	result := RecursiveSolve(state, opts.UniqueOnly)
	if !result.Found {
		return core.Grid{}, false
	}
	if opts.UniqueOnly && (result.Multiple || result.Aborted) {
		return core.Grid{}, false
	}
	return result.Solution, true
}
