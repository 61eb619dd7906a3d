package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbj42/hidoku/internal/core"
	"github.com/sbj42/hidoku/internal/solve"
)

// TestGeneratorRot2Fidelity is spec §8 scenario 6: a ROT2 puzzle's
// non-zero cell set must be centrally symmetric and solvable by
// deduction alone.
func TestGeneratorRot2Fidelity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	grid, err := GeneratePuzzle(Params{
		W: 7, H: 7,
		Pattern:    core.PatternRot2,
		Difficulty: core.DifficultyEasy,
	}, rng, nil)
	require.NoError(t, err)

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			mx, my := grid.W-1-x, grid.H-1-y
			isSet := grid.At(x, y) != 0
			mirrorSet := grid.At(mx, my) != 0
			require.Equalf(t, isSet, mirrorSet, "cell (%d,%d) and its mirror (%d,%d) disagree", x, y, mx, my)
		}
	}

	_, ok := solve.Solve(grid, solve.Options{MaxGapLength: -1, MaxDifficulty: core.DifficultyEasy})
	require.True(t, ok, "ROT2 puzzle must be solvable by deduction alone")
}

// TestGeneratorKeepEnds checks that clues 1 and A survive when KeepEnds is
// set (spec §8).
func TestGeneratorKeepEnds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid, err := GeneratePuzzle(Params{
		W: 5, H: 5,
		Pattern:    core.PatternNone,
		KeepEnds:   true,
		Difficulty: core.DifficultyHard,
	}, rng, nil)
	require.NoError(t, err)

	a := grid.W * grid.H
	require.Contains(t, grid.Cells, 1)
	require.Contains(t, grid.Cells, a)
}

// TestGeneratorCorrectness checks every generated puzzle is uniquely
// solvable (spec §8's generator correctness property).
func TestGeneratorCorrectness(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	grid, err := GeneratePuzzle(Params{
		W: 6, H: 6,
		Pattern:    core.PatternNone,
		Difficulty: core.DifficultyHard,
	}, rng, nil)
	require.NoError(t, err)

	_, ok := solve.Solve(grid, solve.Options{
		MaxGapLength:  -1,
		MaxDifficulty: core.DifficultyHard,
		UniqueOnly:    true,
		StepLimit:     500000,
	})
	require.True(t, ok)
}
