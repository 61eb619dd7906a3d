package solve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/sbj42/hidoku/internal/core"
)

func gridFrom(w, h int, cells []int) core.Grid {
	g := core.NewGrid(w, h)
	copy(g.Cells, cells)
	return g
}

// TestDeductiveSolve44 is scenario 1 from spec §8: a 4x4 orthogonal puzzle
// solvable entirely by deduction.
func TestDeductiveSolve44(t *testing.T) {
	grid := gridFrom(4, 4, []int{
		0, 0, 4, 3,
		0, 0, 0, 0,
		0, 7, 0, 9,
		0, 0, 0, 0,
	})

	got, ok := Solve(grid, Options{MaxGapLength: -1, MaxDifficulty: core.DifficultyEasy})
	require.True(t, ok)

	want := []int{
		16, 5, 4, 3,
		15, 6, 1, 2,
		14, 7, 8, 9,
		13, 12, 11, 10,
	}
	if diff := cmp.Diff(want, got.Cells); diff != "" {
		t.Errorf("solved grid mismatch (-want +got):\n%s", diff)
	}
}

// TestStraightPathRule is scenario 2: the straight-path rule fills two
// corridors without recursion.
func TestStraightPathRule(t *testing.T) {
	grid := core.NewGrid(4, 4)
	grid.Set(0, 0, 10)
	grid.Set(3, 0, 7)
	grid.Set(1, 1, 12)
	grid.Set(2, 2, 2)
	grid.Set(0, 2, 16)
	grid.Set(1, 3, 14)

	state := NewState(grid, false, -1, 0)
	ok := state.Fixpoint()
	require.True(t, ok)

	// 7 at (3,0) -> 10 at (0,0): straight corridor along row 0.
	require.Equal(t, 8, state.Grid.At(2, 0))
	require.Equal(t, 9, state.Grid.At(1, 0))
	// 12 at (1,1) -> 14 at (1,3): straight corridor down column 1.
	require.Equal(t, 13, state.Grid.At(1, 2))
}

// TestUniquenessRejection is scenario 3: a sparsely-clued grid with many
// solutions must be rejected under unique_only.
func TestUniquenessRejection(t *testing.T) {
	grid := core.NewGrid(4, 4)
	grid.Set(0, 0, 1)

	_, ok := Solve(grid, Options{MaxGapLength: -1, MaxDifficulty: core.DifficultyHard, UniqueOnly: true, StepLimit: 100000})
	require.False(t, ok)
}

// TestOpenEndedGap is scenario 4: a 3x3 grid whose high end (6..9) is
// open-ended, solved with recursion enabled.
func TestOpenEndedGap(t *testing.T) {
	grid := core.NewGrid(3, 3)
	grid.Set(0, 0, 1)
	grid.Set(1, 1, 5)

	got, ok := Solve(grid, Options{MaxGapLength: -1, MaxDifficulty: core.DifficultyHard, StepLimit: 100000})
	require.True(t, ok)
	require.Equal(t, 1, got.At(0, 0))
	require.Equal(t, 5, got.At(1, 1))

	path := got.ToPath()
	require.Len(t, path, 9)
	for i := 1; i < len(path); i++ {
		require.True(t, dist1(path[i-1], path[i]))
	}
}

func dist1(a, b core.Location) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

func TestComputeGapsInvariants(t *testing.T) {
	grid := gridFrom(4, 4, []int{
		0, 0, 4, 3,
		0, 0, 0, 0,
		0, 7, 0, 9,
		0, 0, 0, 0,
	})
	gaps, longest := ComputeGaps(grid)
	require.NotEmpty(t, gaps)
	seen := map[int]bool{4: true, 3: true, 7: true, 9: true}
	for _, g := range gaps {
		require.Less(t, g.N1, g.N2)
		for n := g.N1 + 1; n < g.N2; n++ {
			require.False(t, seen[n], "number %d claimed by two gaps", n)
			seen[n] = true
		}
	}
	require.Equal(t, 16, len(seen))
	require.Greater(t, longest, 0)
}
