// Package solve implements the gap model (spec §4.3), the deductive
// fixpoint solver (§4.4) and the recursive backtracking solver (§4.5).
// These three are kept in one package because they share a single
// mutable State, cloned wholesale before every speculative recursive
// branch — mirroring how the teacher's internal/sudoku/human package
// bundles its Board state together with the techniques that mutate it.
package solve

import (
	"github.com/sbj42/hidoku/internal/core"
	"github.com/sbj42/hidoku/internal/geometry"
)

// Signal is the three-valued rule-application result from spec §4.4.
type Signal int

const (
	DidntMove Signal = iota
	Moved
	Unsolvable
)

// State is the solver's working set: {W, H, diagonal flag, step budget,
// grid copy, gap list} from spec §3. A State is cloned before every
// speculative recursive step; each branch owns its clone.
type State struct {
	W, H         int
	Diagonal     bool
	A            int
	Grid         core.Grid
	Gaps         []core.Gap
	MaxGapLength int // -1 disables the longest-gap prefilter
	StepLimit    int // <=0 disables the step budget
}

// NewState builds a solver state from a partially-filled grid.
func NewState(grid core.Grid, diagonal bool, maxGapLength, stepLimit int) *State {
	gaps, _ := ComputeGaps(grid)
	return &State{
		W:            grid.W,
		H:            grid.H,
		Diagonal:     diagonal,
		A:            grid.Area(),
		Grid:         grid.Clone(),
		Gaps:         gaps,
		MaxGapLength: maxGapLength,
		StepLimit:    stepLimit,
	}
}

// Clone returns a deep copy of the state: a fresh grid array and a fresh
// gap slice, no shared references into the parent state.
func (s *State) Clone() *State {
	return &State{
		W:            s.W,
		H:            s.H,
		Diagonal:     s.Diagonal,
		A:            s.A,
		Grid:         s.Grid.Clone(),
		Gaps:         append([]core.Gap(nil), s.Gaps...),
		MaxGapLength: s.MaxGapLength,
		StepLimit:    s.StepLimit,
	}
}

func (s *State) at(l core.Location) int {
	return s.Grid.AtLoc(l)
}

func (s *State) set(l core.Location, v int) {
	s.Grid.SetLoc(l, v)
}

func (s *State) neighbours(l core.Location) []core.Location {
	return geometry.Neighbours(s.W, s.H, s.Diagonal, l.X, l.Y)
}

// LongestGap returns the longest gap length currently on the board.
func (s *State) LongestGap() int {
	longest := 0
	for _, g := range s.Gaps {
		if l := g.Length(); l > longest {
			longest = l
		}
	}
	return longest
}

// ExceedsMaxGapLength reports whether the prefilter should reject this
// state outright (spec §4.6's MAX_GAP_LENGTH cap on recursive depth).
func (s *State) ExceedsMaxGapLength() bool {
	if s.MaxGapLength < 0 {
		return false
	}
	return s.LongestGap() > s.MaxGapLength
}

func (s *State) removeGap(i int) {
	s.Gaps = append(s.Gaps[:i], s.Gaps[i+1:]...)
}
