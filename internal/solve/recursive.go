package solve

import "github.com/sbj42/hidoku/internal/core"

// Result is the outcome of RecursiveSolve: the first solution found (nil if
// none), whether a second solution was also found (only tracked when
// uniqueOnly is set), and the number of recursive_solve entries made
// (spec §4.5's step counter).
type Result struct {
	Solution core.Grid
	Found    bool
	Multiple bool
	Aborted  bool // step budget exhausted before the search tree was proven exhausted
	Steps    int
}

// RecursiveSolve is the entry point from spec §4.5: runs the deductive
// fixpoint, then backtracks over the first remaining gap's anchored end,
// optionally continuing past the first solution to prove uniqueness.
func RecursiveSolve(s *State, uniqueOnly bool) Result {
	r := &Result{}
	recurse(s, uniqueOnly, r)
	return *r
}

func recurse(s *State, uniqueOnly bool, r *Result) bool {
	r.Steps++

	if !s.Fixpoint() {
		return false
	}

	if s.ExceedsMaxGapLength() {
		return false
	}

	if s.StepLimit > 0 && r.Steps > s.StepLimit {
		r.Aborted = true
		return true // abort: caller treats this as "cannot prove unique"
	}

	if len(s.Gaps) == 0 {
		if !r.Found {
			r.Found = true
			r.Solution = s.Grid.Clone()
			if !uniqueOnly {
				return true
			}
			return false // keep searching for a second solution
		}
		r.Multiple = true
		return true
	}

	gi := pickBranchGap(s)
	g := s.Gaps[gi]

	anchor := g.L1
	low := true
	if anchor.IsNone() {
		anchor = g.L2
		low = false
	}

	for _, nb := range s.neighbours(anchor) {
		if s.at(nb) != 0 {
			continue
		}
		clone := s.Clone()
		var ok bool
		if low {
			ok = clone.advanceLowEnd(gi, nb)
		} else {
			ok = clone.retreatHighEnd(gi, nb)
		}
		if !ok {
			continue
		}
		if recurse(clone, uniqueOnly, r) {
			return true
		}
	}
	return false
}

// pickBranchGap selects the gap with the smallest endpoint distance (spec
// §4.5's gap-ordering optimisation): short gaps constrain more tightly and
// branch less. Open-ended gaps collate last via a sentinel distance, with
// a stable scan giving a deterministic total order.
func pickBranchGap(s *State) int {
	best := 0
	bestDist := gapBranchDistance(s, s.Gaps[0])
	for i := 1; i < len(s.Gaps); i++ {
		d := gapBranchDistance(s, s.Gaps[i])
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

const openEndedSentinelDistance = 1 << 30

func gapBranchDistance(s *State, g core.Gap) int {
	if g.Open() {
		return openEndedSentinelDistance
	}
	dx := g.L1.X - g.L2.X
	dy := g.L1.Y - g.L2.Y
	if s.Diagonal {
		return max(abs(dx), abs(dy))
	}
	return abs(dx) + abs(dy)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
