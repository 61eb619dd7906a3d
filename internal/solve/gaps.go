package solve

import (
	"github.com/sbj42/hidoku/internal/core"
	"github.com/sbj42/hidoku/internal/geometry"
)

// ComputeGaps scans a grid and returns its gap list in ascending order of
// n1, plus the longest gap length (spec §4.3). Panics if the grid is
// entirely empty: generation and solving always start with at least one
// clue, so an empty grid here is a caller bug, not a solver outcome.
func ComputeGaps(grid core.Grid) ([]core.Gap, int) {
	a := grid.Area()
	locs := grid.LocationsOf()
	first, last := 0, 0
	for n := 1; n <= a; n++ {
		if _, ok := locs[n]; ok {
			first = n
			break
		}
	}
	if first == 0 {
		panic("solve: ComputeGaps called on an entirely empty grid")
	}
	for n := a; n >= 1; n-- {
		if _, ok := locs[n]; ok {
			last = n
			break
		}
	}

	var gaps []core.Gap
	longest := 0
	record := func(g core.Gap) {
		gaps = append(gaps, g)
		if l := g.Length(); l > longest {
			longest = l
		}
	}

	if first > 1 {
		record(core.Gap{N1: 0, L1: core.NoLocation, N2: first, L2: locs[first]})
	}

	prev := first
	for n := first + 1; n <= last; n++ {
		if _, ok := locs[n]; ok {
			if n > prev+1 {
				record(core.Gap{N1: prev, L1: locs[prev], N2: n, L2: locs[n]})
			}
			prev = n
		}
	}

	if last < a {
		record(core.Gap{N1: last, L1: locs[last], N2: a + 1, L2: core.NoLocation})
	}

	return gaps, longest
}

// advanceLowEnd places g.N1+1 at loc, the gap model mutation from spec
// §4.3: validates distance to the far end, writes the cell, runs the
// blocked-number check, and collapses or shrinks the gap. Returns false if
// the placement proves the puzzle unsolvable.
func (s *State) advanceLowEnd(gi int, loc core.Location) bool {
	g := s.Gaps[gi]
	n := g.N1 + 1
	if !g.L2.IsNone() && geometry.Distance(loc, g.L2, s.Diagonal) > g.N2-g.N1-1 {
		return false
	}
	s.set(loc, n)
	if !s.checkBlockedNumber(loc) {
		return false
	}
	if n+1 == g.N2 {
		s.removeGap(gi)
	} else {
		s.Gaps[gi].N1 = n
		s.Gaps[gi].L1 = loc
	}
	return true
}

// retreatHighEnd is the symmetric mutation for the high end of the gap.
func (s *State) retreatHighEnd(gi int, loc core.Location) bool {
	g := s.Gaps[gi]
	n := g.N2 - 1
	if !g.L1.IsNone() && geometry.Distance(loc, g.L1, s.Diagonal) > g.N2-g.N1-1 {
		return false
	}
	s.set(loc, n)
	if !s.checkBlockedNumber(loc) {
		return false
	}
	if g.N1+1 == n {
		s.removeGap(gi)
	} else {
		s.Gaps[gi].N2 = n
		s.Gaps[gi].L2 = loc
	}
	return true
}

// checkBlockedNumber is the over-approximating "blocked-number" heuristic
// from spec §4.4: for every neighbour c of the cell just placed that is
// also the l2 endpoint of some gap, c must have at least two neighbours
// that are either empty or numerically adjacent to c's own number — unless
// c's own number is 1 or A, in which case c only ever needs one connection
// (an endpoint of the whole path, not an interior cell). This is a sound
// over-approximation (it may flag cells that do not actually sit between
// two gaps) but must never miss a real contradiction; callers must not
// strengthen it into a false "solvable" verdict.
func (s *State) checkBlockedNumber(placed core.Location) bool {
	for _, c := range s.neighbours(placed) {
		isL2 := false
		for _, g := range s.Gaps {
			if !g.L2.IsNone() && g.L2 == c {
				isL2 = true
				break
			}
		}
		if !isL2 {
			continue
		}
		nc := s.at(c)
		count := 0
		for _, cn := range s.neighbours(c) {
			v := s.at(cn)
			if v == 0 || v == nc-1 || v == nc+1 {
				count++
			}
		}
		if nc > 1 && nc < s.A && count < 2 {
			return false
		}
	}
	return true
}
