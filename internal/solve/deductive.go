package solve

import "github.com/sbj42/hidoku/internal/core"

// ruleOnlyMove is Rule A (spec §4.4): for each known endpoint of gap gi,
// if it has exactly one empty neighbour, the adjacent number must go
// there.
func (s *State) ruleOnlyMove(gi int) Signal {
	g := s.Gaps[gi]

	if !g.L1.IsNone() {
		if sig, ok := s.tryOnlyMoveEnd(gi, g.L1, true); ok {
			return sig
		}
	}
	// Re-read g: gi's contents may be unchanged (low end didn't fire);
	// the high end check is independent of the low end's outcome.
	g = s.Gaps[gi]
	if !g.L2.IsNone() {
		if sig, ok := s.tryOnlyMoveEnd(gi, g.L2, false); ok {
			return sig
		}
	}
	return DidntMove
}

// tryOnlyMoveEnd checks one endpoint; ok is false when the endpoint had
// zero or more-than-one empty neighbours (rule doesn't fire here).
func (s *State) tryOnlyMoveEnd(gi int, l core.Location, low bool) (Signal, bool) {
	var empty core.Location
	emptyCount := 0
	for _, n := range s.neighbours(l) {
		if s.at(n) == 0 {
			emptyCount++
			empty = n
		}
	}
	if emptyCount != 1 {
		return DidntMove, false
	}
	var ok bool
	if low {
		ok = s.advanceLowEnd(gi, empty)
	} else {
		ok = s.retreatHighEnd(gi, empty)
	}
	if !ok {
		return Unsolvable, true
	}
	return Moved, true
}

// ruleStraightPath is Rule B (spec §4.4): a closed gap whose two endpoints
// admit a straight corridor of exactly the right length must be filled by
// that corridor. In diagonal mode only the equal-dx/dy diagonal corridor is
// forced; a vertical or horizontal span of the right length is not (a
// diagonal-adjacency path can wander off-axis and still close the gap in
// the same number of steps), so the two orthogonal cases are restricted to
// orthogonal-adjacency mode.
func (s *State) ruleStraightPath(gi int) Signal {
	g := s.Gaps[gi]
	if g.Open() {
		return DidntMove
	}
	span := g.N2 - g.N1

	dx := g.L2.X - g.L1.X
	dy := g.L2.Y - g.L1.Y

	var step core.Location
	switch {
	case s.Diagonal && abs(dx) == span && abs(dy) == span:
		step = core.Location{X: sign(dx), Y: sign(dy)}
	case !s.Diagonal && dx == 0 && abs(dy) == span:
		step = core.Location{X: 0, Y: sign(dy)}
	case !s.Diagonal && dy == 0 && abs(dx) == span:
		step = core.Location{X: sign(dx), Y: 0}
	default:
		return DidntMove
	}

	cur := g.L1
	n := g.N1
	for n+1 < g.N2 {
		cur = core.Location{X: cur.X + step.X, Y: cur.Y + step.Y}
		n++
		if s.at(cur) != 0 {
			return Unsolvable
		}
		s.set(cur, n)
		if !s.checkBlockedNumber(cur) {
			return Unsolvable
		}
	}
	s.removeGap(gi)
	return Moved
}

// Fixpoint repeatedly applies Rule B then Rule A across the gap list until
// a full pass changes nothing, or a rule proves the puzzle unsolvable
// (spec §4.4's fixpoint loop). When a rule fires, the gap index is
// decremented so the now-shifted neighbouring gap is revisited.
func (s *State) Fixpoint() bool {
	i := 0
	for i < len(s.Gaps) {
		sig := s.ruleStraightPath(i)
		if sig == Unsolvable {
			return false
		}
		if sig == Moved {
			if i > 0 {
				i--
			}
			continue
		}
		sig = s.ruleOnlyMove(i)
		if sig == Unsolvable {
			return false
		}
		if sig == Moved {
			if i > 0 {
				i--
			}
			continue
		}
		i++
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
