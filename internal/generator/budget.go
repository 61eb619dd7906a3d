package generator

import "github.com/sbj42/hidoku/internal/core"

// stepBudget returns the default step-limit for a given diagonal flag and
// pattern, per spec §4.6's tuning table. These defaults are empirically
// tuned; implementers may re-tune them but must keep the outer restart
// loop so retries compensate for low budgets (spec §9).
func stepBudget(diagonal bool, pattern core.Pattern) int {
	if diagonal {
		switch pattern {
		case core.PatternRing:
			return 1000
		case core.PatternBorder:
			return 100
		default:
			return 80000
		}
	}
	switch pattern {
	case core.PatternNone:
		return 300000
	case core.PatternRot2:
		return 800000
	default:
		return 0 // unbounded
	}
}
