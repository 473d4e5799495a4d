package searcher

import "math"

// uctPolicy precomputes the parent-dependent part of the UCT score for one
// round of child selection.
type uctPolicy struct {
	numerator float64
}

// newUCT prepares a selection policy for a parent with N visits. N is
// floored at 1 so a fresh parent still yields a defined exploration term.
func newUCT(c float64, parentVisits int) uctPolicy {
	n := math.Max(1, float64(parentVisits))
	return uctPolicy{numerator: c * c * math.Log(n)}
}

// evaluate returns wins/visits + sqrt(c^2*ln(N)/visits). An unvisited child
// scores +Inf, so every child is tried once before any is revisited.
func (u uctPolicy) evaluate(wins, visits int) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	n := float64(visits)
	return float64(wins)/n + math.Sqrt(u.numerator/n)
}
