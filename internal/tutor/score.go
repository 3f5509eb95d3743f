package tutor

import "math"

// FocusScore computes the deduction-based session score: 5 points per
// distraction, 0.1 per second away, 20 for abandoning the session, clamped
// to [0,100]. This number is authoritative; the model only comments on it.
func FocusScore(s FocusSession) int {
	score := 100.0
	score -= float64(s.Distractions) * 5
	score -= s.TimeAway * 0.1
	if !s.Completed {
		score -= 20
	}
	n := int(math.Round(score))
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	return n
}
