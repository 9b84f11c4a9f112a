package health

import (
	"math"
	"time"
)

// EffectiveWeight returns the routing weight of a backend with the given
// health and static weight at now. A backend inside its backoff window
// weighs 0.
//
// The success-rate branch keeps the larger of the static weight and the
// rate-scaled weight, so a degraded but unblocked backend keeps its full
// weight.
func EffectiveWeight(s State, static uint64, now time.Time) uint64 {
	if s.Status.Excluded(now) {
		return 0
	}

	if s.ConsecutiveSuccesses > trustedStreak {
		return static
	}

	if s.TotalCalls < minSampleCalls {
		return static
	}

	rate := float64(s.SuccessfulCalls) / float64(s.TotalCalls)
	candidate := uint64(math.Round(rate * float64(static)))
	return max(static, candidate)
}
