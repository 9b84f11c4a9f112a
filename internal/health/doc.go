// Package health implements the per-backend failure/backoff state machine
// and the policy turning a backend's health into a routing weight.
//
// A backend moves through these states while it keeps failing:
//
//   - READY: normal operation
//   - RETRYING(n): excluded for 1s after each failure, n attempts left
//   - BLOCKED(level): excluded for 3s, 60s, 300s, then 3600s per failure
//
// Failures within one second of the first failure of a streak do not
// escalate. Any success returns the backend to READY.
//
// State is a plain value; callers serialize access to it.
//
//	var s health.State
//	s.RecordFailure(err, time.Now())
//	w := health.EffectiveWeight(s, 100, time.Now())
package health
