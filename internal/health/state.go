package health

import "time"

const (
	debounce       = time.Second
	retryAttempts  = 3
	retryWindow    = time.Second
	maxBlockLevel  = 3
	ceilingWindow  = 3600 * time.Second
	trustedStreak  = 3
	minSampleCalls = 100
)

// blockWindows[level] is the exclusion applied when entering that level.
var blockWindows = [...]time.Duration{
	1: 3 * time.Second,
	2: 60 * time.Second,
	3: 300 * time.Second,
}

// State is the health record of one backend.
type State struct {
	Status               Status
	LastError            error
	LastErrorTime        time.Time // start of the unresolved failure streak, zero when none
	TotalCalls           uint64
	SuccessfulCalls      uint64
	ConsecutiveSuccesses uint64
}

// RecordSuccess resets the backend to READY and clears the failure streak.
func (s *State) RecordSuccess() {
	s.LastError = nil
	s.LastErrorTime = time.Time{}
	s.TotalCalls++
	s.SuccessfulCalls++
	s.ConsecutiveSuccesses++
	s.Status = Ready()
}

// RecordFailure records err and escalates the status when the failure
// streak is older than one second. It returns the previous status.
func (s *State) RecordFailure(err error, now time.Time) Status {
	prev := s.Status

	s.LastError = err
	s.TotalCalls++
	s.ConsecutiveSuccesses = 0

	if s.LastErrorTime.IsZero() {
		s.LastErrorTime = now
		return prev
	}

	if now.Sub(s.LastErrorTime) > debounce {
		s.Status = next(s.Status, now)
	}

	return prev
}

func next(cur Status, now time.Time) Status {
	switch cur.Kind {
	case KindReady:
		return Retrying(retryAttempts, now.Add(retryWindow))
	case KindRetrying:
		if cur.AttemptsLeft > 1 {
			return Retrying(cur.AttemptsLeft-1, now.Add(retryWindow))
		}
		return Blocked(1, now.Add(blockWindows[1]))
	case KindBlocked:
		if cur.Level < maxBlockLevel {
			level := cur.Level + 1
			return Blocked(level, now.Add(blockWindows[level]))
		}
	}
	return Blocked(maxBlockLevel, now.Add(ceilingWindow))
}
