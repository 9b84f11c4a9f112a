package health

import (
	"fmt"
	"time"
)

type Kind int

const (
	KindReady    Kind = iota // Normal operation
	KindRetrying             // Short exclusion with attempts left
	KindBlocked              // Long exclusion at an escalating level
)

func (k Kind) String() string {
	switch k {
	case KindReady:
		return "READY"
	case KindRetrying:
		return "RETRYING"
	case KindBlocked:
		return "BLOCKED"
	default:
		return "UNKNOWN"
	}
}

// Status is the scheduling state of a backend. AttemptsLeft is only
// meaningful for KindRetrying and Level only for KindBlocked; Until is the
// end of the exclusion window for both.
type Status struct {
	Kind         Kind
	AttemptsLeft int
	Level        int
	Until        time.Time
}

// Ready returns the READY status.
func Ready() Status {
	return Status{Kind: KindReady}
}

// Retrying returns a RETRYING status excluded until the given instant.
func Retrying(attemptsLeft int, until time.Time) Status {
	return Status{Kind: KindRetrying, AttemptsLeft: attemptsLeft, Until: until}
}

// Blocked returns a BLOCKED status excluded until the given instant.
func Blocked(level int, until time.Time) Status {
	return Status{Kind: KindBlocked, Level: level, Until: until}
}

// Excluded reports whether the backend is inside its backoff window at now.
func (s Status) Excluded(now time.Time) bool {
	return s.Kind != KindReady && now.Before(s.Until)
}

// Remaining returns how long until the backoff window ends, or 0 when the
// backend is schedulable.
func (s Status) Remaining(now time.Time) time.Duration {
	if !s.Excluded(now) {
		return 0
	}
	return s.Until.Sub(now)
}

func (s Status) String() string {
	switch s.Kind {
	case KindRetrying:
		return fmt.Sprintf("%s(%d)", s.Kind, s.AttemptsLeft)
	case KindBlocked:
		return fmt.Sprintf("%s(%d)", s.Kind, s.Level)
	default:
		return s.Kind.String()
	}
}
