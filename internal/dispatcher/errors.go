package dispatcher

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyRegistrationSet = errors.New("empty registration set")
	ErrInvalidServiceName   = errors.New("invalid service name")
	ErrNoAvailableService   = errors.New("no available service")
)

// NoAvailableError is returned when every candidate of a call is excluded
// or has failed. Wait is the longest remaining backoff window among the
// registered backends.
type NoAvailableError struct {
	Wait time.Duration
}

func (e *NoAvailableError) Error() string {
	return fmt.Sprintf("%v, retry in %v", ErrNoAvailableService, e.Wait)
}

func (e *NoAvailableError) Is(target error) bool {
	return target == ErrNoAvailableService
}
