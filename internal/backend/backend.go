package backend

import (
	"sync"
	"time"

	"github.com/angeloszaimis/libtranslate/internal/health"
)

// Backend is a named capability implementation with a static weight and a
// mutable health record. The implementation is shared and never mutated;
// everything else is protected by mutex.
type Backend[T any] struct {
	name   string
	api    T
	weight uint64

	mutex             sync.Mutex
	health            health.State
	activeConnections int
	ewmaResponseTime  time.Duration
	hasEWMA           bool
}

const ewmaAlpha = 0.2

// Snapshot is a consistent copy of a backend's state.
type Snapshot struct {
	Name              string
	StaticWeight      uint64
	EffectiveWeight   uint64
	RetryIn           time.Duration
	Health            health.State
	ActiveConnections int
	EWMAResponseTime  time.Duration
}

// New creates a READY backend with zeroed counters.
func New[T any](name string, api T, weight uint64) *Backend[T] {
	return &Backend[T]{
		name:   name,
		api:    api,
		weight: weight,
	}
}

// Name returns the registry key of the backend.
func (b *Backend[T]) Name() string {
	return b.name
}

// API returns the capability implementation.
func (b *Backend[T]) API() T {
	return b.api
}

// StaticWeight returns the weight assigned at registration.
func (b *Backend[T]) StaticWeight() uint64 {
	return b.weight
}

// Weight returns the effective routing weight at now.
func (b *Backend[T]) Weight(now time.Time) uint64 {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return health.EffectiveWeight(b.health, b.weight, now)
}

// RemainingDelay returns how long until the backend leaves its backoff window.
func (b *Backend[T]) RemainingDelay(now time.Time) time.Duration {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.health.Status.Remaining(now)
}

// Begin marks a call as in flight.
func (b *Backend[T]) Begin() {
	b.mutex.Lock()
	b.activeConnections++
	b.mutex.Unlock()
}

// RecordSuccess ends an in-flight call that succeeded and returns the
// status before and after.
func (b *Backend[T]) RecordSuccess(duration time.Duration) (prev, cur health.Status) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.end(duration)
	prev = b.health.Status
	b.health.RecordSuccess()
	return prev, b.health.Status
}

// RecordFailure ends an in-flight call that failed with err at now and
// returns the status before and after.
func (b *Backend[T]) RecordFailure(err error, now time.Time, duration time.Duration) (prev, cur health.Status) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.end(duration)
	prev = b.health.RecordFailure(err, now)
	return prev, b.health.Status
}

// Abandon ends an in-flight call whose outcome says nothing about the
// backend's health, such as one interrupted by the caller.
func (b *Backend[T]) Abandon() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.activeConnections > 0 {
		b.activeConnections--
	}
}

func (b *Backend[T]) end(duration time.Duration) {
	if b.activeConnections > 0 {
		b.activeConnections--
	}

	if !b.hasEWMA {
		b.ewmaResponseTime = duration
		b.hasEWMA = true
		return
	}
	//ewma = (1 - α) * ewma + α * latest
	b.ewmaResponseTime = time.Duration((1-ewmaAlpha)*float64(b.ewmaResponseTime) + ewmaAlpha*float64(duration))
}

// LastError returns the most recent failure, or nil after a success.
func (b *Backend[T]) LastError() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.health.LastError
}

// Status returns the current scheduling status.
func (b *Backend[T]) Status() health.Status {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.health.Status
}

// Snapshot copies the backend's state under its lock.
func (b *Backend[T]) Snapshot(now time.Time) Snapshot {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return Snapshot{
		Name:              b.name,
		StaticWeight:      b.weight,
		EffectiveWeight:   health.EffectiveWeight(b.health, b.weight, now),
		RetryIn:           b.health.Status.Remaining(now),
		Health:            b.health,
		ActiveConnections: b.activeConnections,
		EWMAResponseTime:  b.ewmaResponseTime,
	}
}
