package dispatcher_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/angeloszaimis/libtranslate/internal/metrics"
)

var errBackend = errors.New("backend down")

type fakeBackend struct {
	name  string
	fail  atomic.Bool
	calls atomic.Int64
}

func newFake(name string) *fakeBackend {
	return &fakeBackend{name: name}
}

func (f *fakeBackend) Do(_ context.Context) (string, error) {
	f.calls.Add(1)
	if f.fail.Load() {
		return "", errBackend
	}
	return f.name, nil
}

func do(ctx context.Context, f *fakeBackend) (string, error) {
	return f.Do(ctx)
}

type fakeClock struct {
	mutex sync.Mutex
	now   time.Time
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = c.now.Add(d)
}

type recordingCollector struct {
	mutex  sync.Mutex
	events []metrics.MetricEvent
}

func (r *recordingCollector) Emit(event metrics.MetricEvent) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingCollector) Types() []metrics.EventType {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	types := make([]metrics.EventType, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}

func (r *recordingCollector) Events() []metrics.MetricEvent {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]metrics.MetricEvent(nil), r.events...)
}
