package dispatcher

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/angeloszaimis/libtranslate/internal/backend"
	"github.com/angeloszaimis/libtranslate/internal/catalog"
	"github.com/angeloszaimis/libtranslate/internal/health"
	"github.com/angeloszaimis/libtranslate/internal/metrics"
	"github.com/angeloszaimis/libtranslate/internal/strategy"
)

// Dispatcher owns the registry of one capability kind. The registry is
// fixed at construction; only the per-backend health state changes, each
// under its backend's own lock.
type Dispatcher[T any] struct {
	kind      string
	backends  []*backend.Backend[T]
	byName    map[string]*backend.Backend[T]
	strategy  strategy.Strategy
	now       func() time.Time
	logger    *slog.Logger
	collector Collector
}

// New registers the named backends of cat. Duplicate names are registered
// once.
func New[T any](kind string, cat catalog.Catalog[T], names []string, opts ...Option) (*Dispatcher[T], error) {
	if len(names) == 0 {
		return nil, ErrEmptyRegistrationSet
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Dispatcher[T]{
		kind:      kind,
		byName:    make(map[string]*backend.Backend[T], len(names)),
		now:       o.now,
		logger:    o.logger.With("kind", kind),
		collector: o.collector,
	}

	if o.uint64N != nil {
		d.strategy = strategy.NewWeightedRandomStrategyWithSource(o.uint64N)
	} else {
		d.strategy = strategy.NewWeightedRandomStrategy()
	}

	for _, name := range names {
		entry, ok := cat[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidServiceName, name)
		}
		if _, dup := d.byName[name]; dup {
			continue
		}

		b := backend.New(name, entry.API, entry.Weight)
		d.backends = append(d.backends, b)
		d.byName[name] = b
	}

	return d, nil
}

// Default registers every backend of cat.
func Default[T any](kind string, cat catalog.Catalog[T], opts ...Option) (*Dispatcher[T], error) {
	return New(kind, cat, cat.Names(), opts...)
}

// Kind returns the capability kind the dispatcher serves.
func (d *Dispatcher[T]) Kind() string {
	return d.kind
}

// Names returns the registered backend names in registration order.
func (d *Dispatcher[T]) Names() []string {
	names := make([]string, len(d.backends))
	for i, b := range d.backends {
		names[i] = b.Name()
	}
	return names
}

// LastError returns the last failure recorded for name, or nil when the
// backend is unknown, has never failed, or has succeeded since.
func (d *Dispatcher[T]) LastError(name string) error {
	b, ok := d.byName[name]
	if !ok {
		return nil
	}
	return b.LastError()
}

// Snapshot returns the state of every registered backend.
func (d *Dispatcher[T]) Snapshot() []backend.Snapshot {
	now := d.now()
	snaps := make([]backend.Snapshot, len(d.backends))
	for i, b := range d.backends {
		snaps[i] = b.Snapshot(now)
	}
	return snaps
}

// Call runs fn against backends of d until one succeeds or the candidate
// pool is exhausted. Backend errors are recorded and absorbed; the caller
// only sees the result, a *NoAvailableError, or the context's error when
// ctx ends first.
func Call[T, R any](ctx context.Context, d *Dispatcher[T], fn func(context.Context, T) (R, error)) (R, error) {
	var zero R

	now := d.now()
	pool := slices.Clone(d.backends)
	candidates := make([]strategy.Candidate, len(pool))
	for i, b := range pool {
		candidates[i] = strategy.Candidate{Name: b.Name(), Weight: b.Weight(now)}
	}

	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		i, ok := d.strategy.Select(candidates)
		if !ok {
			return zero, d.exhausted()
		}
		b := pool[i]

		d.logger.Debug("backend selected", "backend", b.Name(), "weight", candidates[i].Weight)
		d.emit(metrics.MetricEvent{Type: metrics.EventBackendSelected, Backend: b.Name()})

		b.Begin()
		start := d.now()
		result, err := fn(ctx, b.API())
		end := d.now()
		duration := end.Sub(start)

		if err == nil {
			prev, cur := b.RecordSuccess(duration)
			d.emit(metrics.MetricEvent{Type: metrics.EventCallCompleted, Backend: b.Name(), Duration: duration, Success: true})
			d.transitioned(b.Name(), prev, cur, nil)
			return result, nil
		}

		if ctx.Err() != nil {
			b.Abandon()
			return zero, ctx.Err()
		}

		prev, cur := b.RecordFailure(err, end, duration)
		d.emit(metrics.MetricEvent{Type: metrics.EventCallCompleted, Backend: b.Name(), Duration: duration})
		d.transitioned(b.Name(), prev, cur, err)

		pool = slices.Delete(pool, i, i+1)
		candidates = slices.Delete(candidates, i, i+1)
	}
}

func (d *Dispatcher[T]) exhausted() error {
	now := d.now()

	var wait time.Duration
	for _, b := range d.backends {
		wait = max(wait, b.RemainingDelay(now))
	}

	d.logger.Warn("no backend available", "wait", wait)
	d.emit(metrics.MetricEvent{Type: metrics.EventPoolExhausted, Wait: wait})
	return &NoAvailableError{Wait: wait}
}

func (d *Dispatcher[T]) transitioned(name string, prev, cur health.Status, err error) {
	if sameStatus(prev, cur) {
		return
	}

	d.emit(metrics.MetricEvent{Type: metrics.EventStatusChanged, Backend: name, Status: cur})

	if cur.Kind == health.KindReady {
		d.logger.Info("backend recovered", "backend", name, "from", prev.String())
		return
	}
	d.logger.Warn("backend escalated", "backend", name, "from", prev.String(), "to", cur.String(), "until", cur.Until, "err", err)
}

func (d *Dispatcher[T]) emit(event metrics.MetricEvent) {
	if d.collector == nil {
		return
	}
	event.Service = d.kind
	if event.Timestamp.IsZero() {
		event.Timestamp = d.now()
	}
	d.collector.Emit(event)
}

func sameStatus(a, b health.Status) bool {
	return a.Kind == b.Kind && a.AttemptsLeft == b.AttemptsLeft && a.Level == b.Level && a.Until.Equal(b.Until)
}
