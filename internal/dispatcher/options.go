package dispatcher

import (
	"log/slog"
	"time"

	"github.com/angeloszaimis/libtranslate/internal/metrics"
	"github.com/angeloszaimis/libtranslate/pkg/logger"
)

// Collector receives dispatch events. Emit must not block.
type Collector interface {
	Emit(event metrics.MetricEvent)
}

type options struct {
	now       func() time.Time
	uint64N   func(n uint64) uint64
	logger    *slog.Logger
	collector Collector
}

type Option func(*options)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithRandom replaces the source of the weighted draw. uint64N returns a
// uniform integer in [0, n) and must be safe for concurrent use.
func WithRandom(uint64N func(n uint64) uint64) Option {
	return func(o *options) {
		o.uint64N = uint64N
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func WithCollector(c Collector) Option {
	return func(o *options) {
		o.collector = c
	}
}

func defaultOptions() options {
	return options{
		now:    time.Now,
		logger: logger.Discard(),
	}
}
