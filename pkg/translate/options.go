package translate

import (
	"log/slog"
	"time"

	"github.com/angeloszaimis/libtranslate/internal/dispatcher"
	"github.com/angeloszaimis/libtranslate/internal/transport"
	"github.com/angeloszaimis/libtranslate/pkg/logger"
)

// Strategy selects which cataloged backends a Detector or Translator
// registers.
type Strategy struct {
	all   bool
	names []string
}

// Default registers every backend of the capability.
func Default() Strategy {
	return Strategy{all: true}
}

// Single registers only the named backend.
func Single(name string) Strategy {
	return Strategy{names: []string{name}}
}

// Mix registers the named backends.
func Mix(names ...string) Strategy {
	return Strategy{names: names}
}

// HTTPClient issues the GET requests of the backends.
type HTTPClient = transport.Getter

type settings struct {
	strategy  Strategy
	timeout   time.Duration
	logger    *slog.Logger
	collector dispatcher.Collector
	client    HTTPClient
	dispatch  []dispatcher.Option
}

type Option func(*settings)

func WithStrategy(s Strategy) Option {
	return func(o *settings) {
		o.strategy = s
	}
}

// WithTimeout bounds each backend request. Ignored when WithHTTPClient is set.
func WithTimeout(d time.Duration) Option {
	return func(o *settings) {
		o.timeout = d
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *settings) {
		o.logger = l
	}
}

// WithCollector receives dispatch events, typically a *metrics.Collector.
func WithCollector(c dispatcher.Collector) Option {
	return func(o *settings) {
		o.collector = c
	}
}

// WithHTTPClient replaces the transport shared by the backends.
func WithHTTPClient(c HTTPClient) Option {
	return func(o *settings) {
		o.client = c
	}
}

// WithClock replaces time.Now for backoff bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(o *settings) {
		o.dispatch = append(o.dispatch, dispatcher.WithClock(now))
	}
}

// WithRandom replaces the source of the weighted draw. uint64N returns a
// uniform integer in [0, n) and must be safe for concurrent use.
func WithRandom(uint64N func(n uint64) uint64) Option {
	return func(o *settings) {
		o.dispatch = append(o.dispatch, dispatcher.WithRandom(uint64N))
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		strategy: Default(),
		timeout:  transport.DefaultTimeout,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.client == nil {
		s.client = transport.New(s.timeout)
	}
	return s
}

func (s settings) dispatcherOptions() []dispatcher.Option {
	opts := []dispatcher.Option{dispatcher.WithLogger(s.logger)}
	if s.collector != nil {
		opts = append(opts, dispatcher.WithCollector(s.collector))
	}
	return append(opts, s.dispatch...)
}
