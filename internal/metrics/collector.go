package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/angeloszaimis/libtranslate/internal/health"
)

type EventType string

const (
	EventBackendSelected EventType = "backend_selected"
	EventCallCompleted   EventType = "call_completed"
	EventStatusChanged   EventType = "status_changed"
	EventWeightObserved  EventType = "weight_observed"
	EventPoolExhausted   EventType = "pool_exhausted"
)

// MetricEvent is a single observation from a dispatcher or the health
// monitor. Service is the capability kind ("detector", "translator").
type MetricEvent struct {
	Type      EventType
	Timestamp time.Time
	Service   string
	Backend   string
	Duration  time.Duration
	Success   bool
	Status    health.Status
	Weight    uint64
	Wait      time.Duration
}

type Collector struct {
	eventCh    chan MetricEvent
	metrics    *Metrics
	prometheus *Prometheus
	logger     *slog.Logger
}

func NewCollector(bufferSize int, logger *slog.Logger) *Collector {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Collector{
		eventCh:    make(chan MetricEvent, bufferSize),
		metrics:    NewMetrics(),
		prometheus: NewPrometheus(),
		logger:     logger,
	}
}

func (c *Collector) EventChannel() chan<- MetricEvent {
	return c.eventCh
}

// Emit queues an event without blocking. Events are dropped when the
// buffer is full.
func (c *Collector) Emit(event MetricEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case c.eventCh <- event:
	default:
		c.logger.Debug("metrics buffer full, dropping event", "type", event.Type, "backend", event.Backend)
	}
}

func (c *Collector) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Collector) run(ctx context.Context) {
	c.logger.Info("Metrics collector started")
	defer c.logger.Info("Metrics collector stopped")

	for {
		select {
		case event := <-c.eventCh:
			c.processEvent(event)
		case <-ctx.Done():
			// Drain remaining events before shutdown
			c.drain()
			return
		}
	}
}

func (c *Collector) processEvent(event MetricEvent) {
	switch event.Type {
	case EventBackendSelected:
		c.metrics.RecordSelection(event.Service, event.Backend)
		c.prometheus.selections.WithLabelValues(event.Service, event.Backend).Inc()

	case EventCallCompleted:
		c.metrics.RecordCall(event.Service, event.Backend, event.Duration, event.Success)
		c.prometheus.calls.WithLabelValues(event.Service, event.Backend, result(event.Success)).Inc()
		c.prometheus.durations.WithLabelValues(event.Service, event.Backend).Observe(event.Duration.Seconds())

	case EventStatusChanged:
		c.metrics.UpdateStatus(event.Service, event.Backend, event.Status)
		c.prometheus.status.WithLabelValues(event.Service, event.Backend).Set(float64(event.Status.Kind))

	case EventWeightObserved:
		c.metrics.UpdateWeight(event.Service, event.Backend, event.Weight, event.Status)
		c.prometheus.weights.WithLabelValues(event.Service, event.Backend).Set(float64(event.Weight))
		c.prometheus.status.WithLabelValues(event.Service, event.Backend).Set(float64(event.Status.Kind))

	case EventPoolExhausted:
		c.metrics.RecordExhausted(event.Service)
		c.prometheus.exhausted.WithLabelValues(event.Service).Inc()
	}
}

func (c *Collector) drain() {
	for {
		select {
		case event := <-c.eventCh:
			c.processEvent(event)
		default:
			return
		}
	}
}

func (c *Collector) Snapshot() Snapshot {
	return c.metrics.Snapshot()
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
