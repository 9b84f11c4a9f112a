package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "libtranslate"

// Prometheus holds the exported series on a private registry so that
// several collectors can coexist in one process.
type Prometheus struct {
	registry   *prometheus.Registry
	selections *prometheus.CounterVec
	calls      *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	status     *prometheus.GaugeVec
	weights    *prometheus.GaugeVec
	exhausted  *prometheus.CounterVec
}

func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		selections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_selections_total",
			Help:      "Number of times a backend was drawn by the weighted selector.",
		}, []string{"service", "backend"}),
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_calls_total",
			Help:      "Number of completed backend calls by result.",
		}, []string{"service", "backend", "result"}),
		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_call_duration_seconds",
			Help:      "Backend call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "backend"}),
		status: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backend_status",
			Help:      "Backend scheduling status (0 ready, 1 retrying, 2 blocked).",
		}, []string{"service", "backend"}),
		weights: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backend_effective_weight",
			Help:      "Last observed effective routing weight.",
		}, []string{"service", "backend"}),
		exhausted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_exhausted_total",
			Help:      "Number of calls that found no usable backend.",
		}, []string{"service"}),
	}
}

func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
