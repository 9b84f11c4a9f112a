package metrics

import (
	"sort"
	"sync"
	"time"

	"github.com/angeloszaimis/libtranslate/internal/health"
)

const maxSamples = 1000

type key struct {
	service string
	backend string
}

type Metrics struct {
	mutex         sync.RWMutex
	selections    map[key]int64
	successes     map[key]int64
	failures      map[key]int64
	responseTimes map[key][]time.Duration
	status        map[key]health.Status
	weights       map[key]uint64
	exhausted     map[string]int64
	startTime     time.Time
}

type Snapshot struct {
	TotalCalls int64                     `json:"total_calls"`
	Uptime     time.Duration             `json:"uptime"`
	Services   map[string]ServiceMetrics `json:"services"`
}

type ServiceMetrics struct {
	Exhausted int64                     `json:"exhausted"`
	Backends  map[string]BackendMetrics `json:"backends"`
}

type BackendMetrics struct {
	Selections  int64         `json:"selections"`
	Successes   int64         `json:"successes"`
	Failures    int64         `json:"failures"`
	Status      string        `json:"status"`
	Weight      uint64        `json:"weight"`
	AvgResponse time.Duration `json:"avg_response"`
	P50Response time.Duration `json:"p50_response"`
	P95Response time.Duration `json:"p95_response"`
	P99Response time.Duration `json:"p99_response"`
}

func NewMetrics() *Metrics {
	return &Metrics{
		selections:    make(map[key]int64),
		successes:     make(map[key]int64),
		failures:      make(map[key]int64),
		responseTimes: make(map[key][]time.Duration),
		status:        make(map[key]health.Status),
		weights:       make(map[key]uint64),
		exhausted:     make(map[string]int64),
		startTime:     time.Now(),
	}
}

func (m *Metrics) RecordSelection(service, backend string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.selections[key{service, backend}]++
}

func (m *Metrics) RecordCall(service, backend string, duration time.Duration, success bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	k := key{service, backend}
	if success {
		m.successes[k]++
	} else {
		m.failures[k]++
	}

	m.responseTimes[k] = append(m.responseTimes[k], duration)
	if len(m.responseTimes[k]) > maxSamples {
		m.responseTimes[k] = m.responseTimes[k][1:]
	}
}

func (m *Metrics) UpdateStatus(service, backend string, status health.Status) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.status[key{service, backend}] = status
}

func (m *Metrics) UpdateWeight(service, backend string, weight uint64, status health.Status) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	k := key{service, backend}
	m.weights[k] = weight
	m.status[k] = status
}

func (m *Metrics) RecordExhausted(service string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.exhausted[service]++
}

func (m *Metrics) Snapshot() Snapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	snap := Snapshot{
		Uptime:   time.Since(m.startTime),
		Services: make(map[string]ServiceMetrics),
	}

	// Collect all known (service, backend) pairs
	all := make(map[key]bool)
	for k := range m.selections {
		all[k] = true
	}
	for k := range m.responseTimes {
		all[k] = true
	}
	for k := range m.status {
		all[k] = true
	}
	for k := range m.weights {
		all[k] = true
	}

	for service, n := range m.exhausted {
		sm := snap.service(service)
		sm.Exhausted = n
		snap.Services[service] = sm
	}

	for k := range all {
		snap.TotalCalls += m.successes[k] + m.failures[k]

		bm := BackendMetrics{
			Selections: m.selections[k],
			Successes:  m.successes[k],
			Failures:   m.failures[k],
			Status:     m.status[k].String(),
			Weight:     m.weights[k],
		}

		durations := m.responseTimes[k]
		if len(durations) > 0 {
			sorted := make([]time.Duration, len(durations))
			copy(sorted, durations)
			sort.Slice(sorted, func(i, j int) bool {
				return sorted[i] < sorted[j]
			})

			bm.AvgResponse = average(sorted)
			bm.P50Response = percentile(sorted, 0.50)
			bm.P95Response = percentile(sorted, 0.95)
			bm.P99Response = percentile(sorted, 0.99)
		}

		sm := snap.service(k.service)
		sm.Backends[k.backend] = bm
		snap.Services[k.service] = sm
	}

	return snap
}

func (s Snapshot) service(name string) ServiceMetrics {
	sm, ok := s.Services[name]
	if !ok {
		sm = ServiceMetrics{Backends: make(map[string]BackendMetrics)}
	}
	return sm
}

func average(durations []time.Duration) time.Duration {
	if len(durations) == 0 {
		return 0
	}

	var sum time.Duration
	for _, d := range durations {
		sum += d
	}

	return sum / time.Duration(len(durations))
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	index := int(float64(len(sorted)) * p)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}

	return sorted[index]
}
