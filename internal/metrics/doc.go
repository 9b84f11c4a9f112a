// Package metrics collects dispatch observations off the call path.
//
// Dispatchers and the health monitor emit MetricEvent values through
// Collector.Emit, which never blocks. A single goroutine started by
// Collector.Start folds them into an in-memory Metrics store, served as
// JSON by Handler, and into Prometheus series on a private registry, served
// by PrometheusHandler:
//
//	collector := metrics.NewCollector(1000, logger)
//	collector.Start(ctx)
//
//	collector.Emit(metrics.MetricEvent{
//		Type:     metrics.EventCallCompleted,
//		Service:  "translator",
//		Backend:  "google.TranslateExtensions",
//		Duration: 150 * time.Millisecond,
//		Success:  true,
//	})
//
//	snapshot := collector.Snapshot()
//
// Events still buffered when the context is cancelled are drained before
// the goroutine exits.
package metrics
