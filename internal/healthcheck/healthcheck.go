package healthcheck

import (
	"context"
	"log/slog"
	"time"

	"github.com/angeloszaimis/libtranslate/internal/backend"
	"github.com/angeloszaimis/libtranslate/internal/health"
	"github.com/angeloszaimis/libtranslate/internal/metrics"
)

// Source is a registry whose backends can be observed.
type Source interface {
	Kind() string
	Snapshot() []backend.Snapshot
}

// Collector receives the observed weights. Emit must not block.
type Collector interface {
	Emit(event metrics.MetricEvent)
}

// Monitor periodically reads every backend of sources, publishes its
// status and effective weight to collector and logs the backends whose
// status kind changed since the previous tick. It returns when ctx is done.
func Monitor(
	ctx context.Context,
	interval time.Duration,
	collector Collector,
	logger *slog.Logger,
	sources ...Source,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := make(map[string]health.Kind)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Health monitor stopped")
			return

		case <-ticker.C:
			for _, src := range sources {
				observe(src, collector, logger, last)
			}
		}
	}
}

func observe(src Source, collector Collector, logger *slog.Logger, last map[string]health.Kind) {
	kind := src.Kind()

	for _, snap := range src.Snapshot() {
		if collector != nil {
			collector.Emit(metrics.MetricEvent{
				Type:    metrics.EventWeightObserved,
				Service: kind,
				Backend: snap.Name,
				Weight:  snap.EffectiveWeight,
				Status:  snap.Health.Status,
			})
		}

		key := kind + "/" + snap.Name
		cur := snap.Health.Status.Kind
		prev, seen := last[key]
		last[key] = cur

		if !seen || prev == cur {
			continue
		}

		if cur == health.KindReady {
			logger.Info("Backend is back up",
				slog.String("kind", kind),
				slog.String("backend", snap.Name))
		} else {
			logger.Warn("Backend is down",
				slog.String("kind", kind),
				slog.String("backend", snap.Name),
				slog.String("status", snap.Health.Status.String()),
				slog.Any("err", snap.Health.LastError))
		}
	}
}
