package listeners

import (
	"context"
	"fmt"

	"inventory-service/internal/events"
	"inventory-service/pkg/eventbus"
	"inventory-service/pkg/metrics"

	"go.uber.org/zap"
)

// MetricsListener turns inventory events into Prometheus counters.
type MetricsListener struct {
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewMetricsListener(m *metrics.Metrics, logger *zap.Logger) *MetricsListener {
	return &MetricsListener{metrics: m, logger: logger}
}

// Register subscribes the listener to every event it handles.
func (l *MetricsListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.RecordCreatedName, l.HandleCreated)
	bus.Subscribe(events.RecordDeletedName, l.HandleDeleted)
}

func (l *MetricsListener) HandleCreated(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.RecordCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	l.metrics.RecordsCreated.WithLabelValues(e.Resource).Inc()
	return nil
}

func (l *MetricsListener) HandleDeleted(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.RecordDeletedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	l.metrics.RecordsDeleted.WithLabelValues(e.Resource).Inc()
	if e.CascadedAssignments > 0 {
		l.metrics.CascadedAssignments.Add(float64(e.CascadedAssignments))
		l.logger.Debug("assignments cascaded",
			zap.String("resource", e.Resource),
			zap.Int64("id", e.ID),
			zap.Int("count", e.CascadedAssignments),
		)
	}
	return nil
}
