package listeners

import (
	"context"
	"testing"

	"inventory-service/internal/events"
	"inventory-service/pkg/eventbus"
	"inventory-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetricsListener_CountsEvents(t *testing.T) {
	m := metrics.New()
	bus := eventbus.New(zap.NewNop())
	NewMetricsListener(m, zap.NewNop()).Register(bus)

	bus.Publish(events.RecordCreatedEvent{Resource: events.ResourceEquipment, ID: 1})
	bus.Publish(events.RecordCreatedEvent{Resource: events.ResourceEquipment, ID: 2})
	bus.Publish(events.RecordCreatedEvent{Resource: events.ResourceDevices, ID: 1})
	bus.Publish(events.RecordDeletedEvent{Resource: events.ResourceEquipment, ID: 1, CascadedAssignments: 3})
	bus.Wait()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsCreated.WithLabelValues(events.ResourceEquipment)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecordsCreated.WithLabelValues(events.ResourceDevices)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecordsDeleted.WithLabelValues(events.ResourceEquipment)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.CascadedAssignments))
}

func TestMetricsListener_RejectsWrongEventType(t *testing.T) {
	l := NewMetricsListener(metrics.New(), zap.NewNop())

	err := l.HandleCreated(context.Background(), events.RecordDeletedEvent{Resource: events.ResourceDevices})
	require.Error(t, err)

	err = l.HandleDeleted(context.Background(), events.RecordCreatedEvent{Resource: events.ResourceDevices})
	require.Error(t, err)
}
