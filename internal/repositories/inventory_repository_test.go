package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"inventory-service/internal/entities"
	apperrors "inventory-service/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*InventoryStore, *MemorySnapshotRepository) {
	t.Helper()
	snapshots := NewMemorySnapshotRepository()
	return NewInventoryStore(context.Background(), snapshots, zap.NewNop()), snapshots
}

func TestInventoryStore_StartsEmptyWithoutSnapshot(t *testing.T) {
	store, _ := newTestStore(t)

	data := store.Snapshot()
	assert.Empty(t, data.Equipment)
	assert.Empty(t, data.Devices)
	assert.Empty(t, data.Assignments)
	assert.NotNil(t, data.Equipment)
}

func TestInventoryStore_CreateAssignsSequentialIDs(t *testing.T) {
	store, snapshots := newTestStore(t)
	ctx := context.Background()

	first, err := store.CreateEquipment(ctx, "Laptop")
	require.NoError(t, err)
	second, err := store.CreateEquipment(ctx, "Monitor")
	require.NoError(t, err)

	assert.Equal(t, entities.Equipment{ID: 1, Name: "Laptop"}, *first)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, 2, snapshots.Saves())
}

func TestInventoryStore_IDsFollowMaxNotCount(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := store.CreateDevice(ctx, name)
		require.NoError(t, err)
	}

	// deleting a middle record leaves a gap that is never filled
	_, _, err := store.DeleteDevice(ctx, 2)
	require.NoError(t, err)
	d, err := store.CreateDevice(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, int64(4), d.ID)

	// deleting the highest id makes it available again
	_, _, err = store.DeleteDevice(ctx, 4)
	require.NoError(t, err)
	e, err := store.CreateDevice(ctx, "e")
	require.NoError(t, err)
	assert.Equal(t, int64(4), e.ID)
}

func TestInventoryStore_DeleteEquipmentCascades(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateEquipment(ctx, "Laptop")
	require.NoError(t, err)
	_, err = store.CreateEquipment(ctx, "Phone")
	require.NoError(t, err)
	_, err = store.CreateDevice(ctx, "Charger")
	require.NoError(t, err)

	_, err = store.CreateAssignment(ctx, 1, 1, 2)
	require.NoError(t, err)
	_, err = store.CreateAssignment(ctx, 2, 1, 1)
	require.NoError(t, err)
	_, err = store.CreateAssignment(ctx, 1, 1, 5)
	require.NoError(t, err)

	removed, cascaded, err := store.DeleteEquipment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", removed.Name)
	assert.Equal(t, 2, cascaded)

	assignments := store.Snapshot().Assignments
	require.Len(t, assignments, 1)
	assert.Equal(t, int64(2), assignments[0].ID)
	assert.Equal(t, int64(2), assignments[0].EquipmentID)
}

func TestInventoryStore_DeleteDeviceCascades(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateDevice(ctx, "Charger")
	require.NoError(t, err)
	_, err = store.CreateAssignment(ctx, 7, 1, 1)
	require.NoError(t, err)

	_, cascaded, err := store.DeleteDevice(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cascaded)
	assert.Empty(t, store.Snapshot().Assignments)
}

func TestInventoryStore_DeleteMissingLeavesStoreUnchanged(t *testing.T) {
	store, snapshots := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateEquipment(ctx, "Laptop")
	require.NoError(t, err)
	before := store.Snapshot()
	saves := snapshots.Saves()

	_, _, err = store.DeleteEquipment(ctx, 99)
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Equipment not found", notFound.Message)

	_, _, err = store.DeleteDevice(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = store.DeleteAssignment(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.Equal(t, before, store.Snapshot())
	assert.Equal(t, saves, snapshots.Saves(), "a miss must not write a snapshot")
}

func TestInventoryStore_AssignmentNamesFallBackToUnknown(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateEquipment(ctx, "Laptop")
	require.NoError(t, err)
	_, err = store.CreateAssignment(ctx, 1, 42, 3)
	require.NoError(t, err)

	list, err := store.GetAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Laptop", list[0].EquipmentName)
	assert.Equal(t, UnknownName, list[0].DeviceName)
	assert.Equal(t, int64(3), list[0].Quantity)
}

func TestInventoryStore_SaveFailureKeepsMutation(t *testing.T) {
	store, snapshots := newTestStore(t)
	ctx := context.Background()

	snapshots.FailWith(errors.New("disk full"))
	_, err := store.CreateEquipment(ctx, "Laptop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	assert.Len(t, store.Snapshot().Equipment, 1)

	snapshots.FailWith(nil)
	next, err := store.CreateEquipment(ctx, "Phone")
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestInventoryStore_SaveSurvivesCanceledContext(t *testing.T) {
	store, snapshots := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.CreateDevice(ctx, "Charger")
	require.NoError(t, err)
	assert.Equal(t, 1, snapshots.Saves())
}

func TestInventoryStore_ReloadsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	ctx := context.Background()

	store := NewInventoryStore(ctx, NewFileSnapshotRepository(path), zap.NewNop())
	_, err := store.CreateEquipment(ctx, "Laptop")
	require.NoError(t, err)
	_, err = store.CreateDevice(ctx, "Charger")
	require.NoError(t, err)
	_, err = store.CreateAssignment(ctx, 1, 1, 2)
	require.NoError(t, err)

	reloaded := NewInventoryStore(ctx, NewFileSnapshotRepository(path), zap.NewNop())
	assert.Equal(t, store.Snapshot(), reloaded.Snapshot())
	assert.Equal(t, map[string]int{"equipment": 1, "devices": 1, "assignments": 1}, reloaded.Counts())

	next, err := reloaded.CreateEquipment(ctx, "Phone")
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestInventoryStore_GetReturnsCopies(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateEquipment(ctx, "Laptop")
	require.NoError(t, err)

	list, err := store.GetEquipments(ctx)
	require.NoError(t, err)
	list[0].Name = "changed"

	again, err := store.GetEquipments(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", again[0].Name)
}
