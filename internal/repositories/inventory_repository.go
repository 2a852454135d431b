package repositories

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"inventory-service/internal/dto"
	"inventory-service/internal/entities"
	apperrors "inventory-service/pkg/errors"

	"go.uber.org/zap"
)

// UnknownName is shown for an assignment whose equipment or device is gone.
const UnknownName = "Unknown"

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, name string) (*entities.Equipment, error)
	// DeleteEquipment also removes the assignments that reference it and
	// reports how many were removed.
	DeleteEquipment(ctx context.Context, id int64) (*entities.Equipment, int, error)
}

type DeviceRepositoryInterface interface {
	GetDevices(ctx context.Context) ([]entities.Device, error)
	CreateDevice(ctx context.Context, name string) (*entities.Device, error)
	DeleteDevice(ctx context.Context, id int64) (*entities.Device, int, error)
}

type AssignmentRepositoryInterface interface {
	GetAssignments(ctx context.Context) ([]dto.AssignmentDTO, error)
	CreateAssignment(ctx context.Context, equipmentID, deviceID, quantity int64) (*entities.Assignment, error)
	DeleteAssignment(ctx context.Context, id int64) (*entities.Assignment, error)
}

// InventoryStore is the in-memory source of truth for all three collections.
// Every operation holds the store lock from read to snapshot save, so
// requests never observe or persist a half-applied mutation.
//
// A failed save leaves the in-memory mutation in place and returns the error.
type InventoryStore struct {
	mu        sync.Mutex
	data      entities.Dataset
	snapshots SnapshotRepositoryInterface
	logger    *zap.Logger
}

var (
	_ EquipmentRepositoryInterface  = (*InventoryStore)(nil)
	_ DeviceRepositoryInterface     = (*InventoryStore)(nil)
	_ AssignmentRepositoryInterface = (*InventoryStore)(nil)
)

// NewInventoryStore hydrates the store from snapshots. A snapshot that is
// missing or unreadable yields an empty inventory; startup never fails here.
func NewInventoryStore(ctx context.Context, snapshots SnapshotRepositoryInterface, logger *zap.Logger) *InventoryStore {
	data, err := snapshots.Load(ctx)
	switch {
	case err == nil:
		logger.Info("inventory loaded",
			zap.String("driver", snapshots.Driver()),
			zap.Int("equipment", len(data.Equipment)),
			zap.Int("devices", len(data.Devices)),
			zap.Int("assignments", len(data.Assignments)),
		)
	case errors.Is(err, apperrors.ErrSnapshotNotFound):
		logger.Info("no snapshot yet, starting empty", zap.String("driver", snapshots.Driver()))
		data = entities.EmptyDataset()
	default:
		logger.Warn("snapshot unreadable, starting empty", zap.String("driver", snapshots.Driver()), zap.Error(err))
		data = entities.EmptyDataset()
	}

	return &InventoryStore{
		data:      data.Normalize(),
		snapshots: snapshots,
		logger:    logger,
	}
}

// nextID is max(id)+1, or 1 for an empty collection. Gaps are never filled,
// but deleting the highest id makes it available again.
func nextID[T interface{ GetID() int64 }](items []T) int64 {
	if len(items) == 0 {
		return 1
	}
	maxID := items[0].GetID()
	for _, item := range items[1:] {
		if id := item.GetID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func indexByID[T interface{ GetID() int64 }](items []T, id int64) int {
	return slices.IndexFunc(items, func(item T) bool { return item.GetID() == id })
}

// persist must be called with s.mu held. A client that disconnects must not
// abort the save of a mutation that is already applied in memory.
func (s *InventoryStore) persist(ctx context.Context) error {
	if err := s.snapshots.Save(context.WithoutCancel(ctx), s.data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current dataset.
func (s *InventoryStore) Snapshot() entities.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Counts reports the size of each collection keyed by resource name.
func (s *InventoryStore) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		"equipment":   len(s.data.Equipment),
		"devices":     len(s.data.Devices),
		"assignments": len(s.data.Assignments),
	}
}

func (s *InventoryStore) GetEquipments(_ context.Context) ([]entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.data.Equipment), nil
}

func (s *InventoryStore) CreateEquipment(ctx context.Context, name string) (*entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	equipment := entities.Equipment{ID: nextID(s.data.Equipment), Name: name}
	s.data.Equipment = append(s.data.Equipment, equipment)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (s *InventoryStore) DeleteEquipment(ctx context.Context, id int64) (*entities.Equipment, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexByID(s.data.Equipment, id)
	if idx == -1 {
		return nil, 0, apperrors.NewNotFoundError("Equipment not found")
	}

	removed := s.data.Equipment[idx]
	s.data.Equipment = slices.Delete(s.data.Equipment, idx, idx+1)
	cascaded := s.removeAssignments(func(a entities.Assignment) bool { return a.EquipmentID == id })

	if err := s.persist(ctx); err != nil {
		return nil, cascaded, err
	}
	return &removed, cascaded, nil
}

func (s *InventoryStore) GetDevices(_ context.Context) ([]entities.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.data.Devices), nil
}

func (s *InventoryStore) CreateDevice(ctx context.Context, name string) (*entities.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	device := entities.Device{ID: nextID(s.data.Devices), Name: name}
	s.data.Devices = append(s.data.Devices, device)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &device, nil
}

func (s *InventoryStore) DeleteDevice(ctx context.Context, id int64) (*entities.Device, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexByID(s.data.Devices, id)
	if idx == -1 {
		return nil, 0, apperrors.NewNotFoundError("Device not found")
	}

	removed := s.data.Devices[idx]
	s.data.Devices = slices.Delete(s.data.Devices, idx, idx+1)
	cascaded := s.removeAssignments(func(a entities.Assignment) bool { return a.DeviceID == id })

	if err := s.persist(ctx); err != nil {
		return nil, cascaded, err
	}
	return &removed, cascaded, nil
}

// removeAssignments drops every assignment matching del, keeping order.
func (s *InventoryStore) removeAssignments(del func(entities.Assignment) bool) int {
	before := len(s.data.Assignments)
	s.data.Assignments = slices.DeleteFunc(s.data.Assignments, del)
	return before - len(s.data.Assignments)
}

// GetAssignments resolves equipment and device names against the current
// collections, falling back to UnknownName.
func (s *InventoryStore) GetAssignments(_ context.Context) ([]dto.AssignmentDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// walked backwards so the first record wins if a hand-edited snapshot
	// repeats an id
	equipmentNames := make(map[int64]string, len(s.data.Equipment))
	for _, e := range slices.Backward(s.data.Equipment) {
		equipmentNames[e.ID] = e.Name
	}
	deviceNames := make(map[int64]string, len(s.data.Devices))
	for _, d := range slices.Backward(s.data.Devices) {
		deviceNames[d.ID] = d.Name
	}

	res := make([]dto.AssignmentDTO, 0, len(s.data.Assignments))
	for _, a := range s.data.Assignments {
		res = append(res, dto.AssignmentDTO{
			ID:            a.ID,
			EquipmentID:   a.EquipmentID,
			DeviceID:      a.DeviceID,
			Quantity:      a.Quantity,
			EquipmentName: nameOrUnknown(equipmentNames[a.EquipmentID]),
			DeviceName:    nameOrUnknown(deviceNames[a.DeviceID]),
		})
	}
	return res, nil
}

func nameOrUnknown(name string) string {
	if name == "" {
		return UnknownName
	}
	return name
}

// CreateAssignment stores the link as given. The referenced equipment and
// device are not required to exist.
func (s *InventoryStore) CreateAssignment(ctx context.Context, equipmentID, deviceID, quantity int64) (*entities.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment := entities.Assignment{
		ID:          nextID(s.data.Assignments),
		EquipmentID: equipmentID,
		DeviceID:    deviceID,
		Quantity:    quantity,
	}
	s.data.Assignments = append(s.data.Assignments, assignment)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *InventoryStore) DeleteAssignment(ctx context.Context, id int64) (*entities.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexByID(s.data.Assignments, id)
	if idx == -1 {
		return nil, apperrors.NewNotFoundError("Assignment not found")
	}

	removed := s.data.Assignments[idx]
	s.data.Assignments = slices.Delete(s.data.Assignments, idx, idx+1)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &removed, nil
}
