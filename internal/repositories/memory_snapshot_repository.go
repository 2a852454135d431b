package repositories

import (
	"context"
	"sync"

	"inventory-service/internal/entities"
	"inventory-service/pkg/config"
	apperrors "inventory-service/pkg/errors"
)

// MemorySnapshotRepository keeps the last saved snapshot in process memory.
// Nothing survives a restart.
type MemorySnapshotRepository struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	failErr error
}

func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{}
}

func (r *MemorySnapshotRepository) Load(_ context.Context) (entities.Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		return entities.EmptyDataset(), apperrors.ErrSnapshotNotFound
	}
	return decodeDataset(r.data)
}

func (r *MemorySnapshotRepository) Save(_ context.Context, dataset entities.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	data, err := encodeDataset(dataset)
	if err != nil {
		return err
	}
	r.data = data
	r.saves++
	return nil
}

// Saves reports how many snapshots were written.
func (r *MemorySnapshotRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

// FailWith makes every following Save return err; nil restores normal saves.
func (r *MemorySnapshotRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failErr = err
}

func (r *MemorySnapshotRepository) Driver() string { return config.DriverMemory }

func (r *MemorySnapshotRepository) Close() error { return nil }
