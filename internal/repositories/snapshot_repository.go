package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"inventory-service/internal/entities"
)

// SnapshotRepositoryInterface persists the whole dataset as a single document.
// Load returns apperrors.ErrSnapshotNotFound when nothing was saved yet.
// Save overwrites the previous document in full.
type SnapshotRepositoryInterface interface {
	Load(ctx context.Context) (entities.Dataset, error)
	Save(ctx context.Context, dataset entities.Dataset) error
	Driver() string
	Close() error
}

func encodeDataset(dataset entities.Dataset) ([]byte, error) {
	data, err := json.MarshalIndent(dataset.Normalize(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

func decodeDataset(data []byte) (entities.Dataset, error) {
	var dataset entities.Dataset
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&dataset); err != nil {
		return entities.Dataset{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return dataset.Normalize(), nil
}
