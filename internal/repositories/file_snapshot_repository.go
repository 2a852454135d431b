package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"inventory-service/internal/entities"
	"inventory-service/pkg/config"
	apperrors "inventory-service/pkg/errors"
)

// FileSnapshotRepository keeps the dataset as an indented JSON file.
// Save rewrites the file in place; a crash mid-write can leave it truncated.
type FileSnapshotRepository struct {
	path string
}

func NewFileSnapshotRepository(path string) *FileSnapshotRepository {
	return &FileSnapshotRepository{path: path}
}

func (r *FileSnapshotRepository) Load(_ context.Context) (entities.Dataset, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entities.EmptyDataset(), apperrors.ErrSnapshotNotFound
		}
		return entities.EmptyDataset(), fmt.Errorf("read %s: %w", r.path, err)
	}
	return decodeDataset(data)
}

func (r *FileSnapshotRepository) Save(_ context.Context, dataset entities.Dataset) error {
	data, err := encodeDataset(dataset)
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

func (r *FileSnapshotRepository) Driver() string { return config.DriverFile }

func (r *FileSnapshotRepository) Close() error { return nil }

func (r *FileSnapshotRepository) Path() string { return r.path }
