package repositories

import (
	"context"
	"errors"
	"fmt"

	"inventory-service/internal/entities"
	"inventory-service/pkg/config"
	apperrors "inventory-service/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const snapshotTable = "inventory_snapshot"

type PostgresSnapshotRepository struct {
	storage *pgxpool.Pool
}

// NewPostgresSnapshotRepository ensures the snapshot table exists. The pool
// is owned by the repository and closed by Close.
func NewPostgresSnapshotRepository(ctx context.Context, storage *pgxpool.Pool) (*PostgresSnapshotRepository, error) {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id SMALLINT PRIMARY KEY CHECK (id = 1),
			payload JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, snapshotTable)
	if _, err := storage.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("ensure %s: %w", snapshotTable, err)
	}
	return &PostgresSnapshotRepository{storage: storage}, nil
}

func (r *PostgresSnapshotRepository) Load(ctx context.Context) (entities.Dataset, error) {
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE id = 1`, snapshotTable)

	var payload []byte
	if err := r.storage.QueryRow(ctx, query).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.EmptyDataset(), apperrors.ErrSnapshotNotFound
		}
		return entities.EmptyDataset(), fmt.Errorf("select snapshot: %w", err)
	}
	return decodeDataset(payload)
}

func (r *PostgresSnapshotRepository) Save(ctx context.Context, dataset entities.Dataset) error {
	payload, err := encodeDataset(dataset)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, payload, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
	`, snapshotTable)

	if _, err := r.storage.Exec(ctx, query, payload); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

func (r *PostgresSnapshotRepository) Driver() string { return config.DriverPostgres }

func (r *PostgresSnapshotRepository) Close() error {
	r.storage.Close()
	return nil
}
