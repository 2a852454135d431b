package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inventory-service/internal/entities"
	"inventory-service/pkg/config"
	apperrors "inventory-service/pkg/errors"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const sqliteSnapshotDDL = `CREATE TABLE IF NOT EXISTS snapshot (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	payload BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteSnapshotRepository stores the dataset as a single JSON row in an
// embedded SQLite database.
type SQLiteSnapshotRepository struct {
	db   *sql.DB
	path string
}

func NewSQLiteSnapshotRepository(ctx context.Context, path string) (*SQLiteSnapshotRepository, error) {
	if path == "" {
		path = "inventory.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time; sqlite serialises writes anyway
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSnapshotDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}
	return &SQLiteSnapshotRepository{db: db, path: path}, nil
}

func (r *SQLiteSnapshotRepository) Load(ctx context.Context) (entities.Dataset, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM snapshot WHERE id = 1`).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.EmptyDataset(), apperrors.ErrSnapshotNotFound
		}
		return entities.EmptyDataset(), fmt.Errorf("select snapshot: %w", err)
	}
	return decodeDataset(payload)
}

func (r *SQLiteSnapshotRepository) Save(ctx context.Context, dataset entities.Dataset) error {
	payload, err := encodeDataset(dataset)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshot(id, payload, updated_at) VALUES(1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		payload, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshotRepository) Driver() string { return config.DriverSQLite }

func (r *SQLiteSnapshotRepository) Close() error { return r.db.Close() }

// DB exposes the underlying handle for tests.
func (r *SQLiteSnapshotRepository) DB() *sql.DB { return r.db }
