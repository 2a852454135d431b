package repositories

import (
	"context"
	"fmt"
	"time"

	"inventory-service/internal/entities"
	"inventory-service/pkg/config"
	"inventory-service/pkg/database/postgresql"
	"inventory-service/pkg/metrics"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// OpenSnapshotRepository builds the backend named by cfg.Storage.Driver.
func OpenSnapshotRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (SnapshotRepositoryInterface, error) {
	switch cfg.Storage.Driver {
	case "", config.DriverFile:
		return NewFileSnapshotRepository(cfg.Storage.DataFile), nil

	case config.DriverMemory:
		return NewMemorySnapshotRepository(), nil

	case config.DriverSQLite:
		repo, err := NewSQLiteSnapshotRepository(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repo, nil

	case config.DriverPostgres:
		pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		repo, err := NewPostgresSnapshotRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("connected to PostgreSQL")
		return repo, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if _, err := client.Ping(ctx).Result(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Address, err)
		}
		logger.Info("connected to Redis", zap.String("address", cfg.Redis.Address))
		return NewRedisSnapshotRepository(client, cfg.Redis.Key), nil

	case config.DriverS3:
		repo, err := NewS3SnapshotRepository(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return repo, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// InstrumentedSnapshotRepository records save counts and latency for the
// wrapped backend.
type InstrumentedSnapshotRepository struct {
	SnapshotRepositoryInterface
	metrics *metrics.Metrics
}

func NewInstrumentedSnapshotRepository(inner SnapshotRepositoryInterface, m *metrics.Metrics) *InstrumentedSnapshotRepository {
	return &InstrumentedSnapshotRepository{SnapshotRepositoryInterface: inner, metrics: m}
}

func (r *InstrumentedSnapshotRepository) Save(ctx context.Context, dataset entities.Dataset) error {
	start := time.Now()
	err := r.SnapshotRepositoryInterface.Save(ctx, dataset)
	r.metrics.SnapshotSaveDuration.Observe(time.Since(start).Seconds())

	result := "ok"
	if err != nil {
		result = "error"
	}
	r.metrics.SnapshotSaves.WithLabelValues(r.Driver(), result).Inc()
	return err
}
