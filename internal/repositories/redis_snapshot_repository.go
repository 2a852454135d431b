package repositories

import (
	"context"
	"errors"
	"fmt"

	"inventory-service/internal/entities"
	"inventory-service/pkg/config"
	apperrors "inventory-service/pkg/errors"

	"github.com/go-redis/redis/v8"
)

// RedisSnapshotRepository stores the JSON document under a single key with
// no expiry.
type RedisSnapshotRepository struct {
	client *redis.Client
	key    string
}

func NewRedisSnapshotRepository(client *redis.Client, key string) *RedisSnapshotRepository {
	return &RedisSnapshotRepository{client: client, key: key}
}

func (r *RedisSnapshotRepository) Load(ctx context.Context) (entities.Dataset, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.EmptyDataset(), apperrors.ErrSnapshotNotFound
		}
		return entities.EmptyDataset(), fmt.Errorf("get %s: %w", r.key, err)
	}
	return decodeDataset(data)
}

func (r *RedisSnapshotRepository) Save(ctx context.Context, dataset entities.Dataset) error {
	data, err := encodeDataset(dataset)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisSnapshotRepository) Driver() string { return config.DriverRedis }

func (r *RedisSnapshotRepository) Close() error { return r.client.Close() }
