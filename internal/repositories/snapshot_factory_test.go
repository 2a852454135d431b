package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"inventory-service/pkg/config"
	"inventory-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenSnapshotRepository(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		driver string
		want   string
	}{
		{"", config.DriverFile},
		{config.DriverFile, config.DriverFile},
		{config.DriverMemory, config.DriverMemory},
		{config.DriverSQLite, config.DriverSQLite},
	}
	for _, tc := range cases {
		t.Run(tc.want+"/"+tc.driver, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.Storage.Driver = tc.driver
			cfg.Storage.DataFile = filepath.Join(dir, "data.json")
			cfg.Storage.SQLitePath = filepath.Join(dir, "inventory.db")

			repo, err := OpenSnapshotRepository(context.Background(), cfg, zap.NewNop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = repo.Close() })
			assert.Equal(t, tc.want, repo.Driver())
		})
	}
}

func TestOpenSnapshotRepository_Rejects(t *testing.T) {
	cfg := config.Defaults()
	cfg.Storage.Driver = "floppy"
	_, err := OpenSnapshotRepository(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, `unknown storage driver "floppy"`)

	cfg = config.Defaults()
	cfg.Storage.Driver = config.DriverS3
	cfg.S3.Bucket = ""
	_, err = OpenSnapshotRepository(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestInstrumentedSnapshotRepository_CountsSaves(t *testing.T) {
	m := metrics.New()
	inner := NewMemorySnapshotRepository()
	repo := NewInstrumentedSnapshotRepository(inner, m)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleDataset()))
	inner.FailWith(errors.New("boom"))
	require.Error(t, repo.Save(ctx, sampleDataset()))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SnapshotSaves.WithLabelValues(config.DriverMemory, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SnapshotSaves.WithLabelValues(config.DriverMemory, "error")))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleDataset(), loaded)
}
