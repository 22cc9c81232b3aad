package client

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lostfound/internal/config"
	"github.com/dmitrijs2005/lostfound/internal/logging"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesSlotsTable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "lf.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, tableExists(t, db, "goose_db_version"))
	assert.True(t, tableExists(t, db, "slots"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", SQLiteDSN(filepath.Join(t.TempDir(), "lf.db")))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
	assert.True(t, tableExists(t, db, "slots"))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:", SQLiteDSN(":memory:"))
	assert.Contains(t, SQLiteDSN("data/lf.db"), "file:data/lf.db?")
	assert.Contains(t, SQLiteDSN("data/lf.db"), "journal_mode(WAL)")
}

func TestOpenSlots_Drivers(t *testing.T) {
	ctx := context.Background()

	t.Run("sqlite persists across reopen", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.LoadDefaults()
		cfg.DatabasePath = filepath.Join(t.TempDir(), "lf.db")

		repo, closeFn, err := OpenSlots(ctx, cfg)
		require.NoError(t, err)
		require.NoError(t, repo.Set(ctx, cfg.SnapshotKey, []byte("[]")))
		require.NoError(t, closeFn())

		repo, closeFn, err = OpenSlots(ctx, cfg)
		require.NoError(t, err)
		defer closeFn()
		v, err := repo.Get(ctx, cfg.SnapshotKey)
		require.NoError(t, err)
		assert.Equal(t, []byte("[]"), v)
	})

	t.Run("memory", func(t *testing.T) {
		cfg := &config.Config{SlotDriver: config.DriverMemory}
		repo, closeFn, err := OpenSlots(ctx, cfg)
		require.NoError(t, err)
		require.NotNil(t, repo)
		require.NoError(t, closeFn())
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, closeFn, err := OpenSlots(ctx, &config.Config{SlotDriver: "etcd"})
		require.ErrorIs(t, err, ErrUnknownDriver)
		require.NotNil(t, closeFn)
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		_, _, err := OpenSlots(ctx, &config.Config{SlotDriver: config.DriverS3})
		require.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestBootstrap_MemoryDriverServesSeed(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SlotDriver = config.DriverMemory

	catalog, closeFn, err := Bootstrap(context.Background(), cfg, logging.Nop())
	require.NoError(t, err)
	defer closeFn()

	view := catalog.Current()
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, 1, view.TotalPages)
}
