package slots

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE slots (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at INTEGER NOT NULL DEFAULT 0
);`)
	require.NoError(t, err)
	return db
}

func TestSQLite_SetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte(`[{"id":"a"}]`)))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"a"}]`), v)
}

func TestSQLite_GetMissingReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLite_SetEmptyValueIsNotMissing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", nil))
	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Empty(t, v)
}

func TestSQLite_SetOverwritesAndStampsTime(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	r.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	r.now = func() time.Time { return time.UnixMilli(1_700_000_000_500) }
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)

	var ts int64
	require.NoError(t, db.QueryRow(`SELECT updated_at FROM slots WHERE key = 'k'`).Scan(&ts))
	assert.Equal(t, int64(1_700_000_000_500), ts)
}

func TestSQLite_DeleteIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
	require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))

	require.NoError(t, r.Delete(ctx, "a"))
	require.NoError(t, r.Delete(ctx, "a"))
	v, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = r.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xBB, 0xCC}, v)
}

func TestSQLite_ErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to read slot[k]")

	err = r.Set(ctx, "k", []byte("v"))
	require.ErrorContains(t, err, "failed to write slot[k]")

	err = r.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete slot[k]")
}

func TestMemory_Contract(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	in := []byte("value")
	require.NoError(t, r.Set(ctx, "k", in))
	in[0] = 'X'

	v, err = r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("value"), v, "stored value must be a copy")
	v[0] = 'Y'

	v, err = r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("value"), v, "returned value must be a copy")

	require.NoError(t, r.Delete(ctx, "missing"))
	require.NoError(t, r.Delete(ctx, "k"))
	v, err = r.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}
