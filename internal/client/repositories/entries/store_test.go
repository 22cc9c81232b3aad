package entries

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lostfound/internal/client/models"
	"github.com/dmitrijs2005/lostfound/internal/client/repositories/slots"
	"github.com/dmitrijs2005/lostfound/internal/logging"
)

const key = "lostfound.items.v1"

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// flakyRepo wraps a MemoryRepository and fails reads or writes on demand.
type flakyRepo struct {
	*slots.MemoryRepository
	getErr error
	setErr error
	sets   int
}

func newFlakyRepo() *flakyRepo {
	return &flakyRepo{MemoryRepository: slots.NewMemoryRepository()}
}

func (r *flakyRepo) Get(ctx context.Context, k string) ([]byte, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.MemoryRepository.Get(ctx, k)
}

func (r *flakyRepo) Set(ctx context.Context, k string, v []byte) error {
	r.sets++
	if r.setErr != nil {
		return r.setErr
	}
	return r.MemoryRepository.Set(ctx, k, v)
}

func newStore(repo slots.Repository) *Store {
	s := NewStore(repo, key, logging.Nop())
	s.now = func() time.Time { return fixedNow }
	return s
}

func entry(id string, kind models.Kind, at time.Time) models.Entry {
	return models.Entry{
		ID:          id,
		Kind:        kind,
		Title:       "Item " + id,
		Description: "Desc " + id,
		Category:    models.CategoryOther,
		Location:    models.LocationParking,
		OccurredAt:  at,
		ContactName: "Sam",
		ContactInfo: "sam@example.com",
		Status:      models.StatusOpen,
	}
}

func TestLoad_MissingSnapshotUsesSeedWithoutWriting(t *testing.T) {
	repo := newFlakyRepo()
	s := newStore(repo)

	s.Load(context.Background())

	require.Equal(t, 3, s.Len())
	assert.Equal(t, 0, repo.sets, "seed must not be persisted on load")

	var lost, found int
	for _, e := range s.All() {
		switch e.Kind {
		case models.KindLost:
			lost++
		case models.KindFound:
			found++
		}
		assert.True(t, e.Complete(), "seed entry %s must be complete", e.ID)
	}
	assert.Equal(t, 2, lost)
	assert.Equal(t, 1, found)
	assert.Equal(t, fixedNow.Add(-2*day), s.All()[0].OccurredAt)
}

func TestLoad_CorruptOrUnreadableSnapshotUsesSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed json", func(t *testing.T) {
		repo := newFlakyRepo()
		require.NoError(t, repo.MemoryRepository.Set(ctx, key, []byte(`{not json`)))
		s := newStore(repo)
		s.Load(ctx)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("read error", func(t *testing.T) {
		repo := newFlakyRepo()
		repo.getErr = errors.New("disk gone")
		s := newStore(repo)
		s.Load(ctx)
		assert.Equal(t, 3, s.Len())
	})
}

func TestLoad_EmptyArrayIsNotReplacedBySeed(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	require.NoError(t, repo.Set(ctx, key, []byte(`[]`)))

	s := newStore(repo)
	s.Load(ctx)
	assert.Equal(t, 0, s.Len())
}

func TestLoad_DropsInvalidAndDuplicateEntries(t *testing.T) {
	ctx := context.Background()
	good := entry("a", models.KindLost, fixedNow)
	noTitle := entry("b", models.KindFound, fixedNow)
	noTitle.Title = "  "
	badStatus := entry("c", models.KindFound, fixedNow)
	badStatus.Status = "Lost forever"
	dup := entry("a", models.KindFound, fixedNow)

	raw, err := json.Marshal([]models.Entry{good, noTitle, badStatus, dup})
	require.NoError(t, err)
	repo := newFlakyRepo()
	require.NoError(t, repo.Set(ctx, key, raw))

	s := newStore(repo)
	s.Load(ctx)
	require.Equal(t, []models.Entry{good}, s.All())
}

func TestReplaceAll_DropsInvalidAndDuplicateEntries(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	s := newStore(repo)

	good := entry("x", models.KindLost, fixedNow)
	twin := entry("x", models.KindFound, fixedNow.Add(time.Hour))
	require.NoError(t, s.ReplaceAll(ctx, []models.Entry{{ID: "x"}, good, twin, {ID: "y"}}))
	assert.Equal(t, []models.Entry{good}, s.All())

	raw, err := repo.Get(ctx, key)
	require.NoError(t, err)
	var persisted []models.Entry
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, "x", persisted[0].ID)

	require.NoError(t, s.ReplaceAll(ctx, []models.Entry{{ID: "x"}, {ID: "x"}}))
	assert.Empty(t, s.All())
}

func TestInsert_RejectsIncompleteEntry(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	s := newStore(repo)
	require.NoError(t, s.ReplaceAll(ctx, nil))
	writes := repo.sets

	err := s.Insert(ctx, models.Entry{ID: "bare"})
	require.ErrorIs(t, err, ErrInvalidEntry)
	assert.Zero(t, s.Len())
	assert.Equal(t, writes, repo.sets)
}

func TestReset_DeletesSnapshotAndRestoresSeed(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	s := newStore(repo)
	require.NoError(t, s.ReplaceAll(ctx, []models.Entry{entry("only", models.KindLost, fixedNow)}))
	rev := s.Revision()

	require.NoError(t, s.Reset(ctx))
	assert.Equal(t, Seed(fixedNow), s.All())
	assert.Greater(t, s.Revision(), rev)

	raw, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, raw, "snapshot slot must be empty after reset")

	reloaded := newStore(repo)
	reloaded.Load(ctx)
	assert.Equal(t, Seed(fixedNow), reloaded.All())
}

func TestReset_DeleteFailureIsPersistenceError(t *testing.T) {
	ctx := context.Background()
	repo := &failingDeleteRepo{flakyRepo: newFlakyRepo(), err: errors.New("bucket locked")}
	s := newStore(repo)
	require.NoError(t, s.ReplaceAll(ctx, nil))

	err := s.Reset(ctx)
	require.ErrorIs(t, err, ErrPersistence)
	assert.ErrorContains(t, err, "bucket locked")
	assert.Equal(t, 3, s.Len(), "memory state is reset even when the slot is not")
}

type failingDeleteRepo struct {
	*flakyRepo
	err error
}

func (r *failingDeleteRepo) Delete(context.Context, string) error { return r.err }

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	list := []models.Entry{
		entry("x", models.KindLost, fixedNow.Add(-time.Hour)),
		entry("y", models.KindFound, fixedNow),
	}
	list[1].Image = "data:image/png;base64,AAAA"
	list[1].Status = models.StatusClaimed

	s := newStore(repo)
	require.NoError(t, s.ReplaceAll(ctx, list))

	reloaded := newStore(repo)
	reloaded.Load(ctx)
	require.Len(t, reloaded.All(), 2)
	for i, e := range reloaded.All() {
		assert.Equal(t, list[i].ID, e.ID)
		assert.True(t, list[i].OccurredAt.Equal(e.OccurredAt))
		assert.Equal(t, list[i].Status, e.Status)
		assert.Equal(t, list[i].Image, e.Image)
	}
}

func TestInsert_PrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	s := newStore(repo)
	s.Load(ctx)
	rev := s.Revision()

	e := entry("new", models.KindFound, fixedNow)
	require.NoError(t, s.Insert(ctx, e))

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, "new", s.All()[0].ID)
	assert.Greater(t, s.Revision(), rev)

	raw, err := repo.Get(ctx, key)
	require.NoError(t, err)
	var persisted []models.Entry
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Len(t, persisted, 4, "seed is written together with the first mutation")

	err = s.Insert(ctx, e)
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 4, s.Len())
}

func TestToggleStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	s := newStore(repo)
	require.NoError(t, s.ReplaceAll(ctx, []models.Entry{entry("k", models.KindLost, fixedNow)}))
	writes := repo.sets

	t.Run("unknown id is a no-op", func(t *testing.T) {
		rev := s.Revision()
		_, ok, err := s.ToggleStatus(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, rev, s.Revision())
		assert.Equal(t, writes, repo.sets)
	})

	t.Run("toggle twice restores status", func(t *testing.T) {
		updated, ok, err := s.ToggleStatus(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, models.StatusClaimed, updated.Status)

		got, _ := s.Get("k")
		assert.Equal(t, models.StatusClaimed, got.Status)

		updated, _, err = s.ToggleStatus(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, models.StatusOpen, updated.Status)
		assert.Equal(t, writes+2, repo.sets)
	})
}

func TestPersistenceFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	repo.setErr = errors.New("quota exceeded")
	s := newStore(repo)
	s.Load(ctx)

	before := testutil.ToFloat64(snapshotWriteFailures)

	err := s.Insert(ctx, entry("n", models.KindLost, fixedNow))
	require.ErrorIs(t, err, ErrPersistence)
	assert.ErrorContains(t, err, "quota exceeded")
	assert.Equal(t, 4, s.Len())
	_, ok := s.Get("n")
	assert.True(t, ok)

	updated, ok, err := s.ToggleStatus(ctx, "n")
	require.ErrorIs(t, err, ErrPersistence)
	require.True(t, ok)
	assert.Equal(t, models.StatusClaimed, updated.Status)

	assert.Equal(t, before+2, testutil.ToFloat64(snapshotWriteFailures))
}

func TestAll_ReturnsCopy(t *testing.T) {
	s := newStore(newFlakyRepo())
	s.Load(context.Background())

	list := s.All()
	list[0].Title = "mutated"
	assert.NotEqual(t, "mutated", s.All()[0].Title)
}

func TestSeed_StableIDs(t *testing.T) {
	a := Seed(fixedNow)
	b := Seed(fixedNow.Add(time.Hour))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
	assert.NotEqual(t, a[0].ID, a[1].ID)
}
