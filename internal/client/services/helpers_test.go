package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lostfound/internal/client/images"
	"github.com/dmitrijs2005/lostfound/internal/client/models"
	"github.com/dmitrijs2005/lostfound/internal/client/repositories/entries"
	"github.com/dmitrijs2005/lostfound/internal/client/repositories/slots"
	"github.com/dmitrijs2005/lostfound/internal/logging"
)

const snapshotKey = "lostfound.items.v1"

var fixedNow = time.Date(2025, 4, 20, 15, 30, 0, 0, time.UTC)

// failingSlots accepts reads and rejects every write.
type failingSlots struct{ *slots.MemoryRepository }

func (failingSlots) Set(context.Context, string, []byte) error {
	return errors.New("storage quota exceeded")
}

type fixture struct {
	repo    slots.Repository
	store   *entries.Store
	svc     *EntryService
	catalog *Catalog
}

func newFixture(t *testing.T, repo slots.Repository, list []models.Entry) *fixture {
	t.Helper()
	ctx := context.Background()
	log := logging.Nop()

	store := entries.NewStore(repo, snapshotKey, log)
	store.Load(ctx)
	if list != nil {
		err := store.ReplaceAll(ctx, list)
		if err != nil {
			require.ErrorIs(t, err, entries.ErrPersistence)
		}
	}

	svc := NewEntryService(store, images.Policy{}, log)
	svc.now = func() time.Time { return fixedNow }
	seq := 0
	svc.newID = func() string { seq++; return fmt.Sprintf("id-%02d", seq) }

	return &fixture{
		repo:    repo,
		store:   store,
		svc:     svc,
		catalog: NewCatalog(store, svc, NewViewCache(16, time.Minute), 9, log),
	}
}

func mkEntry(id string, kind models.Kind, cat models.Category, loc models.Location, at time.Time) models.Entry {
	return models.Entry{
		ID:          id,
		Kind:        kind,
		Title:       "Title " + id,
		Description: "Description " + id,
		Category:    cat,
		Location:    loc,
		OccurredAt:  at,
		ContactName: "Alex",
		ContactInfo: "alex@example.com",
		Status:      models.StatusOpen,
	}
}

func validPayload() models.Payload {
	return models.Payload{
		Kind:        "Found",
		Title:       "  Blue water bottle ",
		Description: "Steel bottle with a dent",
		Category:    "Accessories",
		Location:    "Lab Block",
		Date:        "2025-04-18",
		ContactName: "Nia",
		ContactInfo: "nia@example.com",
	}
}
