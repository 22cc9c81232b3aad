package entries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrijs2005/lostfound/internal/client/models"
	"github.com/dmitrijs2005/lostfound/internal/client/repositories/slots"
	"github.com/dmitrijs2005/lostfound/internal/logging"
)

var (
	// ErrPersistence marks a mutation whose snapshot write failed. The
	// in-memory state already reflects the mutation.
	ErrPersistence = errors.New("snapshot write failed")

	ErrDuplicateID  = errors.New("duplicate entry id")
	ErrInvalidEntry = errors.New("incomplete entry")
)

var snapshotWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "lostfound_snapshot_write_failures_total",
	Help: "Number of failed snapshot writes to the slot backend.",
})

// Store is the in-memory Lost & Found collection backed by one slot.
type Store struct {
	slots slots.Repository
	key   string
	log   logging.Logger
	now   func() time.Time

	entries  []models.Entry
	revision uint64
}

func NewStore(repo slots.Repository, key string, log logging.Logger) *Store {
	return &Store{
		slots:   repo,
		key:     key,
		log:     log.With("component", "store", "slot", key),
		now:     time.Now,
		entries: []models.Entry{},
	}
}

// Load reads the snapshot. A missing, unreadable or malformed snapshot falls
// back to the seed collection; entries that fail validation are dropped.
func (s *Store) Load(ctx context.Context) {
	raw, err := s.slots.Get(ctx, s.key)
	switch {
	case err != nil:
		s.log.Warn(ctx, "snapshot read failed, using seed", "error", err)
		s.adopt(Seed(s.now()))
		return
	case raw == nil:
		s.log.Info(ctx, "no snapshot found, using seed")
		s.adopt(Seed(s.now()))
		return
	}

	var decoded []models.Entry
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.log.Warn(ctx, "snapshot is malformed, using seed", "error", err)
		s.adopt(Seed(s.now()))
		return
	}

	kept := s.validOnly(ctx, decoded)
	s.adopt(kept)
	s.log.Debug(ctx, "snapshot loaded", "entries", len(kept))
}

// ReplaceAll adopts list as the whole collection and rewrites the snapshot.
// Incomplete entries and repeated ids are dropped, as on Load.
func (s *Store) ReplaceAll(ctx context.Context, list []models.Entry) error {
	s.adopt(s.validOnly(ctx, list))
	return s.persist(ctx)
}

// Reset deletes the snapshot and adopts the seed collection, as Load does on
// a fresh slot. The seed is written by the next mutation.
func (s *Store) Reset(ctx context.Context) error {
	s.adopt(Seed(s.now()))
	if err := s.slots.Delete(ctx, s.key); err != nil {
		snapshotWriteFailures.Inc()
		return fmt.Errorf("%w: delete: %w", ErrPersistence, err)
	}
	s.log.Info(ctx, "snapshot deleted, using seed")
	return nil
}

// validOnly returns the complete entries of list, keeping the first of any
// repeated id. list is not modified.
func (s *Store) validOnly(ctx context.Context, list []models.Entry) []models.Entry {
	kept := make([]models.Entry, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, e := range list {
		if !e.Complete() {
			s.log.Warn(ctx, "dropping invalid entry", "id", e.ID, "missing", e.MissingFields())
			continue
		}
		if _, dup := seen[e.ID]; dup {
			s.log.Warn(ctx, "dropping duplicate entry", "id", e.ID)
			continue
		}
		seen[e.ID] = struct{}{}
		kept = append(kept, e)
	}
	return kept
}

// Insert prepends e and rewrites the snapshot.
func (s *Store) Insert(ctx context.Context, e models.Entry) error {
	if !e.Complete() {
		return fmt.Errorf("%w: %s", ErrInvalidEntry, e.ID)
	}
	if _, ok := s.Get(e.ID); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}
	s.adopt(slices.Insert(s.entries, 0, e))
	return s.persist(ctx)
}

// ToggleStatus flips the status of the entry with the given id. ok is false,
// and nothing is written, when no such entry exists.
func (s *Store) ToggleStatus(ctx context.Context, id string) (updated models.Entry, ok bool, err error) {
	i := s.index(id)
	if i < 0 {
		return models.Entry{}, false, nil
	}
	next := slices.Clone(s.entries)
	next[i].Status = next[i].Status.Toggle()
	s.adopt(next)
	return next[i], true, s.persist(ctx)
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []models.Entry { return slices.Clone(s.entries) }

func (s *Store) Get(id string) (models.Entry, bool) {
	if i := s.index(id); i >= 0 {
		return s.entries[i], true
	}
	return models.Entry{}, false
}

func (s *Store) Len() int { return len(s.entries) }

// Revision increases on every change of the collection.
func (s *Store) Revision() uint64 { return s.revision }

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.entries, func(e models.Entry) bool { return e.ID == id })
}

func (s *Store) adopt(list []models.Entry) {
	if list == nil {
		list = []models.Entry{}
	}
	s.entries = list
	s.revision++
}

func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		snapshotWriteFailures.Inc()
		return fmt.Errorf("%w: encode: %w", ErrPersistence, err)
	}
	if err := s.slots.Set(ctx, s.key, raw); err != nil {
		snapshotWriteFailures.Inc()
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}
