package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/lostfound/internal/client/images"
	"github.com/dmitrijs2005/lostfound/internal/client/models"
	"github.com/dmitrijs2005/lostfound/internal/client/query"
	"github.com/dmitrijs2005/lostfound/internal/client/repositories/entries"
	"github.com/dmitrijs2005/lostfound/internal/logging"
)

// EntryService is the creation pipeline: it validates a payload, normalizes
// it into an Entry and inserts it into the store.
type EntryService struct {
	store  *entries.Store
	images images.Policy
	log    logging.Logger
	now    func() time.Time
	newID  func() string
}

func NewEntryService(store *entries.Store, policy images.Policy, log logging.Logger) *EntryService {
	return &EntryService{
		store:  store,
		images: policy,
		log:    log.With("component", "entries"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Create validates p and inserts the resulting entry with status Open.
// Invalid payloads return a *ValidationError and leave the store untouched.
// A failed snapshot write is logged and does not fail the creation.
func (s *EntryService) Create(ctx context.Context, p models.Payload) (models.Entry, error) {
	e, err := s.Build(p)
	if err != nil {
		entriesRejectedTotal.Inc()
		return models.Entry{}, err
	}

	if err := s.store.Insert(ctx, e); err != nil {
		if !errors.Is(err, entries.ErrPersistence) {
			return models.Entry{}, fmt.Errorf("insert entry: %w", err)
		}
		s.log.Warn(ctx, "entry created but not persisted", "id", e.ID, "error", err)
	}
	entriesCreatedTotal.WithLabelValues(string(e.Kind)).Inc()
	s.log.Info(ctx, "entry created", "id", e.ID, "type", e.Kind, "title", e.Title)
	return e, nil
}

// Build turns p into a new Entry without touching the store.
func (s *EntryService) Build(p models.Payload) (models.Entry, error) {
	verr := &ValidationError{}

	required := []struct {
		name  string
		value string
	}{
		{"type", p.Kind},
		{"title", p.Title},
		{"description", p.Description},
		{"category", p.Category},
		{"location", p.Location},
		{"contactName", p.ContactName},
		{"contact", p.ContactInfo},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			verr.Missing = append(verr.Missing, f.name)
		}
	}

	e := models.Entry{
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		ContactName: strings.TrimSpace(p.ContactName),
		ContactInfo: strings.TrimSpace(p.ContactInfo),
		Image:       strings.TrimSpace(p.Image),
		Status:      models.StatusOpen,
	}

	var err error
	if strings.TrimSpace(p.Kind) != "" {
		if e.Kind, err = models.ParseKind(p.Kind); err != nil {
			verr.Invalid = append(verr.Invalid, err)
		}
	}
	if strings.TrimSpace(p.Category) != "" {
		if e.Category, err = models.ParseCategory(p.Category); err != nil {
			verr.Invalid = append(verr.Invalid, err)
		}
	}
	if strings.TrimSpace(p.Location) != "" {
		if e.Location, err = models.ParseLocation(p.Location); err != nil {
			verr.Invalid = append(verr.Invalid, err)
		}
	}

	if e.OccurredAt, err = s.occurredAt(p.Date); err != nil {
		verr.Invalid = append(verr.Invalid, err)
	}
	if err := s.images.Check(e.Image); err != nil {
		verr.Invalid = append(verr.Invalid, err)
	}

	if !verr.empty() {
		return models.Entry{}, verr
	}
	e.ID = s.newID()
	return e, nil
}

// occurredAt defaults an empty date to now and truncates a given date to
// the start of its day in UTC.
func (s *EntryService) occurredAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.now().UTC(), nil
	}
	t, ok := query.ParseBound(raw)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
