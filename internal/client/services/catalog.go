package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/lostfound/internal/client/models"
	"github.com/dmitrijs2005/lostfound/internal/client/query"
	"github.com/dmitrijs2005/lostfound/internal/client/repositories/entries"
	"github.com/dmitrijs2005/lostfound/internal/logging"
)

// PageView is what a UI renders: one page of the filtered, ordered
// collection plus the paging summary.
type PageView struct {
	Items      []models.Entry
	Page       int
	TotalPages int
	Total      int
	Criteria   query.Criteria
}

// Catalog is one UI session over the store: the active criteria and the
// current page. It is not safe for concurrent use.
type Catalog struct {
	store    *entries.Store
	creator  *EntryService
	cache    *ViewCache
	log      logging.Logger
	pageSize int

	criteria query.Criteria
	page     int
}

func NewCatalog(store *entries.Store, creator *EntryService, cache *ViewCache, pageSize int, log logging.Logger) *Catalog {
	if pageSize < 1 {
		pageSize = query.DefaultPageSize
	}
	return &Catalog{
		store:    store,
		creator:  creator,
		cache:    cache,
		log:      log.With("component", "catalog"),
		pageSize: pageSize,
		page:     1,
	}
}

func (c *Catalog) Criteria() query.Criteria { return c.criteria }

func (c *Catalog) Page() int { return c.page }

func (c *Catalog) PageSize() int { return c.pageSize }

// SetCriterion changes one filter dimension and returns to page 1, even when
// the value is unchanged. Invalid values leave the session untouched.
func (c *Catalog) SetCriterion(d query.Dimension, value string) error {
	next, err := c.criteria.Apply(query.Set(d, value))
	if err != nil {
		return err
	}
	c.criteria = next
	c.page = 1
	return nil
}

// SetTab selects "All", "Lost" or "Found" and returns to page 1.
func (c *Catalog) SetTab(tab string) error {
	return c.SetCriterion(query.DimensionTab, tab)
}

// ResetCriteria clears every dimension, including the tab, and returns to
// page 1.
func (c *Catalog) ResetCriteria() {
	c.criteria = query.Criteria{}
	c.page = 1
}

// SetPage moves to page n. Pages outside the result render empty.
func (c *Catalog) SetPage(n int) { c.page = n }

// Next advances one page unless already on the last one.
func (c *Catalog) Next() bool {
	if c.page >= c.view(c.criteria).TotalPages(c.pageSize) {
		return false
	}
	c.page++
	return true
}

// Prev goes back one page unless already on the first one.
func (c *Catalog) Prev() bool {
	if c.page <= 1 {
		return false
	}
	c.page--
	return true
}

// Current renders the session's page.
func (c *Catalog) Current() PageView {
	return c.Query(c.criteria, c.page)
}

// Query renders page n for arbitrary criteria without touching the session.
func (c *Catalog) Query(crit query.Criteria, n int) PageView {
	v := c.view(crit)
	return PageView{
		Items:      v.Page(n, c.pageSize),
		Page:       n,
		TotalPages: v.TotalPages(c.pageSize),
		Total:      v.Len(),
		Criteria:   crit,
	}
}

// Create runs the creation pipeline. The page is kept.
func (c *Catalog) Create(ctx context.Context, p models.Payload) (models.Entry, error) {
	return c.creator.Create(ctx, p)
}

// ToggleStatus flips Open/Claimed for id. ok is false for an unknown id.
// A failed snapshot write is logged and otherwise ignored.
func (c *Catalog) ToggleStatus(ctx context.Context, id string) (models.Entry, bool) {
	e, ok, err := c.store.ToggleStatus(ctx, id)
	if !ok {
		return models.Entry{}, false
	}
	if err != nil {
		if errors.Is(err, entries.ErrPersistence) {
			c.log.Warn(ctx, "status changed but not persisted", "id", id, "error", err)
		} else {
			c.log.Error(ctx, "status change failed", "id", id, "error", err)
		}
	}
	statusTogglesTotal.WithLabelValues(string(e.Status)).Inc()
	c.log.Info(ctx, "status changed", "id", id, "status", e.Status)
	return e, true
}

// ResetCatalog discards the stored collection in favour of the sample
// entries and clears the session. A failed slot delete is logged only.
func (c *Catalog) ResetCatalog(ctx context.Context) {
	if err := c.store.Reset(ctx); err != nil {
		c.log.Warn(ctx, "catalog reset but snapshot not deleted", "error", err)
	}
	c.ResetCriteria()
	c.log.Info(ctx, "catalog reset to sample entries", "entries", c.store.Len())
}

func (c *Catalog) Get(id string) (models.Entry, bool) { return c.store.Get(id) }

func (c *Catalog) view(crit query.Criteria) query.View {
	rev := c.store.Revision()
	if v, ok := c.cache.Get(rev, crit); ok {
		return v
	}
	start := time.Now()
	v := query.Evaluate(c.store.All(), crit)
	evaluateDuration.Observe(time.Since(start).Seconds())
	c.cache.Add(rev, crit, v)
	return v
}
