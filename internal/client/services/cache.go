package services

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dmitrijs2005/lostfound/internal/client/query"
)

// ViewCache memoizes evaluated views by (store revision, criteria). Any
// mutation bumps the revision, so stale views are never served; they just
// age out of the LRU.
type ViewCache struct {
	lru *expirable.LRU[string, query.View]
}

// NewViewCache returns nil when size is not positive; a nil *ViewCache is a
// valid, always-missing cache.
func NewViewCache(size int, ttl time.Duration) *ViewCache {
	if size <= 0 {
		return nil
	}
	return &ViewCache{lru: expirable.NewLRU[string, query.View](size, nil, ttl)}
}

func viewKey(revision uint64, c query.Criteria) string {
	return strconv.FormatUint(revision, 10) + "\x1e" + c.Key()
}

func (c *ViewCache) Get(revision uint64, crit query.Criteria) (query.View, bool) {
	if c == nil {
		return query.View{}, false
	}
	v, ok := c.lru.Get(viewKey(revision, crit))
	if ok {
		viewCacheHitsTotal.Inc()
		return v, true
	}
	viewCacheMissesTotal.Inc()
	return query.View{}, false
}

func (c *ViewCache) Add(revision uint64, crit query.Criteria, v query.View) {
	if c == nil {
		return
	}
	c.lru.Add(viewKey(revision, crit), v)
}

func (c *ViewCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
