// Package entries holds the canonical Lost & Found collection.
//
// # Overview
//
// Store owns the ordered list of entries for one client. It is loaded once
// from a key/value slot (see package slots) and, after every mutation, the
// whole collection is written back to the same slot as one JSON array:
//
//	[{"id":"…","type":"Lost","title":"…","date":"2025-01-02T10:00:00Z",…}, …]
//
// There are no deltas and no schema version. A missing, unreadable or
// malformed snapshot is replaced in memory by a small seed collection; the
// seed is written only when the first mutation happens.
//
// # Persistence failures
//
// Writes are best-effort. When the slot write fails the in-memory change is
// kept and the mutation returns an error wrapping ErrPersistence, so callers
// can log it and carry on. Each failure is counted by the
// lostfound_snapshot_write_failures_total Prometheus counter.
//
// # Concurrency
//
// Store is not safe for concurrent use. Callers that share one Store across
// goroutines must serialize access themselves.
//
// Typical Usage
//
//	store := entries.NewStore(repo, "lostfound.items.v1", logger)
//	store.Load(ctx)
//	_ = store.Insert(ctx, entry)
//	updated, ok, err := store.ToggleStatus(ctx, id)
package entries
