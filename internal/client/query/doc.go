// Package query is the in-memory query engine of the Lost & Found catalog.
//
// # Overview
//
// A query is a pure function of (entries, criteria). Criteria is an
// immutable value changed only through Apply, which returns a new value.
// Evaluate runs every predicate in a single pass and sorts the survivors by
// date, newest first, with a stable sort. The returned View can be paged or
// iterated any number of times.
//
// # Predicates
//
// Each dimension has its own predicate (MatchKind, MatchCategory,
// MatchStatus, MatchLocation, MatchText, MatchDateRange). An unset dimension
// matches everything; set dimensions are combined with AND.
//
// Date bounds accept "2006-01-02" or RFC 3339. A malformed bound is treated
// as unset and never produces an error.
//
// Typical Usage
//
//	c, err := query.Criteria{}.Apply(
//	    query.Set(query.DimensionTab, "Found"),
//	    query.Set(query.DimensionQuery, "wallet"),
//	)
//	view := query.Evaluate(store.All(), c)
//	first := view.Page(1, query.DefaultPageSize)
package query
