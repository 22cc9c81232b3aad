// Package services holds the catalog's use cases.
//
// EntryService is the creation pipeline. It checks that every required field
// is present after trimming, parses the closed-set values, normalizes the
// date to the start of its day in UTC, applies the image policy and inserts
// the new entry, with status Open, at the front of the store. Every problem
// in a payload is reported together in one *ValidationError.
//
// Catalog is one UI session: it keeps the active query.Criteria and the
// current page, and renders PageView values on demand. Changing any filter,
// switching tabs or resetting always returns the session to page 1. Views
// are cached per (store revision, criteria) in a ViewCache.
//
// Snapshot write failures never fail a use case; they are logged at warn
// level and the in-memory change stands.
package services
