// Package client bootstraps the local storage used by the catalog.
//
// # Overview
//
// The catalog persists its whole collection as one JSON snapshot in a
// key/value slot (see package slots). This package opens the slot backend
// chosen in configuration:
//
//   - sqlite: a local database file, migrated with the embedded goose
//     migrations (InitDatabase, RunMigrations).
//   - s3: one object per slot key in a bucket (AWS or any S3-compatible
//     endpoint).
//   - memory: process memory only; nothing survives a restart.
//
// # Error Handling
//
// Failures to reach the backend are wrapped in ErrStorageUnavailable; an
// unrecognised driver name yields ErrUnknownDriver. Both can be matched with
// errors.Is.
//
// See Also
//
//   - DB helpers: InitDatabase, RunMigrations, SQLiteDSN
//   - Drivers:    OpenSlots
package client
