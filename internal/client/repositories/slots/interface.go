// Package slots provides the local key/value slots the catalog persists its
// snapshot into.
//
// # Overview
//
// A slot is a named byte blob. The catalog keeps its whole collection in
// one slot and rewrites it after every mutation, so implementations only
// need whole-value reads and writes; there is no partial update.
//
// Implementations
//
//   - SQLiteRepository: a "slots" table in the local SQLite database (default)
//   - S3Repository: one object per key in an S3 / MinIO bucket
//   - MemoryRepository: process memory, used for ephemeral runs and tests
//
// # Contract
//
// Get returns (nil, nil) for a missing key. Set overwrites. Delete of a
// missing key is not an error.
package slots

import (
	"context"
)

// Repository is a durable string-keyed byte store.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
