package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lostfound/internal/client/repositories/slots"
	"github.com/dmitrijs2005/lostfound/internal/config"
)

// OpenSlots builds the slot repository selected by cfg.SlotDriver. The
// returned close function releases the backing resources and is never nil.
func OpenSlots(ctx context.Context, cfg *config.Config) (slots.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.SlotDriver {
	case config.DriverSQLite:
		db, err := InitDatabase(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, noop, err
		}
		return slots.NewSQLiteRepository(db), db.Close, nil

	case config.DriverS3:
		repo, err := slots.NewS3Repository(ctx, slots.S3Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			Prefix:          cfg.S3.Prefix,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			PathStyle:       cfg.S3.PathStyle,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		return repo, noop, nil

	case config.DriverMemory:
		return slots.NewMemoryRepository(), noop, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.SlotDriver)
	}
}
