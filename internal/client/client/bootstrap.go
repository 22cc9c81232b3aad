package client

import (
	"context"

	"github.com/dmitrijs2005/lostfound/internal/client/images"
	"github.com/dmitrijs2005/lostfound/internal/client/repositories/entries"
	"github.com/dmitrijs2005/lostfound/internal/client/services"
	"github.com/dmitrijs2005/lostfound/internal/config"
	"github.com/dmitrijs2005/lostfound/internal/logging"
)

// Bootstrap opens the configured slot backend, loads the snapshot and wires
// a Catalog over it. The returned close function is never nil.
func Bootstrap(ctx context.Context, cfg *config.Config, log logging.Logger) (*services.Catalog, func() error, error) {
	repo, closeFn, err := OpenSlots(ctx, cfg)
	if err != nil {
		return nil, closeFn, err
	}

	store := entries.NewStore(repo, cfg.SnapshotKey, log)
	store.Load(ctx)
	log.Info(ctx, "catalog ready", "driver", cfg.SlotDriver, "entries", store.Len())

	policy := images.Policy{MaxBytes: cfg.ImageMaxBytes, AllowedTypes: cfg.ImageAllowedTypes}
	creator := services.NewEntryService(store, policy, log)
	cache := services.NewViewCache(cfg.QueryCacheSize, cfg.QueryCacheTTL)

	return services.NewCatalog(store, creator, cache, cfg.PageSize, log), closeFn, nil
}
