package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// CacheSyncer pulls price cache changes published by other instances.
type CacheSyncer interface {
	Sync(ctx context.Context) error
}

// CacheSyncWorker keeps this instance's price snapshot in step with the
// shared version counter.
type CacheSyncWorker struct {
	syncer   CacheSyncer
	interval time.Duration
}

// NewCacheSyncWorker constructs a CacheSyncWorker.
func NewCacheSyncWorker(syncer CacheSyncer, interval time.Duration) *CacheSyncWorker {
	return &CacheSyncWorker{syncer: syncer, interval: interval}
}

// Start begins the periodic sync loop until context is canceled.
func (w *CacheSyncWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting price cache sync worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Price cache sync worker stopped")
			return
		}
	}
}

func (w *CacheSyncWorker) run(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	if err := w.syncer.Sync(runCtx); err != nil {
		log.Warn().Err(err).Msg("Price cache sync failed")
	}
}
