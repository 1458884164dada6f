package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/GTDGit/print_api/internal/cache"
	"github.com/GTDGit/print_api/internal/config"
	"github.com/GTDGit/print_api/internal/models"
	"github.com/GTDGit/print_api/internal/pricing"
	"github.com/GTDGit/print_api/internal/utils"
)

// CacheStatus is reported by the admin status endpoint.
type CacheStatus struct {
	Version     int64      `json:"version"`
	BuiltAt     time.Time  `json:"builtAt"`
	EntryCount  int        `json:"entryCount"`
	Stale       bool       `json:"stale"`
	StaleReason string     `json:"staleReason,omitempty"`
	StaleSince  *time.Time `json:"staleSince,omitempty"`
}

// PriceCacheService owns the precomputed price cache lifecycle: rebuild,
// reload from the database, invalidation and cross-instance sync.
type PriceCacheService struct {
	catalog CatalogStore
	store   PriceStore
	coord   CacheCoordinator
	prices  *cache.PriceCache
	cfg     config.CacheConfig

	mu    sync.Mutex
	group singleflight.Group
	now   func() time.Time
}

// NewPriceCacheService constructs a PriceCacheService.
func NewPriceCacheService(catalog CatalogStore, store PriceStore, coord CacheCoordinator, prices *cache.PriceCache, cfg config.CacheConfig) *PriceCacheService {
	return &PriceCacheService{
		catalog: catalog,
		store:   store,
		coord:   coord,
		prices:  prices,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Rebuild derives a fresh snapshot from the catalog, persists it, then
// publishes it. Concurrent callers in this process share one rebuild; other
// instances are kept out by the Redis lock. On failure the previous snapshot
// stays live and the cache is marked stale.
func (s *PriceCacheService) Rebuild(ctx context.Context) (models.PriceCacheMeta, error) {
	v, err, shared := s.group.Do("rebuild", func() (interface{}, error) {
		// One caller's cancellation must not abort a rebuild others wait on.
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.RebuildTimeout)
		defer cancel()
		return s.rebuild(rctx)
	})
	if shared {
		log.Debug().Msg("price cache rebuild shared with concurrent caller")
	}
	if err != nil {
		return models.PriceCacheMeta{}, err
	}
	return v.(models.PriceCacheMeta), nil
}

func (s *PriceCacheService) rebuild(ctx context.Context) (models.PriceCacheMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	release, err := s.coord.AcquireRebuildLock(ctx, s.cfg.LockTTL)
	switch {
	case errors.Is(err, cache.ErrLockHeld):
		return models.PriceCacheMeta{}, utils.ErrCacheRebuildInProgress
	case err != nil:
		// The meta row lock in the database still serializes writers.
		log.Warn().Err(err).Msg("redis rebuild lock unavailable, continuing with database lock only")
	default:
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				log.Warn().Err(err).Msg("failed to release price cache rebuild lock")
			}
		}()
	}

	// Invalidations counted after this point survive the publish.
	localGen := s.prices.StaleGeneration()
	remoteGen, err := s.coord.StaleGeneration(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read shared stale generation, keeping shared marker")
		remoteGen = -1
	}

	start := s.now()
	meta, err := s.buildAndPersist(ctx, start, localGen)
	if err != nil {
		s.markStale(ctx, "rebuild failed: "+err.Error())
		log.Error().Err(err).Msg("price cache rebuild failed, serving last snapshot")
		return models.PriceCacheMeta{}, err
	}

	if err := s.coord.PublishVersion(ctx, meta.Version, remoteGen); err != nil {
		log.Warn().Err(err).Int64("version", meta.Version).Msg("failed to publish price cache version")
	}
	log.Info().
		Int64("version", meta.Version).
		Int("entries", meta.EntryCount).
		Dur("took", s.now().Sub(start)).
		Msg("price cache rebuilt")
	return meta, nil
}

func (s *PriceCacheService) buildAndPersist(ctx context.Context, builtAt time.Time, staleGen uint64) (models.PriceCacheMeta, error) {
	sizes, papers, err := s.catalog.LoadPriceSources(ctx)
	if err != nil {
		return models.PriceCacheMeta{}, fmt.Errorf("load price sources: %w", err)
	}
	s.checkTiers(ctx)

	snap, warnings := cache.BuildSnapshot(0, builtAt, sizes, papers)
	for _, w := range warnings {
		log.Warn().Str("detail", w).Msg("price cache rebuild skipped size")
	}

	version, err := s.store.ReplaceAll(ctx, snap.Entries(), builtAt)
	if err != nil {
		return models.PriceCacheMeta{}, fmt.Errorf("persist price cache: %w", err)
	}
	published := snap.WithVersion(version, builtAt)
	s.prices.Publish(published, staleGen)
	return published.Meta(), nil
}

// checkTiers logs tier sets that are not a clean partition. It never fails
// the rebuild: lookups still resolve with the higher-min rule.
func (s *PriceCacheService) checkTiers(ctx context.Context) {
	rows, err := s.catalog.LoadCatalog(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not load catalog for tier validation")
		return
	}
	cat := pricing.NewCatalog(rows)
	if err := pricing.ValidatePartition(cat.PrintTierRanges(), 1); err != nil {
		log.Warn().Err(err).Msg("print cost tiers do not partition face counts")
	}
	for code, ranges := range cat.BindingTierRanges() {
		if err := pricing.ValidatePartition(ranges, 1); err != nil {
			log.Warn().Err(err).Str("binding", code).Msg("binding cost tiers do not partition quantities")
		}
	}
}

// Reload publishes the persisted snapshot if it is newer than the live one.
func (s *PriceCacheService) Reload(ctx context.Context) (bool, error) {
	staleGen := s.prices.StaleGeneration()
	meta, entries, err := s.store.LoadAll(ctx)
	if err != nil {
		return false, fmt.Errorf("load persisted price cache: %w", err)
	}
	if meta.Version <= s.prices.Current().Version() {
		return false, nil
	}
	ok := s.prices.Publish(cache.NewSnapshot(meta.Version, meta.BuiltAt, entries), staleGen)
	if ok {
		log.Info().Int64("version", meta.Version).Int("entries", len(entries)).Msg("price cache reloaded")
	}
	return ok, nil
}

// Warm loads the persisted snapshot at startup and rebuilds when none exists.
func (s *PriceCacheService) Warm(ctx context.Context) error {
	if _, err := s.Reload(ctx); err != nil {
		return err
	}
	if s.prices.Current().Len() > 0 {
		return nil
	}
	_, err := s.Rebuild(ctx)
	if errors.Is(err, utils.ErrCacheRebuildInProgress) {
		return nil
	}
	return err
}

// Invalidate marks the cache stale after an external catalog write. Pricing
// keeps using the live snapshot until the next rebuild.
func (s *PriceCacheService) Invalidate(ctx context.Context, reason string) {
	if reason == "" {
		reason = "catalog changed"
	}
	s.markStale(ctx, reason)
	log.Warn().Str("reason", reason).Int64("version", s.prices.Current().Version()).Msg("price cache invalidated")
}

func (s *PriceCacheService) markStale(ctx context.Context, reason string) {
	s.prices.MarkStale(reason, s.now())
	if err := s.coord.MarkStale(ctx, reason); err != nil {
		log.Warn().Err(err).Msg("failed to share price cache stale marker")
	}
}

// Sync pulls state published by other instances: a newer version triggers a
// reload, a shared stale marker is mirrored locally.
func (s *PriceCacheService) Sync(ctx context.Context) error {
	remote, err := s.coord.Version(ctx)
	if err != nil {
		return fmt.Errorf("read shared cache version: %w", err)
	}
	if remote > s.prices.Current().Version() {
		if _, err := s.Reload(ctx); err != nil {
			return err
		}
	}
	reason, err := s.coord.StaleReason(ctx)
	if err != nil {
		return fmt.Errorf("read shared stale marker: %w", err)
	}
	if reason != "" {
		s.prices.MirrorStale(reason, s.now())
	}
	return nil
}

// Status reports the live snapshot and its stale marker.
func (s *PriceCacheService) Status() CacheStatus {
	snap := s.prices.Current()
	st := CacheStatus{
		Version:    snap.Version(),
		BuiltAt:    snap.BuiltAt(),
		EntryCount: snap.Len(),
	}
	if w := s.prices.Stale(); w != nil {
		since := w.Since
		st.Stale = true
		st.StaleReason = w.Reason
		st.StaleSince = &since
	}
	return st
}
