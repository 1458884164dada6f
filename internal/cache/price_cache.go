package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/GTDGit/print_api/internal/pricing"
)

// PriceCache publishes price snapshots to concurrent readers. Publishing is a
// single pointer swap.
type PriceCache struct {
	current atomic.Pointer[Snapshot]
	stale   atomic.Pointer[pricing.CacheStaleWarning]

	// staleMu serializes marker writes so a publish cannot clear a marker set
	// after its generation was read.
	staleMu  sync.Mutex
	staleGen uint64
}

// NewPriceCache starts with an empty snapshot at version 0.
func NewPriceCache() *PriceCache {
	c := &PriceCache{}
	c.current.Store(NewSnapshot(0, time.Time{}, nil))
	return c
}

// Current returns the snapshot readers should use for one whole calculation.
func (c *PriceCache) Current() *Snapshot {
	return c.current.Load()
}

// StaleGeneration counts local invalidations. Read it before loading the rows
// a snapshot is built from and pass it to Publish.
func (c *PriceCache) StaleGeneration() uint64 {
	c.staleMu.Lock()
	defer c.staleMu.Unlock()
	return c.staleGen
}

// Publish swaps in s unless a newer snapshot is already live. The stale marker
// is cleared only if nothing invalidated the cache since staleGen was read.
func (c *PriceCache) Publish(s *Snapshot, staleGen uint64) bool {
	for {
		cur := c.current.Load()
		if cur != nil && cur.Version() > s.Version() {
			return false
		}
		if c.current.CompareAndSwap(cur, s) {
			c.clearStale(staleGen)
			return true
		}
	}
}

func (c *PriceCache) clearStale(staleGen uint64) {
	c.staleMu.Lock()
	defer c.staleMu.Unlock()
	if c.staleGen == staleGen {
		c.stale.Store(nil)
	}
}

// MarkStale records that the catalog changed (or a rebuild failed) after the
// live snapshot was built. The first reason sticks until the next publish.
func (c *PriceCache) MarkStale(reason string, at time.Time) {
	c.staleMu.Lock()
	defer c.staleMu.Unlock()
	c.staleGen++
	c.stale.CompareAndSwap(nil, &pricing.CacheStaleWarning{Reason: reason, Since: at})
}

// MirrorStale copies a marker observed on another instance without counting
// as a local invalidation.
func (c *PriceCache) MirrorStale(reason string, at time.Time) {
	c.staleMu.Lock()
	defer c.staleMu.Unlock()
	c.stale.CompareAndSwap(nil, &pricing.CacheStaleWarning{Reason: reason, Since: at})
}

// Stale returns the stale marker, or nil when the live snapshot is current.
func (c *PriceCache) Stale() *pricing.CacheStaleWarning {
	return c.stale.Load()
}
