package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	keyVersion     = "price_cache:version"
	keyStale       = "price_cache:stale"
	keyStaleGen    = "price_cache:stale_gen"
	keyRebuildLock = "price_cache:rebuild_lock"
)

// ErrLockHeld is returned when another instance is already rebuilding.
var ErrLockHeld = errors.New("price cache rebuild already in progress")

// Signal shares price cache state across API instances through Redis: the
// published version, a stale marker and the rebuild lock.
type Signal struct {
	redis *RedisClient
}

func NewSignal(redis *RedisClient) *Signal {
	return &Signal{redis: redis}
}

// AcquireRebuildLock takes the cluster-wide rebuild lock for ttl. The returned
// release func is safe to call once the lock has expired.
func (s *Signal) AcquireRebuildLock(ctx context.Context, ttl time.Duration) (func(context.Context) error, error) {
	token := uuid.NewString()
	ok, err := s.redis.SetNX(ctx, keyRebuildLock, token, ttl)
	if err != nil {
		return nil, fmt.Errorf("acquire rebuild lock: %w", err)
	}
	if !ok {
		return nil, ErrLockHeld
	}
	return func(ctx context.Context) error {
		_, err := s.redis.DeleteIfEquals(ctx, keyRebuildLock, token)
		return err
	}, nil
}

// PublishVersion announces a committed snapshot version. The stale marker is
// cleared only if no instance marked the cache stale since staleGen was read;
// a negative staleGen leaves the marker alone.
func (s *Signal) PublishVersion(ctx context.Context, version, staleGen int64) error {
	if err := s.redis.Set(ctx, keyVersion, strconv.FormatInt(version, 10), 0); err != nil {
		return err
	}
	if staleGen < 0 {
		return nil
	}
	_, err := s.redis.DeleteIfCounterEquals(ctx, keyStale, keyStaleGen, staleGen)
	return err
}

// Version returns the last published version, 0 if none.
func (s *Signal) Version(ctx context.Context) (int64, error) {
	raw, err := s.redis.Get(ctx, keyVersion)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// MarkStale records a stale reason for other instances and bumps the stale
// generation. The first reason sticks until a publish clears it.
func (s *Signal) MarkStale(ctx context.Context, reason string) error {
	if _, err := s.redis.Incr(ctx, keyStaleGen); err != nil {
		return err
	}
	_, err := s.redis.SetNX(ctx, keyStale, reason, 0)
	return err
}

// StaleGeneration returns how many times the cache has been marked stale
// cluster-wide, 0 if never.
func (s *Signal) StaleGeneration(ctx context.Context) (int64, error) {
	raw, err := s.redis.Get(ctx, keyStaleGen)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// StaleReason returns the shared stale reason, "" when not stale.
func (s *Signal) StaleReason(ctx context.Context) (string, error) {
	raw, err := s.redis.Get(ctx, keyStale)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return raw, err
}
