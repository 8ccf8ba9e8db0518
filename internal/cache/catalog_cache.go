package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amitiii/udaan-next-gen-translator-api/internal/domain"
	"github.com/amitiii/udaan-next-gen-translator-api/pkg/logger"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// DefaultCatalogTTL is how long a catalog snapshot stays fresh.
const DefaultCatalogTTL = time.Hour

// ListFunc produces the current supported-language map, keyed by ISO 639-1
// code with human-readable names as values.
type ListFunc func(ctx context.Context) (map[string]string, error)

// CatalogSnapshot is one immutable view of the supported-language set.
// A refresh replaces the whole snapshot; entries are never mutated in place.
type CatalogSnapshot struct {
	Entries   map[string]string
	FetchedAt time.Time
}

// CatalogCache provides a TTL-cached view of a backend's supported
// languages. Readers always see either the previous or the new snapshot in
// full. When refreshing fails, the stale snapshot keeps serving so a flaky
// listing source never makes every language look unsupported.
type CatalogCache struct {
	list ListFunc
	ttl  time.Duration

	mutex sync.RWMutex
	snap  *CatalogSnapshot
}

// NewCatalogCache creates a catalog cache over the given listing function.
// A non-positive ttl falls back to DefaultCatalogTTL.
func NewCatalogCache(list ListFunc, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &CatalogCache{
		list: list,
		ttl:  ttl,
	}
}

// Get returns the cached snapshot if it is still fresh, refreshing it
// otherwise. When the listing fails and no snapshot has ever been obtained,
// the error wraps domain.ErrCatalogUnavailable so callers can distinguish
// "cannot confirm support" from "language not in catalog".
func (c *CatalogCache) Get(ctx context.Context) (*CatalogSnapshot, error) {
	c.mutex.RLock()
	snap := c.snap
	c.mutex.RUnlock()

	if snap != nil && time.Since(snap.FetchedAt) < c.ttl {
		return snap, nil
	}
	return c.refresh(ctx)
}

// Invalidate drops the cached snapshot, forcing the next Get to refresh.
func (c *CatalogCache) Invalidate() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.snap = nil
}

func (c *CatalogCache) refresh(ctx context.Context) (*CatalogSnapshot, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if c.snap != nil && time.Since(c.snap.FetchedAt) < c.ttl {
		return c.snap, nil
	}

	entries, err := c.list(ctx)
	if err != nil {
		if c.snap != nil {
			logger.Base().Warn("language catalog refresh failed, serving stale snapshot",
				zap.Time("fetched_at", c.snap.FetchedAt),
				zap.Error(err))
			return c.snap, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	// Copy so a listing source that reuses its map cannot tear the snapshot.
	copied := make(map[string]string, len(entries))
	if err := copier.Copy(&copied, &entries); err != nil {
		return nil, fmt.Errorf("%w: copying catalog entries: %v", domain.ErrCatalogUnavailable, err)
	}

	c.snap = &CatalogSnapshot{Entries: copied, FetchedAt: time.Now()}
	return c.snap, nil
}
