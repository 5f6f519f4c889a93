package gallery

import (
	"context"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Default cache sizing.
const (
	DefaultCacheSize = 16
	DefaultCacheTTL  = time.Minute
)

// Cache keeps recent directory listings in memory for a limited time.
// It is safe for concurrent use.
type Cache struct {
	entries *expirable.LRU[string, []string]
}

// NewCache creates a cache holding at most size listings, each kept for ttl.
// Non-positive values select the defaults.
func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{entries: expirable.NewLRU[string, []string](size, nil, ttl)}
}

// Wrap returns a Lister that serves inner's listing from the cache under key.
// Listers sharing a key share an entry, so key should identify the directory.
func (c *Cache) Wrap(key string, inner Lister) *CachedLister {
	return &CachedLister{cache: c, key: key, inner: inner}
}

// Invalidate drops the listing stored under key.
func (c *Cache) Invalidate(key string) {
	c.entries.Remove(key)
}

// Len returns the number of cached listings.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// CachedLister is a Lister backed by a Cache entry. Failed listings are not
// cached.
type CachedLister struct {
	cache *Cache
	key   string
	inner Lister
}

// List returns the cached listing, refreshing it from the inner lister when
// absent or expired.
func (l *CachedLister) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if names, ok := l.cache.entries.Get(l.key); ok {
		return slices.Clone(names), nil
	}

	names, err := l.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	l.cache.entries.Add(l.key, slices.Clone(names))
	return names, nil
}

var _ Lister = (*CachedLister)(nil)
