package query

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrDisabled dikembalikan saat read di-gate (precondition role/identity
// belum terpenuhi); tidak ada network call yang terjadi.
var ErrDisabled = errors.New("query disabled")

// entry menyimpan hasil fetch terakhir. Invalidate hanya menandai stale,
// value terakhir tetap dipegang supaya consumer bisa tampilkan
// last-known-good data sambil menunggu refetch.
type entry struct {
	value     any
	fetchedAt time.Time
	stale     bool
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group
	log     *zap.Logger
}

func NewCache(log *zap.Logger) *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		log:     log.With(zap.String("component", "querycache")),
	}
}

// Read mengembalikan cached value selama belum stale; selain itu fetch.
// Concurrent reads untuk key yang sama share satu fetch (singleflight).
func (c *Cache) Read(ctx context.Context, key string, staleTime time.Duration, enabled bool, fetch func(ctx context.Context) (any, error)) (any, error) {
	if !enabled {
		return nil, ErrDisabled
	}

	if value, ok := c.fresh(key, staleTime); ok {
		return value, nil
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check: fetch lain mungkin baru saja mengisi entry ini.
		if value, ok := c.fresh(key, staleTime); ok {
			return value, nil
		}

		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &entry{value: value, fetchedAt: time.Now()}
		c.mu.Unlock()

		c.log.Debug("Query fetched", zap.String("key", key))
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Invalidate menandai stale semua entry yang match prefix (segment-aware,
// jadi "product" tidak kena "products"). Tidak pernah sync refetch;
// read berikutnya yang memicu fetch ulang.
func (c *Cache) Invalidate(keyPrefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key, e := range c.entries {
		if matchPrefix(key, keyPrefix) {
			e.stale = true
			n++
		}
	}

	if n > 0 {
		c.log.Debug("Queries invalidated",
			zap.String("prefix", keyPrefix),
			zap.Int("count", n))
	}
}

// Mutate menjalankan write operation; invalidation keys hanya diapply
// kalau write sukses. Mutation gagal tidak menyentuh cache sama sekali.
func (c *Cache) Mutate(ctx context.Context, invalidates []string, op func(ctx context.Context) error) error {
	if err := op(ctx); err != nil {
		return err
	}
	for _, prefix := range invalidates {
		c.Invalidate(prefix)
	}
	return nil
}

// Peek mengembalikan last-known value meskipun stale (tanpa fetch).
func (c *Cache) Peek(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) fresh(key string, staleTime time.Duration) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || e.stale || time.Since(e.fetchedAt) >= staleTime {
		return nil, false
	}
	return e.value, true
}

// matchPrefix: sama persis, atau prefix diikuti segment boundary.
func matchPrefix(key, prefix string) bool {
	if key == prefix {
		return true
	}
	return len(key) > len(prefix) && key[:len(prefix)] == prefix && key[len(prefix)] == '/'
}

// Fetch adalah typed wrapper di atas Cache.Read.
func Fetch[T any](ctx context.Context, c *Cache, key string, staleTime time.Duration, enabled bool, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	value, err := c.Read(ctx, key, staleTime, enabled, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cache entry %s holds %T", key, value)
	}
	return typed, nil
}
