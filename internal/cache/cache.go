// internal/cache/cache.go
package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// InMemoryCache is a TTL cache guarded by a single mutex. Expired entries
// are reaped by a background cleanup goroutine.
type InMemoryCache struct {
	mu          sync.RWMutex
	entries     map[string]entry
	ttl         time.Duration
	cleanupFreq time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
}

func NewInMemoryCache(ttl, cleanupFreq time.Duration) *InMemoryCache {
	return &InMemoryCache{
		entries:     make(map[string]entry),
		ttl:         ttl,
		cleanupFreq: cleanupFreq,
		stop:        make(chan struct{}),
	}
}

func (c *InMemoryCache) Set(ctx context.Context, key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *InMemoryCache) Get(ctx context.Context, key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (c *InMemoryCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// StartCleanup launches the background reaper. It runs until StopCleanup
// is called or the context is cancelled.
func (c *InMemoryCache) StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(c.cleanupFreq)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.reap()
			case <-c.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *InMemoryCache) StopCleanup() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *InMemoryCache) reap() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
