package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTTL applies when Set is called without a TTL
const DefaultTTL = 30 * time.Minute

// MemoryCache implements an in-memory cache bounded by total byte size.
// When full it evicts expired entries first and then the oldest entries.
type MemoryCache struct {
	mu          sync.RWMutex
	items       map[string]*cacheItem
	maxBytes    int64
	currentSize int64
	stats       CacheStats
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
	now         func() time.Time
}

type cacheItem struct {
	value    []byte
	expiry   time.Time
	storedAt time.Time
	size     int64
}

// NewMemoryCache creates a cache holding at most maxSizeMB megabytes. A
// background sweep removes expired entries every cleanupInterval.
func NewMemoryCache(maxSizeMB int64, cleanupInterval time.Duration) *MemoryCache {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	mc := &MemoryCache{
		items:    make(map[string]*cacheItem),
		maxBytes: maxSizeMB * 1024 * 1024,
		stopCh:   make(chan struct{}),
		now:      time.Now,
	}

	mc.wg.Add(1)
	go mc.cleanupExpired(cleanupInterval)

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	item, exists := mc.items[key]
	mc.mu.RUnlock()

	if !exists {
		atomic.AddInt64(&mc.stats.Misses, 1)
		return nil, false
	}

	if mc.now().After(item.expiry) {
		_ = mc.Delete(ctx, key)
		atomic.AddInt64(&mc.stats.Misses, 1)
		return nil, false
	}

	atomic.AddInt64(&mc.stats.Hits, 1)
	return item.value, true
}

// Set stores a value in the cache with a TTL. Values larger than the whole
// cache are not stored.
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	size := int64(len(key) + len(value))
	if mc.maxBytes > 0 && size > mc.maxBytes {
		return ErrTooLarge
	}

	now := mc.now()
	item := &cacheItem{
		value:    value,
		expiry:   now.Add(ttl),
		storedAt: now,
		size:     size,
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if old, exists := mc.items[key]; exists {
		delete(mc.items, key)
		mc.currentSize -= old.size
	}
	mc.makeRoomLocked(size)
	mc.items[key] = item
	mc.currentSize += size

	atomic.AddInt64(&mc.stats.Sets, 1)
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	if item, exists := mc.items[key]; exists {
		delete(mc.items, key)
		mc.currentSize -= item.size
		atomic.AddInt64(&mc.stats.Deletes, 1)
	}
	mc.mu.Unlock()
	return nil
}

// Clear removes all values from the cache
func (mc *MemoryCache) Clear(ctx context.Context) error {
	mc.mu.Lock()
	mc.items = make(map[string]*cacheItem)
	mc.currentSize = 0
	mc.mu.Unlock()
	return nil
}

// Has checks if a key exists in the cache
func (mc *MemoryCache) Has(ctx context.Context, key string) bool {
	mc.mu.RLock()
	item, exists := mc.items[key]
	mc.mu.RUnlock()

	return exists && mc.now().Before(item.expiry)
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() CacheStats {
	mc.mu.RLock()
	size := mc.currentSize
	mc.mu.RUnlock()

	return CacheStats{
		Hits:      atomic.LoadInt64(&mc.stats.Hits),
		Misses:    atomic.LoadInt64(&mc.stats.Misses),
		Sets:      atomic.LoadInt64(&mc.stats.Sets),
		Deletes:   atomic.LoadInt64(&mc.stats.Deletes),
		Evictions: atomic.LoadInt64(&mc.stats.Evictions),
		Size:      size,
		MaxSize:   mc.maxBytes,
	}
}

// Stop gracefully shuts down the cache. It is safe to call more than once.
func (mc *MemoryCache) Stop() {
	mc.stopOnce.Do(func() {
		close(mc.stopCh)
	})
	mc.wg.Wait()
}

func (mc *MemoryCache) cleanupExpired(interval time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.Lock()
			mc.removeExpiredLocked()
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}

func (mc *MemoryCache) removeExpiredLocked() {
	now := mc.now()
	for key, item := range mc.items {
		if now.After(item.expiry) {
			delete(mc.items, key)
			mc.currentSize -= item.size
			atomic.AddInt64(&mc.stats.Evictions, 1)
		}
	}
}

// makeRoomLocked evicts until sizeNeeded more bytes fit
func (mc *MemoryCache) makeRoomLocked(sizeNeeded int64) {
	if mc.maxBytes <= 0 || mc.currentSize+sizeNeeded <= mc.maxBytes {
		return
	}

	mc.removeExpiredLocked()

	for mc.currentSize+sizeNeeded > mc.maxBytes && len(mc.items) > 0 {
		var oldestKey string
		var oldest *cacheItem
		for key, item := range mc.items {
			if oldest == nil || item.storedAt.Before(oldest.storedAt) {
				oldestKey, oldest = key, item
			}
		}
		delete(mc.items, oldestKey)
		mc.currentSize -= oldest.size
		atomic.AddInt64(&mc.stats.Evictions, 1)
	}
}
