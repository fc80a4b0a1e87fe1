// ============================================================================
// SnakeMath - Numerical Mathematics Engine
// ============================================================================
//
// Package:     cache
// Description: Thread-safe TTL cache for memoized engine results
// Created:     2026-03-14
// License:     MIT
// ============================================================================

package cache

import (
	"sync"
	"time"
)

// Entry represents a cached item with expiration
type Entry struct {
	Value      interface{}
	Created    time.Time
	Expiration time.Time
}

// IsExpired checks if the entry has expired
func (e *Entry) IsExpired() bool {
	if e.Expiration.IsZero() {
		return false // Never expires
	}
	return time.Now().After(e.Expiration)
}

// Cache is a thread-safe in-memory cache with TTL support
type Cache struct {
	mu       sync.RWMutex
	items    map[string]*Entry
	maxItems int
	ttl      time.Duration

	// Metrics
	hits      int64
	misses    int64
	evictions int64

	stop     chan struct{}
	stopOnce sync.Once
}

// Config holds cache configuration
type Config struct {
	MaxItems int
	TTL      time.Duration

	// CleanupInterval enables a background sweep of expired entries
	// when positive. Call Close to stop it.
	CleanupInterval time.Duration
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems: 4096,
		TTL:      10 * time.Minute,
	}
}

// New creates a new cache instance
func New(cfg Config) *Cache {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = 4096
	}
	if cfg.TTL < 0 {
		cfg.TTL = 0
	}

	c := &Cache{
		items:    make(map[string]*Entry),
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
		stop:     make(chan struct{}),
	}

	if cfg.CleanupInterval > 0 {
		go c.cleanupLoop(cfg.CleanupInterval)
	}

	return c
}

// Close stops the cleanup goroutine, if any
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Get retrieves a value from the cache
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[key]
	if !exists {
		c.misses++
		return nil, false
	}

	if entry.IsExpired() {
		delete(c.items, key)
		c.misses++
		return nil, false
	}

	c.hits++
	return entry.Value, true
}

// Set stores a value in the cache with the default TTL
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL; ttl <= 0 never expires
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxItems {
		c.evictOldest()
	}

	now := time.Now()
	var exp time.Time
	if ttl > 0 {
		exp = now.Add(ttl)
	}

	c.items[key] = &Entry{
		Value:      value,
		Created:    now,
		Expiration: exp,
	}
}

// Delete removes a value from the cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*Entry)
}

// Size returns the number of items in the cache
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats is a snapshot of the cache counters
type Stats struct {
	Hits      int64   `json:"hits" yaml:"hits"`
	Misses    int64   `json:"misses" yaml:"misses"`
	Evictions int64   `json:"evictions" yaml:"evictions"`
	Size      int     `json:"size" yaml:"size"`
	HitRate   float64 `json:"hit_rate" yaml:"hit_rate"`
}

// Stats returns cache statistics; HitRate is a percentage
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := Stats{Hits: c.hits, Misses: c.misses, Evictions: c.evictions, Size: len(c.items)}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total) * 100
	}
	return s
}

// evictOldest removes the least recently inserted entry (must be called with lock held)
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time

	for key, entry := range c.items {
		if oldestKey == "" || entry.Created.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.Created
		}
	}

	if oldestKey != "" {
		delete(c.items, oldestKey)
		c.evictions++
	}
}

// cleanupLoop periodically removes expired entries until Close
func (c *Cache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes all expired entries
func (c *Cache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.items {
		if entry.IsExpired() {
			delete(c.items, key)
		}
	}
}

// GetOrSet returns the cached value or computes and stores it. Errors are
// not cached. The bool reports a cache hit.
func (c *Cache) GetOrSet(key string, fn func() (interface{}, error)) (interface{}, bool, error) {
	return c.GetOrSetWithTTL(key, c.ttl, fn)
}

// GetOrSetWithTTL is like GetOrSet but with custom TTL
func (c *Cache) GetOrSetWithTTL(key string, ttl time.Duration, fn func() (interface{}, error)) (interface{}, bool, error) {
	if val, ok := c.Get(key); ok {
		return val, true, nil
	}

	val, err := fn()
	if err != nil {
		return nil, false, err
	}

	c.SetWithTTL(key, val, ttl)
	return val, false, nil
}
