package data

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"
	"time"

	"ieso-dashboard/internal/model"
)

// cacheEntry is one cached dataset download.
type cacheEntry struct {
	Records   []model.HourlyRecord
	ExpiresAt time.Time
}

// DatasetCache provides in-memory TTL caching of downloaded datasets so
// repeated renders within the refresh window reuse one download. The upstream
// refresh job republishes files once a day, so the default 1 hour TTL is safe.
type DatasetCache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
	ttl   time.Duration
}

var globalCache *DatasetCache
var cacheOnce sync.Once

// GetCache returns the global dataset cache, or nil when caching is disabled
// via DISABLE_DATASET_CACHE=true.
func GetCache() *DatasetCache {
	if os.Getenv("DISABLE_DATASET_CACHE") == "true" {
		return nil
	}

	cacheOnce.Do(func() {
		ttl := 1 * time.Hour
		if ttlStr := os.Getenv("DATASET_CACHE_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			}
		}

		globalCache = &DatasetCache{
			store: make(map[string]*cacheEntry),
			ttl:   ttl,
		}

		go globalCache.cleanup()
	})

	return globalCache
}

// Get retrieves cached records if present and not expired.
func (c *DatasetCache) Get(url string) ([]model.HourlyRecord, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[cacheKey(url)]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Records, true
}

// Set stores records for a dataset URL.
func (c *DatasetCache) Set(url string, records []model.HourlyRecord) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[cacheKey(url)] = &cacheEntry{
		Records:   records,
		ExpiresAt: time.Now().Add(c.ttl),
	}
}

// Clear removes all entries from the cache.
func (c *DatasetCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*cacheEntry)
}

// cleanup periodically removes expired entries.
func (c *DatasetCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.store {
			if now.After(entry.ExpiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}

func cacheKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])
}
