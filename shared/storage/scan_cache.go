package storage

import (
	"sync"
	"time"

	"command-center/internal/models"
)

// ScanCache keeps recent result sets keyed by query so that repeated
// identical scans within one session do not re-spend API quota. It is
// in-memory only and dies with the process; nothing is persisted.
type ScanCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result   *models.ResultSet
	storedAt time.Time
}

// NewScanCache creates a cache whose entries expire after ttl.
func NewScanCache(ttl time.Duration) *ScanCache {
	return &ScanCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached result set for key if present and fresh.
func (c *ScanCache) Get(key string) (*models.ResultSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Since(entry.storedAt) >= c.ttl {
		return nil, false
	}
	return entry.result, true
}

// Put stores a result set and prunes any expired entries.
func (c *ScanCache) Put(key string, rs *models.ResultSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().Add(-c.ttl)
	for k, entry := range c.entries {
		if entry.storedAt.Before(cutoff) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cacheEntry{result: rs, storedAt: time.Now()}
}

// Len returns the number of stored entries, expired or not.
func (c *ScanCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
