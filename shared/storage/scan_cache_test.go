package storage

import (
	"testing"
	"time"

	"command-center/internal/models"
)

func TestScanCacheHitAndMiss(t *testing.T) {
	cache := NewScanCache(time.Minute)

	if _, ok := cache.Get("go tutorials"); ok {
		t.Error("expected miss on empty cache")
	}

	rs := &models.ResultSet{Tags: []string{"go"}}
	cache.Put("go tutorials", rs)

	got, ok := cache.Get("go tutorials")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if got != rs {
		t.Error("cache returned a different result set")
	}
}

func TestScanCacheExpiry(t *testing.T) {
	cache := NewScanCache(10 * time.Millisecond)
	cache.Put("stale", &models.ResultSet{})

	time.Sleep(20 * time.Millisecond)

	if _, ok := cache.Get("stale"); ok {
		t.Error("expected expired entry to miss")
	}

	// A later Put prunes the expired entry.
	cache.Put("fresh", &models.ResultSet{})
	if n := cache.Len(); n != 1 {
		t.Errorf("Len() = %d after prune, want 1", n)
	}
}
