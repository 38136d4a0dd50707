package textcache

import (
	"path/filepath"
	"testing"
	"time"
)

// openTestCache creates a cache backed by a throwaway database file.
func openTestCache(t *testing.T, maxAge time.Duration) *Cache {
	t.Helper()

	cache, err := Open(filepath.Join(t.TempDir(), "cache.db"), maxAge)
	if err != nil {
		t.Fatalf("failed to open test cache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })

	return cache
}

func TestCache_RoundTrip(t *testing.T) {
	cache := openTestCache(t, time.Hour)

	const location = "https://example.com/book.txt"
	const text = "it was the best of times"

	if _, ok := cache.Get(location); ok {
		t.Fatal("Get() before Set() should miss")
	}

	if err := cache.Set(location, text); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := cache.Get(location)
	if !ok {
		t.Fatal("Get() after Set() should hit")
	}
	if got != text {
		t.Errorf("Get() = %q, want %q", got, text)
	}
}

func TestCache_DistinctLocations(t *testing.T) {
	cache := openTestCache(t, time.Hour)

	if err := cache.Set("https://example.com/a.txt", "text a"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cache.Set("https://example.com/b.txt", "text b"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if got, ok := cache.Get("https://example.com/a.txt"); !ok || got != "text a" {
		t.Errorf("Get(a) = %q, %v, want %q, true", got, ok, "text a")
	}
	if got, ok := cache.Get("https://example.com/b.txt"); !ok || got != "text b" {
		t.Errorf("Get(b) = %q, %v, want %q, true", got, ok, "text b")
	}
}

func TestCache_Expiry(t *testing.T) {
	cache := openTestCache(t, 30*time.Millisecond)

	const location = "https://example.com/book.txt"
	if err := cache.Set(location, "short lived"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, ok := cache.Get(location); !ok {
		t.Fatal("Get() right after Set() should hit")
	}

	time.Sleep(60 * time.Millisecond)

	if _, ok := cache.Get(location); ok {
		t.Error("Get() after expiry should miss")
	}
}

func TestCache_DisabledMaxAge(t *testing.T) {
	cache := openTestCache(t, 0)

	const location = "https://example.com/book.txt"
	if err := cache.Set(location, "stored anyway"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, ok := cache.Get(location); ok {
		t.Error("Get() with maxAge 0 should always miss")
	}
}

func TestCache_OverwriteRefreshes(t *testing.T) {
	cache := openTestCache(t, time.Hour)

	const location = "https://example.com/book.txt"
	if err := cache.Set(location, "old text"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cache.Set(location, "new text"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := cache.Get(location)
	if !ok || got != "new text" {
		t.Errorf("Get() = %q, %v, want %q, true", got, ok, "new text")
	}
}
