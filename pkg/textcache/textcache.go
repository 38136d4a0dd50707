package textcache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// DefaultDBName is the cache file created under the output directory.
const DefaultDBName = "cache.db"

// pagesBucket holds every cached fetch, keyed by hashed location.
var pagesBucket = []byte("pages")

// Cache is a bolt-backed store for fetched source text with a freshness
// window. Entries older than maxAge count as misses; maxAge <= 0 disables
// lookups entirely so every Get misses.
type Cache struct {
	db     *bolt.DB
	maxAge time.Duration
}

// entry is the stored envelope for one fetched text.
type entry struct {
	FetchedAt time.Time `json:"fetched_at"`
	Text      string    `json:"text"`
}

// Open opens the cache database at path, creating it if needed.
func Open(path string, maxAge time.Duration) (*Cache, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(pagesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache bucket: %w", err)
	}

	return &Cache{db: db, maxAge: maxAge}, nil
}

// Close releases the underlying database file.
func (c *Cache) Close() error {
	return c.db.Close()
}

// key hashes a location so arbitrary URLs make safe, fixed-size bucket keys.
func key(location string) []byte {
	hash := sha256.Sum256([]byte(location))
	return []byte(fmt.Sprintf("%x", hash))
}

// Get returns the cached text for location and true on a fresh hit.
// Stale, corrupt, or absent entries report a miss.
func (c *Cache) Get(location string) (string, bool) {
	if c.maxAge <= 0 {
		return "", false
	}

	var cached entry
	found := false
	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(pagesBucket).Get(key(location))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &cached); err != nil {
			// Corrupt entry counts as a miss; the next Set overwrites it.
			return nil
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return "", false
	}

	if time.Since(cached.FetchedAt) > c.maxAge {
		return "", false
	}

	return cached.Text, true
}

// Set stores text for location, stamped with the current time.
func (c *Cache) Set(location, text string) error {
	data, err := json.Marshal(entry{FetchedAt: time.Now(), Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	err = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(pagesBucket).Put(key(location), data)
	})
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return nil
}
