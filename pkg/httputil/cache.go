package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// ErrExpired is returned by [Cache.Get] when a cached entry exists but has
// exceeded its time-to-live. The data is still on disk but stale; callers
// should fetch fresh data and update the cache with [Cache.Set].
var ErrExpired = errors.New("cache entry expired")

// Cache provides file-based caching of JSON-marshalable data.
//
// Each entry is one JSON file in the cache directory, named by the SHA-256
// hash of its key, so any string is a safe key. Entries expire by file
// modification time; a TTL of 0 means they never expire.
//
// A Cache is not goroutine-safe; callers sharing one instance must
// synchronize. Separate instances (or processes) may share a directory.
//
// Use [Cache.Namespace] to scope keys per data source:
//
//	curriculum := cache.Namespace("curriculum:")
//	captions := cache.Namespace("captions:")
type Cache struct {
	dir    string
	ttl    time.Duration
	prefix string
}

// NewCache creates a Cache that stores entries in dir with the given TTL.
// If dir is empty, ~/.cache/coursemd/ is used. The directory is created
// if it does not exist; creation failure is the only error case.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".cache", "coursemd")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl, prefix: ""}, nil
}

// Dir returns the absolute path to the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the time-to-live duration for cache entries.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get retrieves a cached value by key and unmarshals it into v.
//
// Outcomes:
//   - (true, nil): hit, value unmarshaled into v
//   - (false, nil): miss, v unchanged
//   - (false, ErrExpired): entry exists but exceeded its TTL
//   - (false, other): I/O or unmarshal error
//
// Get never mutates the cache; reads do not refresh TTLs.
func (c *Cache) Get(key string, v any) (bool, error) {
	path := c.keyPath(c.prefix + key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

// Set stores v in the cache under key, overwriting any existing entry and
// resetting its TTL. v must be JSON-marshalable.
func (c *Cache) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(c.keyPath(c.prefix+key), data, 0o644)
}

// Namespace returns a view of the cache that prefixes every key, avoiding
// collisions between data sources. The view shares the parent's directory
// and TTL, and calls can be chained for hierarchical key spaces.
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{
		dir:    c.dir,
		ttl:    c.ttl,
		prefix: c.prefix + prefix,
	}
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
