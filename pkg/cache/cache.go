// Package cache stores rendered artifacts and query results between runs.
//
// # Backends
//
//   - [NullCache]: stores nothing, for --no-cache and tests
//   - [FileCache]: one JSON file per entry under the user cache directory
//   - [RedisCache]: shared cache for API instances
//
// Keys are produced by a [Keyer] so the same inputs always map to the same
// entry regardless of backend:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(g.Hash(), cache.ArtifactKeyOpts{Format: "svg", Width: 800, Height: 600})
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs.
const (
	ArtifactTTL = 7 * 24 * time.Hour
	ResultTTL   = 7 * 24 * time.Hour
)

// DefaultDir returns the on-disk cache directory: $XDG_CACHE_HOME/pathviz
// or the platform equivalent.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "pathviz"), nil
}
