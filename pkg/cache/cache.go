// Package cache stores rendered graph artifacts between runs.
//
// Rendering a large change graph with Graphviz is the slowest step of the
// pipeline, while the DOT document itself is cheap and deterministic. The
// cache therefore keys artifacts by the SHA-256 of the DOT text plus the
// output format: identical change logs reuse earlier renders.
//
// [FileCache] persists entries under a directory (the CLI uses
// $XDG_CACHE_HOME/changegraph); [NullCache] disables caching.
package cache

import (
	"context"
	"fmt"
	"time"
)

// TTLArtifact is the default lifetime of a cached rendered artifact.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired or unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKey returns the cache key for a DOT document rendered in format
// with the given PNG scale.
func ArtifactKey(dot string, format string, scale float64) string {
	return hashKey("artifact", Hash([]byte(dot)), format, fmt.Sprintf("%.2f", scale))
}
