// Package cache provides the storage layer behind the pipeline runner.
//
// # Overview
//
// Generating a panel is cheap, but rendering large panels to PNG or XLSX is
// not, and the HTTP API sees the same parameter sets over and over. The
// runner therefore caches two things, each under a content-derived key:
//
//   - Drawings, keyed by the canonical JSON of the generation options
//   - Artifacts, keyed by the drawing hash plus the render options
//
// # Backends
//
//   - [NullCache]: caching disabled (--no-cache, tests)
//   - [FileCache]: one JSON file per entry under the user's cache directory
//   - [RedisCache]: a shared cache for several API instances
//
// All backends honor a TTL and treat a corrupt or expired entry as a miss.
//
// # Keys
//
// A [Keyer] builds keys. [NewScopedKeyer] prefixes every key, for example to
// keep two deployments that share one Redis apart.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry type.
const (
	TTLDrawing  = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
