// Package cache provides content-addressed caching of rendered artifacts.
//
// Rendering is deterministic: the same DOT text and output options always
// produce the same image, so artifacts are cached under a hash of their
// inputs and never invalidated by anything but eviction. Backends:
//
//   - [FileCache]: files under the XDG cache directory (default)
//   - [RedisCache]: shared cache for teams running the preview server
//   - [NullCache]: disables caching
//
// Keys are built by a [Keyer] so all backends agree on the namespace
// layout; [ScopedKeyer] adds a prefix for isolation.
package cache

import (
	"context"
	"time"
)

// Cache stores and retrieves opaque byte values with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys for the artifact namespaces.
type Keyer interface {
	// ArtifactKey builds the key for a rendered artifact from the DOT
	// hash and output options.
	ArtifactKey(dotHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change artifact bytes.
type ArtifactKeyOpts struct {
	Format string // "svg", "png", "pdf"
}

// DefaultKeyer is the standard key layout.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(dotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dotHash, opts.Format)
}
