// Package cache provides a local cache for rendered graph images.
//
// Rendering a large syntax tree through Graphviz can take seconds; the
// cache keys rendered images by a hash of the DOT text and output format so
// re-rendering an unchanged file is a file read. [FileCache] stores entries
// under a directory (XDG cache by convention), [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by content hash.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKey builds the cache key for a rendered image: the output format
// plus a hash of the DOT document, so any change to the graph or the
// requested format misses the cache.
func RenderKey(dot []byte, format string) string {
	return "render:" + format + ":" + Hash(dot)
}
