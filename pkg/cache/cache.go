// Package cache defines the minimal key/value store the services cache
// inflation rates and retirement goals in. Serialization of the cached
// records is done by the calling service, not by the store.
package cache

import (
	"context"
	"time"
)

// NoExpiry keeps an entry until it is overwritten.
const NoExpiry time.Duration = 0

// Store is a byte-oriented key/value store with optional expiry.
type Store interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key. A ttl of NoExpiry means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
