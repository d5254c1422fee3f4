// Package cache provides a small string cache used for catalog responses.
// Redis backs it when an address is configured; otherwise a no-op
// implementation keeps every lookup a miss.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache stores string values under namespaced keys with a TTL.
// Get returns "" (not an error) on a miss.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

// New selects the implementation from the configured address:
// empty means no Redis is available and caching is disabled.
func New(addr, serviceName string) Cache {
	if addr == "" {
		return NewNoopCache(serviceName)
	}
	return NewRedisCache(addr, serviceName)
}

func generateKey(serviceName, operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", serviceName, operation, key)
}
