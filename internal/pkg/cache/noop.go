package cache

import (
	"context"
	"time"
)

type noopCache struct {
	serviceName string
}

// NewNoopCache returns a cache where every Get is a miss and every Set is
// discarded. Used when no Redis address is configured.
func NewNoopCache(serviceName string) Cache {
	return &noopCache{serviceName: serviceName}
}

func (n *noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (n *noopCache) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (n *noopCache) GenerateKey(operation, key string) string {
	return generateKey(n.serviceName, operation, key)
}
