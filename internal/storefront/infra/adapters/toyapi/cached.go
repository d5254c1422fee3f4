package toyapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jcuriel/toyshop-storefront/internal/pkg/cache"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/domain/entity"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/ports"
)

var _ ports.Catalog = (*CachedCatalog)(nil)

// CachedCatalog decorates a Catalog with a short-TTL response cache keyed by
// filter. The remote API stays the source of truth: cache errors are logged
// and the request falls through, and Seed bypasses the cache entirely
// (stale entries age out with the TTL).
type CachedCatalog struct {
	next  ports.Catalog
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedCatalog wraps next with the given cache. A zero or negative ttl
// effectively disables caching.
func NewCachedCatalog(next ports.Catalog, c cache.Cache, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{next: next, cache: c, ttl: ttl}
}

func (c *CachedCatalog) List(ctx context.Context, f ports.Filter) ([]entity.Product, error) {
	key := c.cache.GenerateKey("catalog", f.Category+"|"+f.Query)

	if c.ttl > 0 {
		raw, err := c.cache.Get(ctx, key)
		switch {
		case err != nil:
			slog.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err)
		case raw != "":
			var toys []entity.Product
			if err := json.Unmarshal([]byte(raw), &toys); err == nil {
				return toys, nil
			}
			slog.WarnContext(ctx, "catalog cache entry corrupt, refetching", "key", key)
		}
	}

	toys, err := c.next.List(ctx, f)
	if err != nil {
		return nil, err
	}

	if c.ttl > 0 {
		if b, err := json.Marshal(toys); err == nil {
			if err := c.cache.Set(ctx, key, b, c.ttl); err != nil {
				slog.WarnContext(ctx, "catalog cache write failed", "key", key, "error", err)
			}
		}
	}
	return toys, nil
}

func (c *CachedCatalog) Seed(ctx context.Context) error {
	return c.next.Seed(ctx)
}
