package toyapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/domain/entity"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/ports"
)

type memCache struct {
	data map[string]string
	sets int
}

func newMemCache() *memCache { return &memCache{data: make(map[string]string)} }

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.data[key] = string(value.([]byte))
	m.sets++
	return nil
}

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	return m.data[key], nil
}

func (m *memCache) GenerateKey(operation, key string) string {
	return "test:" + operation + ":" + key
}

type countingCatalog struct {
	toys  []entity.Product
	lists int
	seeds int
}

func (c *countingCatalog) List(context.Context, ports.Filter) ([]entity.Product, error) {
	c.lists++
	return c.toys, nil
}

func (c *countingCatalog) Seed(context.Context) error {
	c.seeds++
	return nil
}

func TestCachedCatalogMissFallsThroughThenHitSkipsRemote(t *testing.T) {
	next := &countingCatalog{toys: []entity.Product{{ID: "t1", Name: "Bear", Price: 10}}}
	cached := NewCachedCatalog(next, newMemCache(), time.Minute)

	f := ports.Filter{Category: "Plush"}

	first, err := cached.List(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 1, next.lists)

	second, err := cached.List(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 1, next.lists, "second load must be served from the cache")
	assert.Equal(t, first, second)
}

func TestCachedCatalogKeysByFilter(t *testing.T) {
	next := &countingCatalog{}
	cached := NewCachedCatalog(next, newMemCache(), time.Minute)

	_, err := cached.List(context.Background(), ports.Filter{Category: "Plush"})
	require.NoError(t, err)
	_, err = cached.List(context.Background(), ports.Filter{Category: "STEM"})
	require.NoError(t, err)

	assert.Equal(t, 2, next.lists, "different filters must not share cache entries")
}

func TestCachedCatalogZeroTTLDisablesCaching(t *testing.T) {
	next := &countingCatalog{}
	mc := newMemCache()
	cached := NewCachedCatalog(next, mc, 0)

	_, err := cached.List(context.Background(), ports.Filter{})
	require.NoError(t, err)
	_, err = cached.List(context.Background(), ports.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 2, next.lists)
	assert.Zero(t, mc.sets)
}

func TestCachedCatalogSeedPassesThrough(t *testing.T) {
	next := &countingCatalog{}
	cached := NewCachedCatalog(next, newMemCache(), time.Minute)

	require.NoError(t, cached.Seed(context.Background()))
	assert.Equal(t, 1, next.seeds)
}
