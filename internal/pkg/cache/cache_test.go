package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyNamespacesByService(t *testing.T) {
	c := NewNoopCache("storefront")
	assert.Equal(t, "storefront:catalog:Plush|bear", c.GenerateKey("catalog", "Plush|bear"))
}

func TestNoopCacheIsAlwaysAMiss(t *testing.T) {
	c := NewNoopCache("storefront")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewSelectsNoopWithoutAddress(t *testing.T) {
	_, isNoop := New("", "storefront").(*noopCache)
	assert.True(t, isNoop)

	_, isRedis := New("localhost:6379", "storefront").(*redisCache)
	assert.True(t, isRedis)
}
