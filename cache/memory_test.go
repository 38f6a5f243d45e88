package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/stylefinder/models"
)

func outfitFor(desc string) *models.EnrichedOutfit {
	return &models.EnrichedOutfit{MainDescription: desc}
}

func TestMemoryCacheHitAndMiss(t *testing.T) {
	c := NewMemoryCache(time.Minute, 10)
	ctx := context.Background()

	_, ok := c.Get(ctx, "absent")
	assert.False(t, ok)

	c.Set(ctx, "party look", outfitFor("party"))
	got, ok := c.Get(ctx, "party look")
	require.True(t, ok)
	assert.Equal(t, "party", got.MainDescription)
}

func TestMemoryCacheTTLExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, 10)
	ctx := context.Background()

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set(ctx, "k", outfitFor("v"))

	c.now = func() time.Time { return base.Add(59 * time.Second) }
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)

	c.now = func() time.Time { return base.Add(61 * time.Second) }
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCacheLRUEviction(t *testing.T) {
	c := NewMemoryCache(time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		c.Set(ctx, fmt.Sprintf("k%d", i), outfitFor("v"))
	}

	// Touch k0 so k1 becomes the least recently used.
	_, ok := c.Get(ctx, "k0")
	require.True(t, ok)

	c.Set(ctx, "k3", outfitFor("v"))

	_, ok = c.Get(ctx, "k1")
	assert.False(t, ok, "least recently used entry should be evicted")
	for _, key := range []string{"k0", "k2", "k3"} {
		_, ok := c.Get(ctx, key)
		assert.True(t, ok, key)
	}
}

func TestMemoryCacheEvict(t *testing.T) {
	c := NewMemoryCache(time.Minute, 10)
	ctx := context.Background()

	c.Set(ctx, "k", outfitFor("v"))
	c.Evict(ctx, "k")
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	// Evicting an absent key is a no-op.
	c.Evict(ctx, "never-there")
}

func TestMemoryCacheSetOverwrites(t *testing.T) {
	c := NewMemoryCache(time.Minute, 10)
	ctx := context.Background()

	c.Set(ctx, "k", outfitFor("old"))
	c.Set(ctx, "k", outfitFor("new"))

	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "new", got.MainDescription)
}

func TestMemoryCacheIgnoresNil(t *testing.T) {
	c := NewMemoryCache(time.Minute, 10)
	ctx := context.Background()

	c.Set(ctx, "k", nil)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "office party look", NormalizeKey("  Office   Party LOOK "))
	assert.Equal(t, NormalizeKey("Summer Wedding"), NormalizeKey("summer    wedding"))
	assert.Equal(t, "", NormalizeKey("   "))
}
