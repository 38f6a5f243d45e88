package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/raushankrgupta/stylefinder/models"
)

const redisKeyPrefix = "look:"

// RedisCache shares enriched looks across instances. Redis being down is
// treated as a cold cache, requests always fall through to generation.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.EnrichedOutfit, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			fmt.Printf("[Cache] redis get failed: %v\n", err)
		}
		return nil, false
	}
	var outfit models.EnrichedOutfit
	if err := json.Unmarshal(raw, &outfit); err != nil {
		fmt.Printf("[Cache] corrupt cache entry for %q: %v\n", key, err)
		c.client.Del(ctx, redisKeyPrefix+key)
		return nil, false
	}
	return &outfit, true
}

func (c *RedisCache) Set(ctx context.Context, key string, outfit *models.EnrichedOutfit) {
	if outfit == nil {
		return
	}
	raw, err := json.Marshal(outfit)
	if err != nil {
		fmt.Printf("[Cache] marshal failed for %q: %v\n", key, err)
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		fmt.Printf("[Cache] redis set failed: %v\n", err)
	}
}

func (c *RedisCache) Evict(ctx context.Context, key string) {
	if err := c.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		fmt.Printf("[Cache] redis del failed: %v\n", err)
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
