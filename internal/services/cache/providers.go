// Package cache provides a redis-backed cache-aside layer for the provider
// catalog. Misses and redis errors fall through to the database; staleness
// is bounded by the TTL.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"property-finance-engine/internal/models"
	"property-finance-engine/internal/utils"
)

const providersKey = "providers:active"

// ProviderCache caches the active provider catalog as a JSON payload.
type ProviderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProviderCache creates a cache against the given redis address.
func NewProviderCache(addr string, ttl time.Duration) *ProviderCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &ProviderCache{client: client, ttl: ttl}
}

// Get returns the cached catalog and whether it was present.
func (c *ProviderCache) Get(ctx context.Context) ([]models.ServiceProvider, bool) {
	payload, err := c.client.Get(ctx, providersKey).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("Provider cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var providers []models.ServiceProvider
	if err := json.Unmarshal([]byte(payload), &providers); err != nil {
		utils.GetLogger().Warn("Provider cache payload unreadable", zap.Error(err))
		return nil, false
	}
	return providers, true
}

// Set stores the catalog for the configured TTL. Failures are logged, not
// returned: the cache is an optimization, never a dependency.
func (c *ProviderCache) Set(ctx context.Context, providers []models.ServiceProvider) {
	payload, err := json.Marshal(providers)
	if err != nil {
		utils.GetLogger().Warn("Provider cache marshal failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, providersKey, payload, c.ttl).Err(); err != nil {
		utils.GetLogger().Warn("Provider cache write failed", zap.Error(err))
	}
}

// Close releases the redis connection.
func (c *ProviderCache) Close() error {
	return c.client.Close()
}
