package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kunalsharma05/garagehub/models"
)

const (
	providerListKey = "garagehub:providers"
	providerListTTL = 5 * time.Minute
)

// ProviderCache is a read-through cache for the provider directory, the most
// frequently read list in the system. A nil *ProviderCache is valid and means
// caching is disabled; every method degrades to a miss or no-op.
type ProviderCache struct {
	client *redis.Client
}

// NewProviderCache connects to redis at addr. Returns nil (caching disabled)
// when addr is empty or the server is unreachable; the directory is always
// served from the database in that case.
func NewProviderCache(addr string) *ProviderCache {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		fmt.Printf("Warning: redis unavailable at %s, provider cache disabled: %v\n", addr, err)
		return nil
	}

	fmt.Println("✅ Connected to Redis")
	return &ProviderCache{client: client}
}

// Get returns the cached provider list, or a miss on any error.
func (c *ProviderCache) Get(ctx context.Context) ([]models.Provider, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, providerListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var providers []models.Provider
	if err := json.Unmarshal(data, &providers); err != nil {
		return nil, false
	}
	return providers, true
}

// Set stores the provider list. Failures are ignored; the cache is best-effort.
func (c *ProviderCache) Set(ctx context.Context, providers []models.Provider) {
	if c == nil {
		return
	}
	data, err := json.Marshal(providers)
	if err != nil {
		return
	}
	c.client.Set(ctx, providerListKey, data, providerListTTL)
}

// Invalidate drops the cached list after a provider is created or updated.
func (c *ProviderCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.client.Del(ctx, providerListKey)
}
