package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	settingsKey = "presensi:settings"
	settingsTTL = 5 * time.Minute
)

// SettingsCache keeps the serialized settings snapshot in Redis so every
// check-in does not hit PostgreSQL. A nil client disables caching, which
// keeps Redis optional in small deployments.
type SettingsCache struct {
	client *redis.Client
}

func NewSettingsCache(client *redis.Client) *SettingsCache {
	return &SettingsCache{client: client}
}

// Get unmarshals the cached snapshot into dest. It returns false on a
// miss, a disabled cache, or a corrupt payload.
func (c *SettingsCache) Get(ctx context.Context, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, settingsKey).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// Set stores the snapshot. Cache failures are swallowed; the database
// remains the source of truth.
func (c *SettingsCache) Set(ctx context.Context, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, settingsKey, raw, settingsTTL)
}

// Invalidate drops the snapshot after an admin update.
func (c *SettingsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, settingsKey)
}
