package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	settingsKey = "sideb:site_settings"
	settingsTTL = 10 * time.Minute
)

// SettingsCache keeps the full site-settings map in redis so the public pages
// don't hit MySQL on every render. Invalidated whenever a setting is written.
type SettingsCache struct {
	redis *redis.Client
}

func NewSettingsCache(rds *redis.Client) *SettingsCache {
	return &SettingsCache{redis: rds}
}

func (c *SettingsCache) Get(ctx context.Context) (map[string]string, error) {
	raw, err := c.redis.Get(ctx, settingsKey).Result()
	if err != nil {
		return nil, err
	}
	var settings map[string]string
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *SettingsCache) Set(ctx context.Context, settings map[string]string) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, settingsKey, raw, settingsTTL).Err()
}

func (c *SettingsCache) Invalidate(ctx context.Context) error {
	return c.redis.Del(ctx, settingsKey).Err()
}
