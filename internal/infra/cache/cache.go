package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/config"
	"github.com/redis/go-redis/v9"
)

func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}

// TreeCache caches assembled configuration trees as JSON. The assembled
// trees are read far more often than they change (every headset pulls the
// full table tree on scene load), so a short TTL plus write-side
// invalidation is enough.
type TreeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTreeCache(rdb *redis.Client, ttl time.Duration) *TreeCache {
	return &TreeCache{rdb: rdb, ttl: ttl}
}

func TableKey(id string) string        { return "config:table:" + id }
func PresentationKey(id string) string { return "config:presentation:" + id }

// Get unmarshals the cached tree into dest. The second return value is
// false on a miss.
func (c *TreeCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("unmarshal cached tree: %w", err)
	}
	return true, nil
}

func (c *TreeCache) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal tree: %w", err)
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

func (c *TreeCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// DelPattern removes every key matching the glob pattern. Used after a
// write that may affect an unknown set of assembled tables.
func (c *TreeCache) DelPattern(ctx context.Context, pattern string) error {
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.Del(ctx, keys...)
}
