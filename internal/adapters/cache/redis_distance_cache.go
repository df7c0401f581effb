package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces distance entries so the cache can share a Redis
// instance with other tenants.
const keyPrefix = "dist:"

// Redis-backed cache for pairwise walking step counts. Entries are
// written without expiry: the grid is immutable for a deployment, so a
// cached pair can only be invalidated by flushing on layout change.
type RedisDistanceCache struct {
	Client *redis.Client
}

func NewRedisDistanceCache(client *redis.Client) *RedisDistanceCache {
	return &RedisDistanceCache{Client: client}
}

// Fetch cached step counts for the given pair keys. Absent keys and
// unparsable values are omitted from the result.
func (c *RedisDistanceCache) GetMany(ctx context.Context, keys []string) (map[string]int, error) {
	if c.Client == nil {
		return nil, errors.New("distance cache: redis client is nil")
	}

	if len(keys) == 0 {
		return map[string]int{}, nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}

	values, err := c.Client.MGet(ctx, prefixed...).Result()
	if err != nil {
		return nil, fmt.Errorf("get distance cache: mget %d keys: %w", len(keys), err)
	}

	out := make(map[string]int, len(keys))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}

		steps, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		out[keys[i]] = steps
	}

	return out, nil
}

// Store step counts for the given pair keys in one round trip.
func (c *RedisDistanceCache) PutMany(ctx context.Context, entries map[string]int) error {
	if c.Client == nil {
		return errors.New("distance cache: redis client is nil")
	}

	if len(entries) == 0 {
		return nil
	}

	pipe := c.Client.Pipeline()
	for key, steps := range entries {
		pipe.Set(ctx, keyPrefix+key, strconv.Itoa(steps), 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert distance cache: pipeline %d entries: %w", len(entries), err)
	}

	return nil
}
