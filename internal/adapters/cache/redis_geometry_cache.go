package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"transfer-route-service/internal/domain"
	"transfer-route-service/internal/platform/obs"
)

// Redis-backed cache for directions-service leg geometry. Directions calls
// are the slow and quota-bound part of map rendering, and a leg's road shape
// only changes when the road network does, so entries get a long TTL.
// Keys are expected to be consistent (coordinate-derived) by the caller.
type RedisGeometryCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeometryCache(client *redis.Client, ttl time.Duration) *RedisGeometryCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisGeometryCache{Client: client, TTL: ttl}
}

// Get fetches a cached leg geometry. The second return reports a hit.
func (c *RedisGeometryCache) Get(ctx context.Context, key string) (_ domain.LegGeometry, _ bool, err error) {
	defer obs.Time(ctx, "geometry.cache.Get")(&err)

	if c.Client == nil {
		return domain.LegGeometry{}, false, errors.New("geometry cache: client is nil")
	}
	if key == "" {
		return domain.LegGeometry{}, false, errors.New("get geometry cache: key must not be empty")
	}

	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.LegGeometry{}, false, nil
	}
	if err != nil {
		return domain.LegGeometry{}, false, fmt.Errorf("get geometry cache: redis get %q: %w", key, err)
	}

	var geom domain.LegGeometry
	if err := json.Unmarshal(raw, &geom); err != nil {
		return domain.LegGeometry{}, false, fmt.Errorf("get geometry cache: decode %q: %w", key, err)
	}

	return geom, true, nil
}

// Put stores a leg geometry under the given key.
func (c *RedisGeometryCache) Put(ctx context.Context, key string, geom domain.LegGeometry) error {
	if c.Client == nil {
		return errors.New("geometry cache: client is nil")
	}
	if key == "" {
		return errors.New("put geometry cache: key must not be empty")
	}

	raw, err := json.Marshal(geom)
	if err != nil {
		return fmt.Errorf("put geometry cache: encode %q: %w", key, err)
	}

	if err := c.Client.Set(ctx, key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put geometry cache: redis set %q: %w", key, err)
	}

	return nil
}
