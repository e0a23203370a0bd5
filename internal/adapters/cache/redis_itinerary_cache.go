package cache

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "itinerary:"

// RedisItineraryCache stores gob-encoded itineraries in Redis so several
// service instances share planned results.
type RedisItineraryCache struct {
	Client *redis.Client
}

func NewRedisItineraryCache(client *redis.Client) *RedisItineraryCache {
	return &RedisItineraryCache{Client: client}
}

func (r *RedisItineraryCache) Get(ctx context.Context, key string) (_ *domain.Itinerary, _ bool, err error) {
	defer obs.Time(ctx, "itinerary.cache.redis.Get")(&err)

	if r.Client == nil {
		return nil, false, errors.New("redis itinerary cache: client is nil")
	}

	raw, err := r.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis itinerary cache: get %q: %w", key, err)
	}

	var it domain.Itinerary
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&it); err != nil {
		return nil, false, fmt.Errorf("redis itinerary cache: decode %q: %w", key, err)
	}
	return &it, true, nil
}

func (r *RedisItineraryCache) Set(ctx context.Context, key string, it *domain.Itinerary, ttl time.Duration) (err error) {
	defer obs.Time(ctx, "itinerary.cache.redis.Set")(&err)

	if r.Client == nil {
		return errors.New("redis itinerary cache: client is nil")
	}
	if it == nil {
		return fmt.Errorf("redis itinerary cache: nil itinerary for %q", key)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(it); err != nil {
		return fmt.Errorf("redis itinerary cache: encode %q: %w", key, err)
	}

	if err := r.Client.Set(ctx, redisKeyPrefix+key, buf.Bytes(), ttl).Err(); err != nil {
		return fmt.Errorf("redis itinerary cache: set %q: %w", key, err)
	}
	return nil
}
