package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campus-compliments/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CachedGeocoder memoizes successful lookups in redis. Nearby pins share an
// entry because coordinates are rounded to five decimals (about one metre).
type CachedGeocoder struct {
	next   Geocoder
	client redis.Cmdable
	ttl    time.Duration
}

// NewCachedGeocoder wraps next with a redis read-through cache.
func NewCachedGeocoder(next Geocoder, client redis.Cmdable, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{next: next, client: client, ttl: ttl}
}

// CacheKey returns the redis key for a coordinate.
func CacheKey(lat, lng float64) string {
	return fmt.Sprintf("geocode:%.5f,%.5f", lat, lng)
}

// Reverse serves from cache when possible. Redis failures degrade to a direct
// lookup rather than failing the request.
func (c *CachedGeocoder) Reverse(ctx context.Context, lat, lng float64) (Feature, error) {
	l := zerolog.Ctx(ctx)
	key := CacheKey(lat, lng)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var f Feature
		if jsonErr := json.Unmarshal(raw, &f); jsonErr == nil {
			metrics.GeocodeCacheTotal.WithLabelValues("hit").Inc()
			return f, nil
		}
		l.Warn().Str("key", key).Msg("geocode_cache_corrupt")
	case errors.Is(err, redis.Nil):
		metrics.GeocodeCacheTotal.WithLabelValues("miss").Inc()
	default:
		metrics.GeocodeCacheTotal.WithLabelValues("error").Inc()
		l.Warn().Err(err).Msg("geocode_cache_get_failed")
	}

	f, err := c.next.Reverse(ctx, lat, lng)
	if err != nil {
		return Feature{}, err
	}

	if payload, err := json.Marshal(f); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			l.Warn().Err(err).Msg("geocode_cache_set_failed")
		}
	}
	return f, nil
}

// OpenRedis creates a redis client, or returns nil when addr is empty.
func OpenRedis(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}
