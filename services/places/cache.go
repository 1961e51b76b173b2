package places

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"vibenav/models"
	"vibenav/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedGeocoder remembers successful lookups in Redis.
type CachedGeocoder struct {
	next   Geocoder
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedGeocoder wraps next. A nil client disables caching.
func NewCachedGeocoder(next Geocoder, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedGeocoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedGeocoder{next: next, client: client, ttl: ttl, logger: logger.With(zap.String("component", "geocode_cache"))}
}

func geocodeKey(locationText string) string {
	return utils.GeocodeCachePrefix + strings.ToLower(strings.TrimSpace(locationText))
}

// Resolve serves from cache when possible and stores new hits. Misses are never cached.
func (g *CachedGeocoder) Resolve(ctx context.Context, locationText string) (models.Coordinates, bool) {
	if strings.TrimSpace(locationText) == "" {
		return models.Coordinates{}, false
	}
	if g.client == nil {
		return g.next.Resolve(ctx, locationText)
	}

	key := geocodeKey(locationText)
	if raw, err := g.client.Get(ctx, key).Result(); err == nil {
		var coords models.Coordinates
		if err := json.Unmarshal([]byte(raw), &coords); err == nil {
			return coords, true
		}
	} else if err != redis.Nil {
		g.logger.Debug("Geocode cache read failed", zap.Error(err))
	}

	coords, ok := g.next.Resolve(ctx, locationText)
	if !ok {
		return coords, false
	}
	if data, err := json.Marshal(coords); err == nil {
		if err := g.client.Set(ctx, key, data, g.ttl).Err(); err != nil {
			g.logger.Debug("Geocode cache write failed", zap.Error(err))
		}
	}
	return coords, true
}
