package places

import (
	"context"
	"testing"
	"time"

	"vibenav/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGeocoder struct {
	calls  int
	result models.Coordinates
	found  bool
}

func (g *countingGeocoder) Resolve(ctx context.Context, locationText string) (models.Coordinates, bool) {
	g.calls++
	return g.result, g.found
}

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestCachedGeocoder_CachesHits(t *testing.T) {
	mr, client := newMiniRedis(t)
	inner := &countingGeocoder{result: models.Coordinates{Lat: 51.5, Lng: -0.12}, found: true}
	geocoder := NewCachedGeocoder(inner, client, time.Hour, nil)

	first, ok := geocoder.Resolve(context.Background(), "London")
	require.True(t, ok)
	second, ok := geocoder.Resolve(context.Background(), "  london ")
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
	assert.True(t, mr.Exists("geo:london"))
	assert.Equal(t, time.Hour, mr.TTL("geo:london"))
}

func TestCachedGeocoder_DoesNotCacheMisses(t *testing.T) {
	mr, client := newMiniRedis(t)
	inner := &countingGeocoder{found: false}
	geocoder := NewCachedGeocoder(inner, client, time.Hour, nil)

	_, ok := geocoder.Resolve(context.Background(), "Atlantis")
	assert.False(t, ok)
	_, ok = geocoder.Resolve(context.Background(), "Atlantis")
	assert.False(t, ok)

	assert.Equal(t, 2, inner.calls)
	assert.False(t, mr.Exists("geo:atlantis"))
}

func TestCachedGeocoder_FallsThroughWhenRedisDown(t *testing.T) {
	mr, client := newMiniRedis(t)
	mr.Close()
	inner := &countingGeocoder{result: models.Coordinates{Lat: 1, Lng: 2}, found: true}
	geocoder := NewCachedGeocoder(inner, client, time.Hour, nil)

	coords, ok := geocoder.Resolve(context.Background(), "Lisbon")

	assert.True(t, ok)
	assert.Equal(t, models.Coordinates{Lat: 1, Lng: 2}, coords)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedGeocoder_EmptyTextSkipsEverything(t *testing.T) {
	inner := &countingGeocoder{found: true}
	geocoder := NewCachedGeocoder(inner, nil, time.Hour, nil)

	_, ok := geocoder.Resolve(context.Background(), "")

	assert.False(t, ok)
	assert.Equal(t, 0, inner.calls)
}
