package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"vibenav/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ============================================================================
// Rate limiting
// ============================================================================

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	hdr := map[string]string{"X-Forwarded-For": "203.0.113.7"}
	assert.Equal(t, http.StatusOK, serve(r, hdr).Code)
	assert.Equal(t, http.StatusOK, serve(r, hdr).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, hdr).Code)

	other := map[string]string{"X-Forwarded-For": "203.0.113.8, 10.0.0.1"}
	assert.Equal(t, http.StatusOK, serve(r, other).Code)
}

func TestRateLimiterStore_EvictIdle(t *testing.T) {
	store := newRateLimiterStore(10)
	store.getLimiter("1.1.1.1")
	store.limiters["1.1.1.1"].lastSeen = time.Now().Add(-time.Hour)
	store.getLimiter("2.2.2.2")

	store.evictIdle(30 * time.Minute)

	assert.NotContains(t, store.limiters, "1.1.1.1")
	assert.Contains(t, store.limiters, "2.2.2.2")
}

// ============================================================================
// Request id
// ============================================================================

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = c.GetString(utils.RequestIDKey)
		c.Status(http.StatusOK)
	})

	w := serve(r, nil)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(utils.RequestIDKey))

	w = serve(r, map[string]string{utils.RequestIDKey: "abc-123"})
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(utils.RequestIDKey))
}

// ============================================================================
// Geolocation
// ============================================================================

func TestIPLocator_LocatesAndCaches(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/8.8.8.8/json/", r.URL.Path)
		_, _ = w.Write([]byte(`{"ip":"8.8.8.8","city":"Mountain View","region":"California","country_name":"United States","latitude":37.4,"longitude":-122.1}`))
	}))
	defer server.Close()
	locator := NewIPLocator(server.URL, time.Second, time.Hour)

	first := locator.Locate(t.Context(), "8.8.8.8", zap.NewNop())
	second := locator.Locate(t.Context(), "8.8.8.8", zap.NewNop())

	require.True(t, first.Known())
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), calls.Load())

	loc := first.UserLocation()
	assert.Equal(t, "Mountain View", loc.City)
	assert.Equal(t, "Mountain View, California, United States", loc.Address)
	assert.Equal(t, 37.4, loc.Lat)
}

func TestIPLocator_PrivateAndFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()
	locator := NewIPLocator(server.URL, time.Second, time.Hour)

	for _, ip := range []string{"192.168.1.4", "127.0.0.1", "", "1.2.3.4"} {
		geo := locator.Locate(t.Context(), ip, zap.NewNop())
		assert.False(t, geo.Known(), ip)
		assert.Equal(t, "Unknown", geo.Country, ip)
	}
}

func TestGeolocationMiddleware_SetsContext(t *testing.T) {
	locator := NewIPLocator("http://127.0.0.1:1", time.Second, time.Hour)
	r := gin.New()
	r.Use(GeolocationMiddleware(locator))
	var geo *GeoLocation
	r.GET("/ping", func(c *gin.Context) {
		v, _ := c.Get(GeoLocationKey)
		geo, _ = v.(*GeoLocation)
		c.Status(http.StatusOK)
	})

	w := serve(r, map[string]string{"X-Real-IP": "10.1.2.3"})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, geo)
	assert.Equal(t, "10.1.2.3", geo.IP)
}
