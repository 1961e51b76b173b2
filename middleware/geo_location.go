// File: middleware/geo_location.go
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"vibenav/models"
	"vibenav/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeoLocationKey is the gin context key holding the caller's *GeoLocation.
const GeoLocationKey = "geoLocation"

// GeoLocation represents the geolocation information for an IP.
type GeoLocation struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	Country     string  `json:"country_name"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
}

// Known reports whether the lookup produced a usable position.
func (g *GeoLocation) Known() bool {
	return g != nil && (g.Latitude != 0 || g.Longitude != 0)
}

// UserLocation converts the lookup into the coarse location used by the search.
func (g *GeoLocation) UserLocation() models.UserLocation {
	parts := make([]string, 0, 3)
	for _, p := range []string{g.City, g.Region, g.Country} {
		if p != "" && p != "Unknown" {
			parts = append(parts, p)
		}
	}
	return models.UserLocation{
		Lat:     g.Latitude,
		Lng:     g.Longitude,
		City:    g.City,
		Address: strings.Join(parts, ", "),
	}
}

type cachedGeo struct {
	geo     *GeoLocation
	expires time.Time
}

// IPLocator resolves client IPs with ipapi.co style JSON and caches results in memory.
type IPLocator struct {
	client  *http.Client
	baseURL string
	ttl     time.Duration
	breaker *utils.Breaker

	mu    sync.RWMutex
	cache map[string]cachedGeo
}

func NewIPLocator(baseURL string, timeout, ttl time.Duration) *IPLocator {
	return &IPLocator{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     ttl,
		breaker: utils.NewBreaker("ip_geolocation"),
		cache:   make(map[string]cachedGeo),
	}
}

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	return parsedIP.IsPrivate() || parsedIP.IsLoopback() || parsedIP.IsLinkLocalUnicast()
}

func unknownGeo(ip string) *GeoLocation {
	return &GeoLocation{IP: ip, Country: "Unknown"}
}

// Locate returns the geolocation of ip. Private addresses and failures yield an "Unknown" location.
func (l *IPLocator) Locate(ctx context.Context, ip string, logger *zap.Logger) *GeoLocation {
	l.mu.RLock()
	entry, exists := l.cache[ip]
	l.mu.RUnlock()
	if exists && time.Now().Before(entry.expires) {
		return entry.geo
	}

	if ip == "" || isPrivateIP(ip) {
		logger.Debug("Client IP is private; using default geolocation", zap.String("ip", ip))
		return unknownGeo(ip)
	}

	geo, err := utils.Run(l.breaker, func() (*GeoLocation, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/json/", l.baseURL, ip), nil)
		if err != nil {
			return nil, err
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("geolocation API returned %d", resp.StatusCode)
		}
		var geo GeoLocation
		if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
			return nil, fmt.Errorf("decode geolocation: %w", err)
		}
		return &geo, nil
	})
	if err != nil {
		logger.Warn("Failed to query external geolocation API", zap.String("ip", ip), zap.Error(err))
		return unknownGeo(ip)
	}
	if geo.Country == "" {
		geo.Country = "Unknown"
	}

	l.mu.Lock()
	l.cache[ip] = cachedGeo{geo: geo, expires: time.Now().Add(l.ttl)}
	l.mu.Unlock()
	return geo
}

// GeolocationMiddleware resolves the client's IP and stores the result under GeoLocationKey.
// It never blocks a request.
func GeolocationMiddleware(locator *IPLocator) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		clientIP := getClientIP(c)
		geo := locator.Locate(c.Request.Context(), clientIP, logger)
		c.Set(GeoLocationKey, geo)
		c.Next()
	}
}
