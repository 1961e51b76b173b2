package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"vibenav/middleware"
	"vibenav/models"
	"vibenav/services/places"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultAddress = "Unknown address"
	defaultCity    = "Unknown City"
)

// LocationHandler labels the caller's position.
type LocationHandler struct {
	Reverse places.ReverseGeocoder
}

func NewLocationHandler(reverse places.ReverseGeocoder) *LocationHandler {
	return &LocationHandler{Reverse: reverse}
}

type locationBody struct {
	Lat json.RawMessage `json:"lat"`
	Lng json.RawMessage `json:"lng"`
}

// parseCoordinate accepts a JSON number or a numeric string.
func parseCoordinate(raw json.RawMessage) (float64, bool) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CurrentLocation handles POST /api/location/current.
// With {lat,lng} the point is reverse geocoded; with no body the IP geolocation is used.
func (h *LocationHandler) CurrentLocation(c *gin.Context) {
	logger := getLogger(c)

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var body locationBody
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
			return
		}
	}
	if len(body.Lat) == 0 && len(body.Lng) == 0 {
		c.JSON(http.StatusOK, ipFallback(c))
		return
	}

	lat, okLat := parseCoordinate(body.Lat)
	lng, okLng := parseCoordinate(body.Lng)
	if !okLat || !okLng {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return
	}

	addr, err := h.Reverse.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		logger.Warn("Reverse geocoding failed", zap.Float64("lat", lat), zap.Float64("lng", lng), zap.Error(err))
		addr.Lat, addr.Lng = lat, lng
		if addr.Address == "" {
			addr.Address = defaultAddress
		}
		if addr.City == "" {
			addr.City = defaultCity
		}
		addr.Warning = "Could not resolve address for these coordinates"
	}
	c.JSON(http.StatusOK, addr)
}

func ipFallback(c *gin.Context) models.Address {
	if v, ok := c.Get(middleware.GeoLocationKey); ok {
		if geo, ok := v.(*middleware.GeoLocation); ok && geo.Known() {
			loc := geo.UserLocation()
			addr := models.Address{Lat: loc.Lat, Lng: loc.Lng, Address: loc.Address, City: loc.City}
			if addr.Address == "" {
				addr.Address = defaultAddress
			}
			if addr.City == "" || addr.City == "Unknown" {
				addr.City = defaultCity
			}
			addr.Warning = "Approximate location from IP address"
			return addr
		}
	}
	return models.Address{
		Address: defaultAddress,
		City:    defaultCity,
		Warning: "Location unavailable",
	}
}
