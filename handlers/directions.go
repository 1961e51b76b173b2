package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"vibenav/models"
	"vibenav/services/places"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetDirections fetches a route from the directions provider and returns its polyline.
func (h *PlacesHandler) GetDirections(c *gin.Context) {
	originLat := c.Query("originLat")
	originLng := c.Query("originLng")
	destLat := c.Query("destLat")
	destLng := c.Query("destLng")

	if originLat == "" || originLng == "" || destLat == "" || destLng == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameters: originLat, originLng, destLat, destLng"})
		return
	}

	origin, okOrigin := parsePoint(originLat, originLng)
	dest, okDest := parsePoint(destLat, destLng)
	if !okOrigin || !okDest {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coordinates must be numeric"})
		return
	}

	polyline, err := h.Router.Directions(c.Request.Context(), origin, dest)
	if errors.Is(err, places.ErrNoRoute) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No route found"})
		return
	}
	if err != nil {
		getLogger(c).Warn("Directions lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"polyline": polyline})
}

func parsePoint(lat, lng string) (models.Coordinates, bool) {
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return models.Coordinates{}, false
	}
	ln, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return models.Coordinates{}, false
	}
	return models.Coordinates{Lat: la, Lng: ln}, true
}
