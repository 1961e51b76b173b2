package handlers

import (
	"context"
	"errors"
	"net/http"

	"vibenav/models"
	"vibenav/services/places"
	"vibenav/services/vibe"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgCityCategoryRequired = "City and category are required"
	msgSearchFailed         = "Internal server error during place search"
)

// PlaceSearcher runs the enrichment pipeline for one request.
type PlaceSearcher interface {
	Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error)
}

// PlacesHandler serves search, autocomplete and directions.
type PlacesHandler struct {
	Searcher      PlaceSearcher
	Autocompleter places.Autocompleter
	Router        places.Router
}

func NewPlacesHandler(searcher PlaceSearcher, autocompleter places.Autocompleter, router places.Router) *PlacesHandler {
	return &PlacesHandler{Searcher: searcher, Autocompleter: autocompleter, Router: router}
}

// SearchPlaces handles POST /api/places/search.
func (h *PlacesHandler) SearchPlaces(c *gin.Context) {
	logger := getLogger(c)

	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Rejected search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgCityCategoryRequired})
		return
	}

	resp, err := h.Searcher.Search(c.Request.Context(), req)
	if err != nil {
		var inputErr *vibe.InputError
		if errors.As(err, &inputErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": inputErr.Message})
			return
		}
		logger.Error("Place search failed",
			zap.String("city", req.City),
			zap.String("category", req.Category),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgSearchFailed})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Autocomplete handles GET /api/places/autocomplete?input=. It never fails.
func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	predictions := h.Autocompleter.Autocomplete(c.Request.Context(), c.Query("input"))
	if predictions == nil {
		predictions = []models.LocationPrediction{}
	}
	c.JSON(http.StatusOK, gin.H{"predictions": predictions})
}
