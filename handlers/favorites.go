package handlers

import (
	"errors"
	"net/http"
	"strings"

	"vibenav/database/repository"
	favoritesRepo "vibenav/database/repository/favorites"
	"vibenav/models"
	"vibenav/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FavoritesHandler struct {
	Repo repository.FavoriteRepository
}

func NewFavoritesHandler(repo repository.FavoriteRepository) *FavoritesHandler {
	return &FavoritesHandler{Repo: repo}
}

type addFavoriteRequest struct {
	UserID string            `json:"userId" binding:"required"`
	Place  models.VibeResult `json:"place"`
	Notes  string            `json:"notes"`
}

// AddFavorite handles POST /api/favorites.
func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	logger := getLogger(c)
	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}
	if strings.TrimSpace(req.Place.ID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "place.id is required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), models.FavoritePlace{
		UserID: req.UserID,
		Place:  req.Place,
		Notes:  req.Notes,
	})
	if errors.Is(err, favoritesRepo.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logger.Error("Failed to add favorite", zap.String("userId", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListFavorites handles GET /api/favorites?userId=.
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: userId"})
		return
	}
	favorites, err := h.Repo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		getLogger(c).Error("Failed to list favorites", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites, "total": len(favorites)})
}

// GetFavorite handles GET /api/favorites/:id.
func (h *FavoritesHandler) GetFavorite(c *gin.Context) {
	fav, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fav)
}

// UpdateFavoriteNotes handles PATCH /api/favorites/:id.
func (h *FavoritesHandler) UpdateFavoriteNotes(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}
	if err := h.Repo.UpdateNotes(c.Request.Context(), c.Param("id"), req.Notes); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite updated"})
}

// DeleteFavorite handles DELETE /api/favorites/:id.
func (h *FavoritesHandler) DeleteFavorite(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}

func (h *FavoritesHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, favoritesRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Favorite repository error", err.Error())
}
