package handlers

import (
	"errors"
	"net/http"

	"vibenav/database/repository"
	reviewsRepo "vibenav/database/repository/reviews"
	"vibenav/models"
	"vibenav/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReviewsHandler struct {
	Repo repository.ReviewRepository
}

func NewReviewsHandler(repo repository.ReviewRepository) *ReviewsHandler {
	return &ReviewsHandler{Repo: repo}
}

type createReviewRequest struct {
	UserID    string   `json:"userId" binding:"required"`
	PlaceID   string   `json:"placeId" binding:"required"`
	PlaceName string   `json:"placeName"`
	Rating    int      `json:"rating" binding:"required,min=1,max=5"`
	Text      string   `json:"text"`
	Images    []string `json:"images"`
}

// CreateReview handles POST /api/reviews.
func (h *ReviewsHandler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), models.UserReview{
		UserID:    req.UserID,
		PlaceID:   req.PlaceID,
		PlaceName: req.PlaceName,
		Rating:    req.Rating,
		Text:      req.Text,
		Images:    req.Images,
	})
	if err != nil {
		getLogger(c).Error("Failed to create review", zap.String("placeId", req.PlaceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListPlaceReviews handles GET /api/reviews/place/:placeId.
func (h *ReviewsHandler) ListPlaceReviews(c *gin.Context) {
	placeID := c.Param("placeId")
	reviews, err := h.Repo.ListByPlace(c.Request.Context(), placeID)
	if err != nil {
		getLogger(c).Error("Failed to list reviews", zap.String("placeId", placeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "total": len(reviews)})
}

// GetReview handles GET /api/reviews/:id.
func (h *ReviewsHandler) GetReview(c *gin.Context) {
	review, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// UpdateReview handles PUT /api/reviews/:id.
func (h *ReviewsHandler) UpdateReview(c *gin.Context) {
	var update repository.ReviewUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}
	if update.Rating != nil && (*update.Rating < 1 || *update.Rating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}
	if err := h.Repo.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated"})
}

// DeleteReview handles DELETE /api/reviews/:id.
func (h *ReviewsHandler) DeleteReview(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *ReviewsHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, reviewsRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Review repository error", err.Error())
}
