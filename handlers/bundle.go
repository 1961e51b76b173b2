package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Places endpoints
	SearchPlaces  gin.HandlerFunc
	Autocomplete  gin.HandlerFunc
	GetDirections gin.HandlerFunc

	// Location endpoints
	CurrentLocation gin.HandlerFunc

	// Chat endpoints
	Chat gin.HandlerFunc

	// Favorites endpoints
	AddFavorite         gin.HandlerFunc
	ListFavorites       gin.HandlerFunc
	GetFavorite         gin.HandlerFunc
	UpdateFavoriteNotes gin.HandlerFunc
	DeleteFavorite      gin.HandlerFunc

	// Review endpoints
	CreateReview     gin.HandlerFunc
	ListPlaceReviews gin.HandlerFunc
	GetReview        gin.HandlerFunc
	UpdateReview     gin.HandlerFunc
	DeleteReview     gin.HandlerFunc

	Health gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(p *PlacesHandler, l *LocationHandler, ch *ChatHandler, f *FavoritesHandler, r *ReviewsHandler) *HandlerBundle {
	return &HandlerBundle{
		SearchPlaces:  p.SearchPlaces,
		Autocomplete:  p.Autocomplete,
		GetDirections: p.GetDirections,

		CurrentLocation: l.CurrentLocation,

		Chat: ch.Chat,

		AddFavorite:         f.AddFavorite,
		ListFavorites:       f.ListFavorites,
		GetFavorite:         f.GetFavorite,
		UpdateFavoriteNotes: f.UpdateFavoriteNotes,
		DeleteFavorite:      f.DeleteFavorite,

		CreateReview:     r.CreateReview,
		ListPlaceReviews: r.ListPlaceReviews,
		GetReview:        r.GetReview,
		UpdateReview:     r.UpdateReview,
		DeleteReview:     r.DeleteReview,

		Health: Health,
	}
}
