package routes

import (
	"time"

	"vibenav/handlers"
	"vibenav/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterPlacesRoutes registers search, autocomplete and directions endpoints.
func RegisterPlacesRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/places")
	{
		api.POST("/search", hb.SearchPlaces)
		api.GET("/autocomplete", hb.Autocomplete)
		api.GET("/directions", hb.GetDirections)
	}
}

// RegisterLocationRoutes registers the current-location endpoint. Only this group
// pays for the IP geolocation lookup.
func RegisterLocationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, locator *middleware.IPLocator) {
	api := r.Group("/api/location")
	{
		if locator != nil {
			api.Use(middleware.GeolocationMiddleware(locator))
		}
		api.POST("/current", hb.CurrentLocation)
	}
}

// RegisterChatRoutes registers the assistant endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/chat", hb.Chat)
}

// RegisterFavoritesRoutes registers favorites CRUD.
func RegisterFavoritesRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/favorites")
	{
		api.POST("", hb.AddFavorite)
		api.GET("", hb.ListFavorites)
		api.GET("/:id", hb.GetFavorite)
		api.PATCH("/:id", hb.UpdateFavoriteNotes)
		api.DELETE("/:id", hb.DeleteFavorite)
	}
}

// RegisterReviewRoutes registers user review CRUD.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.POST("", hb.CreateReview)
		api.GET("/place/:placeId", hb.ListPlaceReviews)
		api.GET("/:id", hb.GetReview)
		api.PUT("/:id", hb.UpdateReview)
		api.DELETE("/:id", hb.DeleteReview)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, locator *middleware.IPLocator) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterPlacesRoutes(r, hb)
	RegisterLocationRoutes(r, hb, locator)
	RegisterChatRoutes(r, hb)
	RegisterFavoritesRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
