package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vibenav/config"
	"vibenav/database"
	"vibenav/database/repository"
	favoritesRepo "vibenav/database/repository/favorites"
	reviewsRepo "vibenav/database/repository/reviews"
	"vibenav/handlers"
	"vibenav/middleware"
	"vibenav/routes"
	ai "vibenav/services/intelligence"
	"vibenav/services/places"
	"vibenav/services/supplementary"
	"vibenav/services/vibe"
	"vibenav/utils"

	"github.com/go-redis/redis/v8"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.InitDB(); err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	utils.InitCache()
	utils.InitContextCache()

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	db := database.Database()
	if err := favoritesRepo.EnsureIndexes(indexCtx, db); err != nil {
		logger.Warn("main: failed to create favorites indexes", zap.Error(err))
	}
	if err := reviewsRepo.EnsureIndexes(indexCtx, db); err != nil {
		logger.Warn("main: failed to create review indexes", zap.Error(err))
	}
	cancelIndex()

	// Upstream collaborators.
	google := places.NewGoogleClient(cfg.GoogleMapsBaseURL, cfg.GoogleAPIKey, cfg.UpstreamTimeout, logger)
	geocoder := places.NewCachedGeocoder(google, utils.GetCacheClient(), cfg.GeocodeCacheTTL, logger)

	var supp supplementary.Source
	if config.UseStubSupplementary() {
		logger.Info("main: using template supplementary content")
		supp = supplementary.NewStubSource()
	} else {
		supp = supplementary.NewSearchSource(cfg.SearchAPIBaseURL, cfg.SearchAPIKey, cfg.SearchEngineID, cfg.UpstreamTimeout, logger)
	}

	var gemini *ai.GeminiClient
	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("main: Gemini unavailable, narrative and chat degrade", zap.Error(err))
		} else {
			gemini = client
			defer gemini.Close()
		}
	}

	var narrator ai.Narrator
	if config.UseStubNarrative() || gemini == nil {
		logger.Info("main: using template narratives")
		narrator = ai.NewStubNarrator()
	} else {
		narrator = ai.NewGeminiNarrator(gemini, cfg.UpstreamTimeout, logger)
	}

	var chatModel ai.ChatModel
	if gemini != nil {
		chatModel = gemini
	}

	orchestrator := vibe.NewOrchestrator(geocoder, google, google, supp, narrator, vibe.Settings{
		RadiusMeters:      cfg.SearchRadiusMeters,
		MaxCandidates:     cfg.MaxCandidates,
		DistanceBatchSize: cfg.DistanceBatchSize,
		MaxConcurrency:    cfg.MaxConcurrency,
		Timeout:           cfg.PipelineTimeout,
	}, logger)

	ctxStore := ai.NewRedisContextStore(utils.GetContextCacheClient(), utils.ChatContextTTL)
	assistant := ai.NewAssistant(chatModel, ctxStore, cfg.UpstreamTimeout, logger)

	locator := middleware.NewIPLocator(cfg.IPGeoBaseURL, cfg.UpstreamTimeout, time.Hour)

	// Create the Gin router.
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewPlacesHandler(orchestrator, google, google),
		handlers.NewLocationHandler(google),
		handlers.NewChatHandler(assistant),
		handlers.NewFavoritesHandler(repository.NewMongoFavoriteRepo(db)),
		handlers.NewReviewsHandler(repository.NewMongoReviewRepo(db)),
	)
	routes.RegisterRoutes(router, handlerBundle, locator)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, 30*time.Second,
		[]*redis.Client{utils.GetCacheClient(), utils.GetContextCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: MongoDB disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
