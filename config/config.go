package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB holds favorites and user reviews.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisContextDB int    `mapstructure:"REDIS_CONTEXT_DB"`

	// Google Maps web services (geocode, places, distance matrix, directions).
	GoogleAPIKey      string `mapstructure:"GOOGLE_API_KEY"`
	GoogleMapsBaseURL string `mapstructure:"GOOGLE_MAPS_BASE_URL"`

	// Gemini powers taglines, emojis and the chat assistant.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Custom Search backs the supplementary content source.
	SearchAPIBaseURL string `mapstructure:"SEARCH_API_BASE_URL"`
	SearchAPIKey     string `mapstructure:"SEARCH_API_KEY"`
	SearchEngineID   string `mapstructure:"SEARCH_ENGINE_ID"`

	// IP geolocation fallback for /api/location/current.
	IPGeoBaseURL string `mapstructure:"IP_GEO_BASE_URL"`

	// "gemini" or "stub".
	NarrativeProvider string `mapstructure:"NARRATIVE_PROVIDER"`
	// "search" or "stub".
	SupplementaryProvider string `mapstructure:"SUPPLEMENTARY_PROVIDER"`

	// Pipeline tuning.
	UpstreamTimeout    time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	PipelineTimeout    time.Duration `mapstructure:"PIPELINE_TIMEOUT"`
	SearchRadiusMeters int           `mapstructure:"SEARCH_RADIUS_METERS"`
	MaxCandidates      int           `mapstructure:"MAX_CANDIDATES"`
	DistanceBatchSize  int           `mapstructure:"DISTANCE_BATCH_SIZE"`
	MaxConcurrency     int           `mapstructure:"MAX_CONCURRENCY"`
	GeocodeCacheTTL    time.Duration `mapstructure:"GEOCODE_CACHE_TTL"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "vibenav")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CONTEXT_DB", 1)
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com/maps/api")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("SEARCH_API_BASE_URL", "https://www.googleapis.com/customsearch/v1")
	viper.SetDefault("SEARCH_API_KEY", "")
	viper.SetDefault("SEARCH_ENGINE_ID", "")
	viper.SetDefault("IP_GEO_BASE_URL", "https://ipapi.co")
	viper.SetDefault("NARRATIVE_PROVIDER", "gemini")
	viper.SetDefault("SUPPLEMENTARY_PROVIDER", "search")
	viper.SetDefault("UPSTREAM_TIMEOUT", "8s")
	viper.SetDefault("PIPELINE_TIMEOUT", "25s")
	viper.SetDefault("SEARCH_RADIUS_METERS", 10000)
	viper.SetDefault("MAX_CANDIDATES", 8)
	viper.SetDefault("DISTANCE_BATCH_SIZE", 10)
	viper.SetDefault("MAX_CONCURRENCY", 8)
	viper.SetDefault("GEOCODE_CACHE_TTL", "24h")
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UseStubNarrative reports whether narrative generation should stay offline.
func UseStubNarrative() bool {
	return AppConfig.NarrativeProvider == "stub" || AppConfig.GeminiAPIKey == ""
}

// UseStubSupplementary reports whether supplementary data should come from the local templates.
func UseStubSupplementary() bool {
	return AppConfig.SupplementaryProvider == "stub" || AppConfig.SearchAPIKey == "" || AppConfig.SearchEngineID == ""
}
