// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"vibenav/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// CacheClient is the generic cache client (geocode lookups).
	CacheClient *redis.Client
	// ContextClient is the dedicated client for chat conversation history.
	ContextClient *redis.Client
)

// newRedisClient builds a client for the given DB and pings it once.
// An unreachable Redis is logged, not fatal: every cache user treats misses and errors alike.
func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         config.AppConfig.RedisAddr,
		Password:     config.AppConfig.RedisPassword,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Failed to connect to Redis; continuing without cache",
			zap.String("client", name), zap.Error(err))
	}
	return client
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitContextCache initializes the Redis client holding chat conversations.
func InitContextCache() {
	ContextClient = newRedisClient(config.AppConfig.RedisContextDB, "context")
}

// GetContextCacheClient returns the Redis client for chat conversations.
func GetContextCacheClient() *redis.Client {
	if ContextClient == nil {
		InitContextCache()
	}
	return ContextClient
}
