// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tripnest/config"

	"github.com/go-redis/redis/v8"
)

var (
	// TripCacheClient holds per-traveler funnel state (search params, results, cart).
	TripCacheClient *redis.Client
	// SessionCacheClient holds prebook sessions issued by the supplier.
	SessionCacheClient *redis.Client
)

// InitTripCache initializes the Redis client for trip state.
func InitTripCache() {
	TripCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTripDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := TripCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Trip Cache): %v", err)
	}
}

// GetTripCacheClient returns the trip state cache client.
func GetTripCacheClient() *redis.Client {
	if TripCacheClient == nil {
		InitTripCache()
	}
	return TripCacheClient
}

// InitSessionCache initializes the Redis client for prebook sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the prebook session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
