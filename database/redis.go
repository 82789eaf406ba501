package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client
var Ctx = context.Background()

// How long a cached recommendation analysis stays valid.
const recommendationCacheTTL = time.Hour

// ConnectRedis opens the optional Redis connection used to cache AI
// recommendation results. When REDIS_ADDR is not set the cache is
// disabled and every lookup behaves as a miss.
func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		log.Println("REDIS_ADDR not set, recommendation cache disabled.")
		return
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	redisDBStr := os.Getenv("REDIS_DB")
	redisDB, err := strconv.Atoi(redisDBStr)
	if err != nil || redisDBStr == "" {
		redisDB = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis, recommendation cache disabled: %v", err)
		return
	}

	Rdb = client
	log.Println("Redis connection successfully opened.")
}

func recommendationCacheKey(userID uint) string {
	return fmt.Sprintf("cache:recommendation:%d", userID)
}

// GetCachedRecommendation returns the cached analysis JSON for a user,
// or false on a miss (including when the cache is disabled).
func GetCachedRecommendation(userID uint) ([]byte, bool) {
	if Rdb == nil {
		return nil, false
	}
	data, err := Rdb.Get(Ctx, recommendationCacheKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCachedRecommendation stores the serialized analysis for a user.
func SetCachedRecommendation(userID uint, data []byte) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Set(Ctx, recommendationCacheKey(userID), data, recommendationCacheTTL).Err(); err != nil {
		log.Printf("Error caching recommendation for user %d: %v", userID, err)
	}
}

// InvalidateRecommendation drops the cached analysis after the profile
// data it was derived from changes.
func InvalidateRecommendation(userID uint) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Del(Ctx, recommendationCacheKey(userID)).Err(); err != nil {
		log.Printf("Error invalidating recommendation cache for user %d: %v", userID, err)
	}
}
