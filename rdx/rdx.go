package rdx

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Conn *redis.Client
	Ctx  = context.Background()
)

// CatalogTTL bounds how stale a cached product listing may get.
const CatalogTTL = 60 * time.Second

// Init connects to Redis from REDIS_URL. The cache is optional: with no
// REDIS_URL the storefront serves straight from MongoDB.
func Init() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set; catalog cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(Ctx).Err(); err != nil {
		log.Println("Redis unreachable; catalog cache disabled:", err)
		return
	}
	Conn = client
}

// CacheGet returns a cached value and whether it was present.
func CacheGet(key string) (string, bool) {
	if Conn == nil {
		return "", false
	}
	val, err := Conn.Get(Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// CacheSet stores a value with a TTL. Errors are logged, not surfaced;
// the cache is best effort.
func CacheSet(key, value string, ttl time.Duration) {
	if Conn == nil {
		return
	}
	if err := Conn.Set(Ctx, key, value, ttl).Err(); err != nil {
		log.Println("Redis Set error:", err)
	}
}

// InvalidateCatalog drops every cached product listing. Called after any
// catalog write.
func InvalidateCatalog() {
	if Conn == nil {
		return
	}
	keys, err := Conn.Keys(Ctx, "catalog:*").Result()
	if err != nil {
		log.Println("Redis scan error:", err)
		return
	}
	if len(keys) > 0 {
		Conn.Del(Ctx, keys...)
	}
}
