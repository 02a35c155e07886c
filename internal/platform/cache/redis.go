package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis using a redis:// URL. It returns nil when
// the URL is empty or the server is unreachable; callers treat a nil client
// as "cache disabled" and keep working.
func NewRedisClient(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("Warning: REDIS_URL not set. Running without Redis.")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Warning: invalid REDIS_URL (%v). Running without Redis.\n", err)
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: could not reach Redis (%v). Running without Redis.\n", err)
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis.")
	return client
}
