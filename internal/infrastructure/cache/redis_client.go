package cache

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a redis client from REDIS_ADDR (optional REDIS_PASSWORD).
// Returns nil when REDIS_ADDR is unset or the server is unreachable; callers
// treat a nil client as "cache disabled".
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[cache][redis] ping failed addr=%s err=%v; cache disabled", addr, err)
		return nil
	}
	return rdb
}
