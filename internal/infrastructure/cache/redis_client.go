package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	appconfig "fieldserve/internal/config"
)

// ConnectRedis opens and pings the Redis client shared by the deduper and the
// settings cache.
func ConnectRedis(ctx context.Context, cfg appconfig.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}
