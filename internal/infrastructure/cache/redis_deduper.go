package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"fieldserve/internal/usecase/interfaces"
)

const dedupKeyPrefix = "notif:dedup:"

// RedisDeduper implements the notification de-duplication window on top of
// SET NX. The first caller for a key wins and the key expires after the
// window, so the check is atomic across service instances.

type RedisDeduper struct {
	rdb *redis.Client
}

var _ interfaces.IDeduper = (*RedisDeduper)(nil)

func NewRedisDeduper(rdb *redis.Client) *RedisDeduper {
	return &RedisDeduper{rdb: rdb}
}

func (d *RedisDeduper) AcquireOnce(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return d.rdb.SetNX(ctx, dedupKeyPrefix+key, 1, ttl).Result()
}
