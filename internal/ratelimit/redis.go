package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// RedisCounter is a fixed-window counter backed by Redis. The key expires
// with the window, so a cold key starts a fresh window.
type RedisCounter struct {
	Client *redis.Client
}

// NewRedisCounter connects a counter to the Redis at url.
func NewRedisCounter(url string) (*RedisCounter, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisCounter{Client: redis.NewClient(opts)}, nil
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.Client.TxPipeline()
	incr := pipe.Incr(ctx, keyPrefix+key)
	pipe.ExpireNX(ctx, keyPrefix+key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

var _ Counter = (*RedisCounter)(nil)
