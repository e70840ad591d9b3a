package httpapi

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter decides whether one more request from the given key is allowed
// inside the current window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a fixed-window counter over Redis: the first hit of a
// window creates the counter with an expiry, subsequent hits increment it.
type RedisLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

func NewRedisLimiter(addr string, max int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		max:    int64(max),
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.client.Incr(ctx, "ratelimit:"+key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, "ratelimit:"+key, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= l.max, nil
}
