package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Limiter throttles verification-code sends per phone number so a single
// number cannot be used to hammer the SMS gateway.
type Limiter interface {
	Allow(ctx context.Context, phone string) (bool, error)
}

// RedisLimiter counts sends per phone in a rolling window backed by
// INCR + EXPIRE.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, phone string) (bool, error) {
	key := fmt.Sprintf("otp:req:%s", phone)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		// First send in the window starts the clock.
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, err
		}
	}

	return n <= l.limit, nil
}

// Unlimited never throttles. Used when no redis address is configured.
type Unlimited struct{}

func (Unlimited) Allow(ctx context.Context, phone string) (bool, error) {
	return true, nil
}

var (
	_ Limiter = (*RedisLimiter)(nil)
	_ Limiter = Unlimited{}
)
