package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	throttleWindow     = 15 * time.Minute
	defaultMaxAttempts = 10
	throttleKeyPrefix  = "login_attempts:"
)

// LoginThrottle counts login attempts per account in Redis.
// Key format: login_attempts:<email>, expiring after throttleWindow.
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// If maxAttempts <= 0, defaultMaxAttempts is used.
func NewLoginThrottle(client *redis.Client, maxAttempts int) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &LoginThrottle{client: client, maxAttempts: maxAttempts}
}

// Allow records an attempt and reports whether it is within the limit.
func (t *LoginThrottle) Allow(ctx context.Context, key string) (bool, error) {
	k := throttleKeyPrefix + key

	n, err := t.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		// First attempt in the window starts the expiry clock.
		if err := t.client.Expire(ctx, k, throttleWindow).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= int64(t.maxAttempts), nil
}

// Reset clears the attempt counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, key string) error {
	return t.client.Del(ctx, throttleKeyPrefix+key).Err()
}
