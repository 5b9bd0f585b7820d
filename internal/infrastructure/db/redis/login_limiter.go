package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxAttempts   = 5
	attemptWindow = 15 * time.Minute
)

// LoginLimiter throttles failed login attempts per username/address pair.
// Key format: login_attempts:<username>:<ip>, expiring after the window.
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow records one attempt and reports whether this pair is still under the
// limit. The first attempt in a window arms the expiry.
func (l *LoginLimiter) Allow(ctx context.Context, username, ip string) (bool, error) {
	key := l.key(username, ip)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("login limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, attemptWindow).Err(); err != nil {
			return false, fmt.Errorf("login limiter expire: %w", err)
		}
	}

	return n <= maxAttempts, nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username, ip string) error {
	return l.client.Del(ctx, l.key(username, ip)).Err()
}

func (l *LoginLimiter) key(username, ip string) string {
	return fmt.Sprintf("login_attempts:%s:%s", username, ip)
}
