package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T) *LoginLimiter {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewLoginLimiter(client)
}

func TestLoginLimiter_AllowsUnderLimit(t *testing.T) {
	limiter := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < maxAttempts; i++ {
		ok, err := limiter.Allow(ctx, "admin", "10.0.0.1")
		if err != nil {
			t.Fatalf("attempt %d: %v", i+1, err)
		}
		if !ok {
			t.Fatalf("attempt %d blocked below the limit", i+1)
		}
	}
}

func TestLoginLimiter_BlocksOverLimit(t *testing.T) {
	limiter := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < maxAttempts; i++ {
		if _, err := limiter.Allow(ctx, "admin", "10.0.0.1"); err != nil {
			t.Fatalf("attempt %d: %v", i+1, err)
		}
	}

	ok, err := limiter.Allow(ctx, "admin", "10.0.0.1")
	if err != nil {
		t.Fatalf("over-limit attempt: %v", err)
	}
	if ok {
		t.Fatalf("expected attempt %d to be blocked", maxAttempts+1)
	}

	// A different address is counted independently.
	ok, err = limiter.Allow(ctx, "admin", "10.0.0.2")
	if err != nil {
		t.Fatalf("other address: %v", err)
	}
	if !ok {
		t.Fatalf("other address should not be blocked")
	}
}

func TestLoginLimiter_ResetClearsCounter(t *testing.T) {
	limiter := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i <= maxAttempts; i++ {
		_, _ = limiter.Allow(ctx, "admin", "10.0.0.1")
	}

	if err := limiter.Reset(ctx, "admin", "10.0.0.1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	ok, err := limiter.Allow(ctx, "admin", "10.0.0.1")
	if err != nil {
		t.Fatalf("post-reset attempt: %v", err)
	}
	if !ok {
		t.Fatalf("expected attempt to pass after reset")
	}
}
