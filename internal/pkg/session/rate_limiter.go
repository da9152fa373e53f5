package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxSigninAttempts = 5
	signinWindow      = 15 * time.Minute
)

// RateLimiter throttles repeated sign-in attempts per (ip, email) pair.
type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// CheckSigninAttempt checks if a sign-in attempt is allowed and returns the
// remaining attempts in the current window.
func (r *RateLimiter) CheckSigninAttempt(ctx context.Context, ip, email string) (bool, int64, error) {
	key := fmt.Sprintf("ratelimit:signin:%s:%s", ip, email)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment signin attempt: %w", err)
	}

	// Set expiration on first attempt
	if count == 1 {
		r.client.Expire(ctx, key, signinWindow)
	}

	remaining := int64(maxSigninAttempts) - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= maxSigninAttempts, remaining, nil
}

// ResetSigninAttempts resets the attempt counter after a successful sign-in.
func (r *RateLimiter) ResetSigninAttempts(ctx context.Context, ip, email string) error {
	key := fmt.Sprintf("ratelimit:signin:%s:%s", ip, email)
	return r.client.Del(ctx, key).Err()
}
