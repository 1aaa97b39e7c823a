// Package limiter defines interfaces and implementations for login rate limiting.
package limiter

import (
	"context"
	"time"
)

// Limiter controls login attempts and temporary lockouts per (login, client address) pair.
type Limiter interface {
	// Allow reports whether login is currently allowed and optional retry-after.
	Allow(ctx context.Context, login string, ipHash []byte) (bool, time.Duration, error)
	// Success resets counters after a successful login.
	Success(ctx context.Context, login string, ipHash []byte) error
	// Failure records a failed attempt; may place a temporary block.
	Failure(ctx context.Context, login string, ipHash []byte) (bool, time.Duration, error)
}

// Policy configures lockout: MaxFailures failures within Window block the pair for BlockFor.
type Policy struct {
	Window      time.Duration
	MaxFailures int
	BlockFor    time.Duration
}

// DefaultPolicy is used when no policy is configured.
var DefaultPolicy = Policy{Window: 15 * time.Minute, MaxFailures: 5, BlockFor: 15 * time.Minute}
