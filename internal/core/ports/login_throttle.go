package ports

import "context"

// LoginThrottle limits repeated login attempts per account key.
type LoginThrottle interface {
	// Allow records an attempt and reports whether it may proceed.
	Allow(ctx context.Context, key string) (bool, error)
	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, key string) error
}
