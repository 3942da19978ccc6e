// Package cache provides the session-state cache used to track asked
// questions and short-lived evaluation artifacts. Redis is the primary
// backend; an in-memory store covers local development.
package cache

import (
	"context"
	"time"
)

// Store is a key-value store with TTLs and set operations.
type Store interface {
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error

	// Set operations, used for per-session asked-question tracking.
	AddToSet(ctx context.Context, key string, members ...string) error
	SetMembers(ctx context.Context, key string) ([]string, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error

	Close() error
}
