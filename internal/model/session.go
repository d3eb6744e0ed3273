package model

import (
	"context"
	"time"
)

// SessionTTL is the fixed lifetime of a session token.
const SessionTTL = 24 * time.Hour

// Cache is a volatile key/value store with per-key expiry.
// Get returns ErrNotFound for absent or expired keys.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
