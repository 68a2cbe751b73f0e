package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface fronts redis for the short-lived values the
// services keep out of postgres: login attempt counters and the
// dashboard statistics snapshot.
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
