// Package cache stores rendered documents keyed by string, in process or
// in Redis.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func result(err error) string {
	switch {
	case err == nil:
		return "hit"
	case errors.Is(err, ErrMiss):
		return "miss"
	default:
		return "error"
	}
}
