package redis

import (
	"context"
	"time"
)

type RedisRepository interface {
	// IncrementWithTTL bumps a counter, setting the window TTL when the key
	// is first created, and returns the post-increment value.
	IncrementWithTTL(ctx context.Context, key string, window time.Duration) (int64, error)
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Delete(ctx context.Context, key string) error
}
