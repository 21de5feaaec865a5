package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore counts hits in Redis so multiple replicas share one
// budget. Counters live under a key per (prefix, caller key) pair and
// expire with the window.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing Redis client. The prefix namespaces
// this service's counters within a shared instance.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Incr implements Store. INCR and the initial EXPIRE run in one
// pipeline; EXPIRE NX only arms the TTL on the first hit of a window so
// later hits cannot extend it.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	rkey := fmt.Sprintf("%s:%s", s.prefix, key)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, rkey)
	pipe.ExpireNX(ctx, rkey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, fmt.Errorf("ratelimit: redis incr: %w", err)
	}

	ttl, err := s.client.PTTL(ctx, rkey).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("ratelimit: redis pttl: %w", err)
	}
	if ttl < 0 {
		// Key exists without a TTL (e.g. EXPIRE was lost); re-arm it so
		// the counter cannot live forever.
		ttl = window
		s.client.Expire(ctx, rkey, window)
	}

	return incr.Val(), time.Now().Add(ttl), nil
}
