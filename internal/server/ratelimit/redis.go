// Package ratelimit throttles login attempts with a fixed-window counter
// kept in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/common"
	"github.com/redis/go-redis/v9"
)

// hitScript increments the window counter and starts the window on the
// first hit. It returns the count and the remaining window in ms.
var hitScript = redis.NewScript(`
	local n = redis.call('INCR', KEYS[1])
	if n == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return { n, redis.call('PTTL', KEYS[1]) }
`)

// Client is the part of *redis.Client the limiter uses.
type Client interface {
	redis.Scripter
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisLimiter allows Limit hits per key within Window.
type RedisLimiter struct {
	rdb    Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(rdb Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	if prefix == "" {
		prefix = "sharedlists:login"
	}
	return &RedisLimiter{rdb: rdb, prefix: prefix, limit: limit, window: window}
}

// Allow records one attempt for key and reports whether it is within the
// limit. Redis failures are returned wrapped in common.ErrUnavailable.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	res, err := hitScript.Run(ctx, l.rdb, []string{l.key(key)}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return false, fmt.Errorf("%w: rate limiter: %v", common.ErrUnavailable, err)
	}
	if len(res) == 0 {
		return false, fmt.Errorf("%w: rate limiter: empty script result", common.ErrUnavailable)
	}
	return res[0] <= int64(l.limit), nil
}

// Reset clears the counter for key, e.g. after a successful login.
func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.rdb.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", common.ErrUnavailable, err)
	}
	return nil
}

func (l *RedisLimiter) key(key string) string {
	return l.prefix + ":" + key
}
