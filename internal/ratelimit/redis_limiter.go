package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter shares windows between replicas. Each window is one counter
// key that expires with the window.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	rule   Rule
	now    func() time.Time
}

func NewRedisLimiter(client rueidis.Client, prefix string, rule Rule) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		rule:   rule,
		now:    time.Now,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := r.windowKey(key)

	count, err := r.client.Do(ctx, r.client.B().Incr().Key(windowKey).Build()).AsInt64()
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", windowKey, err)
	}

	if count == 1 {
		ttl := int64(r.rule.Window / time.Second)
		if ttl < 1 {
			ttl = 1
		}
		cmd := r.client.B().Expire().Key(windowKey).Seconds(ttl).Build()
		if err := r.client.Do(ctx, cmd).Error(); err != nil {
			return false, fmt.Errorf("expire %s: %w", windowKey, err)
		}
	}

	return count <= int64(r.rule.Limit), nil
}

func (r *RedisLimiter) windowKey(key string) string {
	window := r.now().UnixNano() / int64(r.rule.Window)
	return fmt.Sprintf("%s:%s:%d", r.prefix, key, window)
}
