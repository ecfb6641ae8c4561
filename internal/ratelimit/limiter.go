package ratelimit

import (
	"context"
	"time"
)

// Limiter counts hits per key in fixed windows.
type Limiter interface {
	// Allow records one hit for key and reports whether it fits in the
	// current window.
	Allow(ctx context.Context, key string) (bool, error)
}

type Rule struct {
	Limit  int
	Window time.Duration
}

// PerMinute is the rule the HTTP API is configured with.
func PerMinute(limit int) Rule {
	return Rule{Limit: limit, Window: time.Minute}
}
