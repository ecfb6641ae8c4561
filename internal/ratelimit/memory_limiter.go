package ratelimit

import (
	"context"
	"sync"
	"time"
)

type bucket struct {
	count int
	start time.Time
}

// MemoryLimiter keeps its windows in process memory, so every replica
// enforces the limit on its own.
type MemoryLimiter struct {
	rule Rule
	now  func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func NewMemoryLimiter(rule Rule, now func() time.Time) *MemoryLimiter {
	if now == nil {
		now = time.Now
	}
	return &MemoryLimiter{
		rule:      rule,
		now:       now,
		buckets:   make(map[string]*bucket),
		lastSweep: now(),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) >= l.rule.Window {
		b = &bucket{start: now}
		l.buckets[key] = b
	}

	if b.count >= l.rule.Limit {
		return false, nil
	}

	b.count++
	return true, nil
}

// sweep drops expired buckets at most once per window. Caller holds mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.rule.Window {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.start) >= l.rule.Window {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

func (l *MemoryLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
