package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-service.com/task-service/internal/testutils"
)

func TestMemoryLimiter_Allow(t *testing.T) {
	clock := testutils.NewClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	limiter := NewMemoryLimiter(Rule{Limit: 2, Window: time.Minute}, clock.Now)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, _ := limiter.Allow(ctx, "10.0.0.1")
	assert.False(t, ok, "third hit in the window is rejected")

	ok, _ = limiter.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "keys are independent")

	clock.Advance(time.Minute)
	ok, _ = limiter.Allow(ctx, "10.0.0.1")
	assert.True(t, ok, "new window resets the count")
}

func TestMemoryLimiter_SweepsExpiredBuckets(t *testing.T) {
	clock := testutils.NewClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	limiter := NewMemoryLimiter(PerMinute(5), clock.Now)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := limiter.Allow(ctx, fmt.Sprintf("client-%d", i))
		require.NoError(t, err)
	}
	assert.Equal(t, 10, limiter.size())

	clock.Advance(2 * time.Minute)
	_, err := limiter.Allow(ctx, "client-new")
	require.NoError(t, err)
	assert.Equal(t, 1, limiter.size())
}

func TestMemoryLimiter_Concurrent(t *testing.T) {
	limiter := NewMemoryLimiter(PerMinute(50), nil)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := limiter.Allow(ctx, "shared")
			if err == nil && ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
