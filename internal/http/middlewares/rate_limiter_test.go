package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"task-service.com/task-service/internal/ratelimit"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func serve(e *echo.Echo, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func newEcho(limiter ratelimit.Limiter) *echo.Echo {
	e := echo.New()
	e.Use(RateLimiter(limiter, slog.New(slog.NewTextHandler(io.Discard, nil))))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	return e
}

func TestRateLimiter(t *testing.T) {
	e := newEcho(ratelimit.NewMemoryLimiter(ratelimit.PerMinute(2), nil))

	assert.Equal(t, http.StatusOK, serve(e, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, serve(e, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, serve(e, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, serve(e, "10.0.0.2:1234"))
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	e := newEcho(failingLimiter{})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(e, "10.0.0.1:1234"))
	}
}
