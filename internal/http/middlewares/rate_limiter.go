package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"task-service.com/task-service/internal/ratelimit"
)

// RateLimiter rejects clients that exceed the limiter's window with 429.
// Clients are keyed by real IP. A failing limiter lets the request through.
func RateLimiter(limiter ratelimit.Limiter, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			allowed, err := limiter.Allow(ctx, c.RealIP())
			if err != nil {
				logger.WarnContext(ctx, "rate limiter unavailable", "error", err)
				return next(c)
			}

			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
