package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type FallbackResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Fallback is where the gateway sends callers while the task API is
// unavailable.
func Fallback(now func() time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusServiceUnavailable, FallbackResponse{
			Message:   "Task service is temporarily unavailable",
			Timestamp: now().UTC(),
		})
	}
}
