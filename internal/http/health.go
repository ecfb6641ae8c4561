package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Status  string            `json:"status"`
	Details map[string]string `json:"details"`
}

type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, HealthStatus{
			Status: "DOWN",
			Details: map[string]string{
				"database": "Disconnected",
				"error":    err.Error(),
			},
		})
	}

	return c.JSON(http.StatusOK, HealthStatus{
		Status: "UP",
		Details: map[string]string{
			"database": "Connected",
			"service":  "Task Service is operational",
		},
	})
}
