package http

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "task-service.com/task-service/internal/http/middlewares"
	"task-service.com/task-service/internal/ratelimit"
)

type Deps struct {
	Tasks   *Handler
	Health  *HealthHandler
	Limiter ratelimit.Limiter
	Logger  *slog.Logger
	Now     func() time.Time
}

// Register installs the error handler, middleware chain and routes. The
// rate limiter only guards /tasks.
func Register(e *echo.Echo, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}

	e.HTTPErrorHandler = ErrorHandler(d.Logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Logger))

	e.GET("/health", d.Health.Health)
	e.GET("/fallback/task-service", Fallback(d.Now))

	tasks := e.Group("/tasks")
	if d.Limiter != nil {
		tasks.Use(middleware.RateLimiter(d.Limiter, d.Logger))
	}

	tasks.GET("", d.Tasks.ListTasks)
	tasks.POST("", d.Tasks.CreateTask)
	tasks.GET("/filter/status", d.Tasks.TasksByStatus)
	tasks.GET("/filter/priority", d.Tasks.TasksByPriority)
	tasks.GET("/filter", d.Tasks.FilterTasks)
	tasks.GET("/overdue", d.Tasks.OverdueTasks)
	tasks.GET("/stats/count", d.Tasks.CountByStatus)
	tasks.GET("/:id", d.Tasks.GetTask)
	tasks.PUT("/:id", d.Tasks.UpdateTask)
	tasks.PATCH("/:id/status", d.Tasks.UpdateTaskStatus)
	tasks.DELETE("/:id", d.Tasks.DeleteTask)
	tasks.GET("/:id/belongs-to-user", d.Tasks.BelongsToUser)
}
