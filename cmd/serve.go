package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	config "task-service.com/task-service/internal/configs"
	httpapi "task-service.com/task-service/internal/http"
	"task-service.com/task-service/internal/migrations"
	"task-service.com/task-service/internal/ratelimit"
	repository "task-service.com/task-service/internal/repositories"
	"task-service.com/task-service/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Migrates the database and serves the task API until SIGINT or SIGTERM",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := config.NewLogger(cfg.LogLevel, os.Stdout)

		database, err := config.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseDSN, cfg.DatabaseDebug)
		if err != nil {
			return err
		}
		defer func() {
			if err := config.CloseDatabase(database); err != nil {
				logger.Error("close database", "error", err)
			}
		}()

		sqlDB, err := database.DB()
		if err != nil {
			return fmt.Errorf("db handle: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := migrations.Run(ctx, sqlDB, cfg.DatabaseDriver, migrations.Up); err != nil {
			return err
		}

		limiter, closeLimiter, err := newLimiter(cfg)
		if err != nil {
			return err
		}
		defer closeLimiter()

		taskRepo := repository.NewTaskRepository(database)
		breaker := services.NewBreaker("taskService", services.BreakerSettings{
			FailureThreshold: uint32(cfg.BreakerFailureThreshold),
			OpenTimeout:      cfg.BreakerOpenTimeout(),
		}, logger)
		taskService := services.NewTaskService(taskRepo,
			services.WithLogger(logger),
			services.WithBreaker(breaker))

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true

		httpapi.Register(e, httpapi.Deps{
			Tasks:   httpapi.NewHandler(taskService),
			Health:  httpapi.NewHealthHandler(taskRepo),
			Limiter: limiter,
			Logger:  logger,
		})

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			logger.Info("HTTP server listening", "addr", cfg.AppURL, "driver", cfg.DatabaseDriver)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			<-gctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
			defer cancel()

			if err := e.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			logger.Info("HTTP server shut down gracefully")
			return nil
		})

		return g.Wait()
	},
}

// newLimiter picks the rate limit backend. The returned func releases
// whatever the backend holds open.
func newLimiter(cfg config.Config) (ratelimit.Limiter, func(), error) {
	rule := ratelimit.PerMinute(cfg.RateLimit)

	if cfg.RateLimitBackend != config.RateLimitRedis {
		return ratelimit.NewMemoryLimiter(rule, nil), func() {}, nil
	}

	client, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("rate limiting through redis", "addr", cfg.RedisAddr)
	return ratelimit.NewRedisLimiter(client, cfg.RedisKeyPrefix, rule), client.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
