package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

type Config struct {
	AppURL                    string `validate:"required"`
	DatabaseDriver            string `validate:"oneof=sqlite postgres"`
	DatabaseDSN               string `validate:"required"`
	DatabaseDebug             bool
	LogLevel                  string `validate:"oneof=debug info warn error"`
	RateLimit                 int    `validate:"gt=0"`
	RateLimitBackend          string `validate:"oneof=memory redis"`
	RedisAddr                 string `validate:"required_if=RateLimitBackend redis"`
	RedisKeyPrefix            string `validate:"required"`
	BreakerFailureThreshold   int    `validate:"gt=0"`
	BreakerOpenTimeoutSeconds int    `validate:"gt=0"`
	ShutdownTimeoutSeconds    int    `validate:"gt=0"`
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

func (c Config) BreakerOpenTimeout() time.Duration {
	return time.Duration(c.BreakerOpenTimeoutSeconds) * time.Second
}

// Options controls where Load looks for settings besides the environment.
type Options struct {
	// EnvFile is loaded with godotenv when it exists. Values already present
	// in the environment win.
	EnvFile string
	// ConfigFile is an optional file viper reads (yaml, json, toml, env).
	ConfigFile string
}

func Load(opts Options) (Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", opts.ConfigFile, err)
		}
	}

	cfg := Config{
		AppURL:                    fmt.Sprintf("%s:%s", v.GetString("APP_HOST"), v.GetString("APP_PORT")),
		DatabaseDriver:            strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:               v.GetString("DATABASE_DSN"),
		DatabaseDebug:             v.GetBool("DB_DEBUG"),
		LogLevel:                  strings.ToLower(v.GetString("LOG_LEVEL")),
		RateLimit:                 v.GetInt("RATE_LIMIT_PER_MINUTE"),
		RateLimitBackend:          strings.ToLower(v.GetString("RATE_LIMIT_BACKEND")),
		RedisAddr:                 fmt.Sprintf("%s:%s", v.GetString("REDIS_HOST"), v.GetString("REDIS_PORT")),
		RedisKeyPrefix:            v.GetString("REDIS_KEY_PREFIX"),
		BreakerFailureThreshold:   v.GetInt("BREAKER_FAILURE_THRESHOLD"),
		BreakerOpenTimeoutSeconds: v.GetInt("BREAKER_OPEN_TIMEOUT_SECONDS"),
		ShutdownTimeoutSeconds:    v.GetInt("SHUTDOWN_TIMEOUT_SECONDS"),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_HOST", "127.0.0.1")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "tasks.db")
	v.SetDefault("DB_DEBUG", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.SetDefault("RATE_LIMIT_BACKEND", RateLimitMemory)
	v.SetDefault("REDIS_HOST", "127.0.0.1")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_KEY_PREFIX", "task_service:ratelimit")
	v.SetDefault("BREAKER_FAILURE_THRESHOLD", 5)
	v.SetDefault("BREAKER_OPEN_TIMEOUT_SECONDS", 30)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 20)
}

var configValidator = validator.New()

func validate(cfg Config) error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
