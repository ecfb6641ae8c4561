package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the JSON logger used across the service and installs it
// as the slog default.
func NewLogger(level string, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLogLevel(level)})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
