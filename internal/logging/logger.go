package logging

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide JSON logger. Debug level is enabled
// outside production.
func NewLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" || env == "development" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler)
}
