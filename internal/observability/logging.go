// Package observability constructs the tool's diagnostic logger. Report
// output goes to stdout through the formatters; the logger carries warnings
// and debug detail on stderr so reports stay clean for piping.
package observability

import (
	"log/slog"
	"os"

	"github.com/skycast/skycast/internal/config"
)

// NewLogger builds a slog.Logger per the configured level and format.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
