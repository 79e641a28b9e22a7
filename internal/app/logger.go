package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/healthtrack-backend/internal/config"
)

// NewLogger creates the process logger on os.Stderr, tags every record with
// the application name and environment, and installs it as slog's default.
//
// Format "json" produces structured JSON output; anything else produces
// text with source locations. Level is one of debug, info, warn, error
// (case-insensitive) and defaults to info.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := newLogger(os.Stderr, cfg.Log).With(
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	json := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !json,
	}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
