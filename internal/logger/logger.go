// Package logger configures the application's slog logger.
//
// dev and test environments get colourised, human readable output from tint;
// prod and staging get JSON lines.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger creates the application logger, writing to stderr, and installs it as the slog default.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	l := NewLogger(os.Stderr, level, environment)
	slog.SetDefault(l)
	return l
}

// NewLogger creates a logger writing to w.
func NewLogger(w io.Writer, level slog.Level, environment string) *slog.Logger {
	switch environment {
	case "prod", "staging":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	default:
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    environment == "test",
		}))
	}
}

// ParseLogLevel maps a LOG_LEVEL value to a slog level. Unknown values give info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
