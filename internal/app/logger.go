package app

import (
	"io"
	"log/slog"
)

// fallbackLevel applies when the configured level is empty or unknown. It
// matches the CLI default so a bare run stays quiet on stderr.
const fallbackLevel = slog.LevelWarn

// parseLevel accepts the slog level names ("debug", "info", "warn",
// "error", case-insensitive, with optional offsets like "warn+2").
func parseLevel(levelStr string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		return fallbackLevel, err
	}
	return level, nil
}

// newLogger builds the run's logger writing to logW. It does not touch the
// global logger, so tests can run apps side by side.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	level, err := parseLevel(levelStr)

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(logW, opts)
	} else {
		handler = slog.NewTextHandler(logW, opts)
	}

	logger := slog.New(handler)
	if err != nil {
		logger.Warn("Unknown log level, using fallback.", "level", levelStr, "fallback", fallbackLevel.String())
	}
	return logger
}
