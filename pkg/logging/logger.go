package logging

import (
	"log"
	"log/slog"
	"os"
	"strings"
)

// logLevelEnvVar controls the default log level when no explicit level is
// provided.
const logLevelEnvVar = "LOG_LEVEL"

// ParseLevel converts a textual log level into a slog.Level. Matching is
// case-insensitive and "warning" is accepted as an alias for "warn". An
// empty string falls back to the LOG_LEVEL environment variable; anything
// unrecognized resolves to Info.
func ParseLevel(level string) slog.Level {
	if strings.TrimSpace(level) == "" {
		level = os.Getenv(logLevelEnvVar)
	}
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// NewStructuredLogger creates a JSON logger writing to stderr with module
// and version attached to every record. Debug-level loggers also record
// source locations.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(handler).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs a structured logger as the slog
// default, with the level taken from the LOG_LEVEL environment variable.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, "")
}

// SetDefaultStructuredLoggerWithLevel installs a structured logger as the
// slog default at an explicit level.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// NewLogLogger bridges the structured default handler into a standard
// library *log.Logger for APIs that require one.
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(handler, level)
}
