package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"  Error  ", slog.LevelError},
		{"nope", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseLevelEnvFallback(t *testing.T) {
	t.Setenv(logLevelEnvVar, "debug")
	if got := ParseLevel(""); got != slog.LevelDebug {
		t.Errorf("ParseLevel(\"\") with LOG_LEVEL=debug = %v, want debug", got)
	}

	t.Setenv(logLevelEnvVar, "")
	if got := ParseLevel(""); got != slog.LevelInfo {
		t.Errorf("ParseLevel(\"\") with empty LOG_LEVEL = %v, want info", got)
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("csemver", "v1.2.3", "warn")
	if logger == nil {
		t.Fatal("NewStructuredLogger returned nil")
	}
	if logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !logger.Enabled(t.Context(), slog.LevelWarn) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestNewLogLogger(t *testing.T) {
	if NewLogLogger(slog.LevelInfo, false) == nil {
		t.Fatal("NewLogLogger returned nil")
	}
}
