// Package logging provides structured logging utilities for csemver tools.
//
// It wraps the standard library slog package with shared defaults so every
// command logs the same way: JSON records to stderr, module and version
// context on every record, LOG_LEVEL environment configuration, and source
// locations on debug output.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("csemver", version)
//
//	    slog.Info("parsing input", "kind", "csemver")
//	    slog.Error("parse failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("csemver", "v1.0.0", "debug")
//	logger.Debug("decoded ordered value", "ordered", o)
//
// Log levels (case-insensitive): DEBUG, INFO (default), WARN/WARNING,
// ERROR. The LOG_LEVEL environment variable controls the level when no
// explicit one is given:
//
//	LOG_LEVEL=debug csemver decode 800010800340005
//
// All records are JSON to stderr, leaving stdout to the serialized command
// output:
//
//	{"time":"2026-01-15T10:30:00.123Z","level":"INFO","msg":"parsed",
//	 "module":"csemver","version":"v1.0.0","kind":"ci"}
package logging
