// Package logging provides the probes' logging setup on top of slog:
// per-run identifiers, interactive and non-interactive handlers, and
// reporting for errors that occur before the classification runs.
package logging

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"
)

// GenerateRunID returns a ULID correlating all log records of one probe run.
// ULIDs sort lexicographically by creation time, which keeps aggregated
// logs from repeated probe invocations in order.
func GenerateRunID() string {
	return ulid.Make().String()
}

// ParseLevel converts a textual log level into a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %s", ErrInvalidLogLevel, level)
	}
}
