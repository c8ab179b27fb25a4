// Package cmdcommon provides common functionality for the probe
// command-line tools.
package cmdcommon

// Exit codes shared by all probe executables. The exit code is the only
// contract the surrounding test pipeline observes: zero means the
// classification matched the asserted expectation.
const (
	ExitMatch    = 0
	ExitMismatch = 1
)

// Build-time variables (set via ldflags)
var (
	Version = "dev"
)
