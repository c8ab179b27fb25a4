// Package main implements the probe that asserts it is running with
// elevated privileges. Installed setuid-root (mode 4xxx, owner root) and
// invoked by any user, or invoked directly by root, it exits 0; in every
// other configuration it exits non-zero.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/isseis/go-setuid-probe/internal/cmdcommon"
	"github.com/isseis/go-setuid-probe/internal/harness"
	"github.com/isseis/go-setuid-probe/internal/logging"
)

var (
	logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	version  = flag.Bool("version", false, "print version and exit")
)

func main() {
	// Generate run ID early for error handling
	runID := logging.GenerateRunID()

	if err := run(runID); err != nil {
		if !errors.Is(err, harness.ErrAssertionMismatch) {
			logging.HandlePreExecutionError(logging.ErrorTypeSystemError, err.Error(), "expect-privileged", runID)
		}
		os.Exit(cmdcommon.ExitMismatch)
	}
	os.Exit(cmdcommon.ExitMatch)
}

func run(runID string) error {
	flag.Parse()

	if *version {
		fmt.Printf("expect-privileged %s\n", cmdcommon.Version)
		return nil
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		return err
	}

	logger, err := logging.Setup(logging.SetupOptions{Level: level, RunID: runID})
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	return harness.Run(harness.ExpectElevated, harness.Options{Logger: logger})
}
