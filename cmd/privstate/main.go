// Package main implements privstate, a diagnostic tool that prints the
// full privilege evaluation of the current process: both credential
// triples, the classified state and its reason, the kernel's
// secure-execution flag, and the on-disk state of the binary itself
// (setuid bit, ownership, libc backend). The probe executables assert;
// privstate explains.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/isseis/go-setuid-probe/internal/cmdcommon"
	"github.com/isseis/go-setuid-probe/internal/config"
	"github.com/isseis/go-setuid-probe/internal/credentials"
	"github.com/isseis/go-setuid-probe/internal/harness"
	"github.com/isseis/go-setuid-probe/internal/logging"
	"github.com/isseis/go-setuid-probe/internal/privstate"
)

// ErrUnknownExpectation is returned for an unrecognized -expect value.
var ErrUnknownExpectation = errors.New("unknown expectation")

var (
	configPath = flag.String("config", "", "path to TOML config file (optional)")
	logLevel   = flag.String("log-level", "", "log level (debug, info, warn, error); overrides config")
	format     = flag.String("format", "", "output format (text, json); overrides config")
	expect     = flag.String("expect", "", "assert a state (elevated, not_elevated) and set the exit code accordingly")
	version    = flag.Bool("version", false, "print version and exit")
)

func main() {
	// Generate run ID early for error handling
	runID := logging.GenerateRunID()

	if err := run(runID); err != nil {
		reportFailure(err, runID)
		os.Exit(cmdcommon.ExitMismatch)
	}
	os.Exit(cmdcommon.ExitMatch)
}

// reportFailure routes pre-execution errors through the structured
// reporter; an assertion mismatch has already been logged before it is
// returned from run.
func reportFailure(err error, runID string) {
	if errors.Is(err, harness.ErrAssertionMismatch) {
		return
	}
	var preExecErr *logging.PreExecutionError
	if errors.As(err, &preExecErr) {
		logging.HandlePreExecutionError(preExecErr.Type, preExecErr.Message, preExecErr.Component, runID)
		return
	}
	logging.HandlePreExecutionError(logging.ErrorTypeSystemError, err.Error(), "privstate", runID)
}

// loadConfig merges the optional config file with flag overrides; flags win.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *format != "" {
		cfg.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseExpectation(value string) (harness.Expectation, error) {
	switch value {
	case string(harness.ExpectElevated):
		return harness.ExpectElevated, nil
	case string(harness.ExpectNotElevated):
		return harness.ExpectNotElevated, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownExpectation, value)
	}
}

func run(runID string) error {
	flag.Parse()

	if *version {
		fmt.Printf("privstate %s\n", cmdcommon.Version)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return &logging.PreExecutionError{
			Type:      logging.ErrorTypeConfigParsing,
			Message:   "failed to load configuration",
			Component: "config",
			RunID:     runID,
			Err:       err,
		}
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	logger, err := logging.Setup(logging.SetupOptions{Level: level, RunID: runID})
	if err != nil {
		return &logging.PreExecutionError{
			Type:      logging.ErrorTypeLogSetup,
			Message:   "failed to setup logger",
			Component: "logging",
			RunID:     runID,
			Err:       err,
		}
	}

	snap, err := credentials.NewReader().Read()
	if err != nil {
		return &logging.PreExecutionError{
			Type:      logging.ErrorTypeCredentialQuery,
			Message:   err.Error(),
			Component: "credentials",
			RunID:     runID,
			Err:       err,
		}
	}

	eval := privstate.Evaluate(snap)
	rep := buildReport(runID, eval, cfg.CheckExecutable, logger)

	if err := rep.render(os.Stdout, cfg.Format); err != nil {
		return err
	}

	if *expect != "" {
		expectation, err := parseExpectation(*expect)
		if err != nil {
			return err
		}
		if eval.State != privstate.State(expectation) {
			logger.Error("Privilege state assertion failed",
				"expected", string(expectation),
				"actual", eval.State.String(),
				"reason", eval.Reason,
			)
			return fmt.Errorf("%w: expected %s, got %s", harness.ErrAssertionMismatch, expectation, eval.State)
		}
	}
	return nil
}
