// Package harness runs the read-then-classify sequence and checks the
// result against an asserted expectation. It is the shared core of the two
// probe executables, which differ only in the expectation they pass in.
package harness

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/isseis/go-setuid-probe/internal/credentials"
	"github.com/isseis/go-setuid-probe/internal/privstate"
	"github.com/isseis/go-setuid-probe/internal/secureexec"
)

// ErrAssertionMismatch is returned when the classified privilege state does
// not equal the asserted expectation.
var ErrAssertionMismatch = errors.New("privilege state did not match expectation")

// Expectation is the privilege state a probe asserts.
type Expectation string

// Supported expectations
const (
	ExpectElevated    Expectation = "elevated"
	ExpectNotElevated Expectation = "not_elevated"
)

func (e Expectation) want() privstate.State {
	if e == ExpectElevated {
		return privstate.Elevated
	}
	return privstate.NotElevated
}

// Options configures a harness run.
type Options struct {
	Reader credentials.Reader // defaults to credentials.NewReader()
	Logger *slog.Logger       // defaults to slog.Default()
}

// Run performs one fresh read-then-classify sequence and compares the
// result against the expectation.
//
// Credentials are re-read on every call and the evaluation is never cached
// across calls: a privilege change between two decisions must be observed
// by the later one, not papered over by a stale verdict.
//
// Reader failures propagate unchanged; classification is not attempted on
// a failed read.
func Run(expect Expectation, opts Options) error {
	reader := opts.Reader
	if reader == nil {
		reader = credentials.NewReader()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	snap, err := reader.Read()
	if err != nil {
		logger.Error("Credential query failed", "error", err)
		return fmt.Errorf("credential query failed: %w", err)
	}

	eval := privstate.Evaluate(snap)

	logger.Info("Privilege state classified",
		"state", eval.State.String(),
		"reason", eval.Reason,
		"real_uid", snap.RUID,
		"effective_uid", snap.EUID,
		"saved_uid", snap.SUID,
		"real_gid", snap.RGID,
		"effective_gid", snap.EGID,
		"saved_gid", snap.SGID,
	)

	logSecureExecutionFlag(logger, eval)

	if eval.State != expect.want() {
		logger.Error("Privilege state assertion failed",
			"expected", expect.want().String(),
			"actual", eval.State.String(),
			"reason", eval.Reason,
		)
		return fmt.Errorf("%w: expected %s, got %s (%s)",
			ErrAssertionMismatch, expect.want(), eval.State, eval.Reason)
	}

	logger.Info("Privilege state assertion passed", "state", eval.State.String())
	return nil
}

// logSecureExecutionFlag records the kernel's secure-execution verdict as a
// diagnostic cross-check. The flag also covers setgid and file-capability
// elevation the UID triple cannot see, so a secure process classified as
// not elevated deserves a warning rather than silence.
func logSecureExecutionFlag(logger *slog.Logger, eval privstate.Evaluation) {
	secure, err := secureexec.Active()
	if err != nil {
		logger.Debug("Secure-execution flag unavailable", "error", err)
		return
	}

	logger.Debug("Secure-execution flag read", "secure", secure)

	if secure && eval.State == privstate.NotElevated {
		logger.Warn("Kernel reports secure execution but credentials classify as not elevated; "+
			"the process may hold setgid or file-capability privileges",
			"state", eval.State.String())
	}
}
