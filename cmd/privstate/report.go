package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/isseis/go-setuid-probe/internal/config"
	"github.com/isseis/go-setuid-probe/internal/executable"
	"github.com/isseis/go-setuid-probe/internal/privstate"
	"github.com/isseis/go-setuid-probe/internal/secureexec"
)

// report is the renderable form of one privilege evaluation.
type report struct {
	RunID  string `json:"run_id"`
	State  string `json:"state"`
	Reason string `json:"reason"`

	RealUID  int `json:"real_uid"`
	EffUID   int `json:"effective_uid"`
	SavedUID int `json:"saved_uid"`
	RealGID  int `json:"real_gid"`
	EffGID   int `json:"effective_gid"`
	SavedGID int `json:"saved_gid"`

	// SecureExecution is nil when the platform offers no flag.
	SecureExecution *bool `json:"secure_execution,omitempty"`

	Executable *executableReport `json:"executable,omitempty"`
}

type executableReport struct {
	Path        string `json:"path"`
	SetuidBit   bool   `json:"setuid_bit"`
	SetgidBit   bool   `json:"setgid_bit"`
	OwnerUID    uint32 `json:"owner_uid"`
	OwnedByRoot bool   `json:"owned_by_root"`
	LibcBackend string `json:"libc_backend"`
}

// buildReport assembles the report. Failures of the auxiliary diagnostics
// (secure-execution flag, executable inspection) degrade to omitted fields
// with a log record; they never fail the evaluation itself.
func buildReport(runID string, eval privstate.Evaluation, checkExecutable bool, logger *slog.Logger) *report {
	snap := eval.Snapshot
	rep := &report{
		RunID:    runID,
		State:    eval.State.String(),
		Reason:   eval.Reason,
		RealUID:  snap.RUID,
		EffUID:   snap.EUID,
		SavedUID: snap.SUID,
		RealGID:  snap.RGID,
		EffGID:   snap.EGID,
		SavedGID: snap.SGID,
	}

	if secure, err := secureexec.Active(); err != nil {
		logger.Debug("Secure-execution flag unavailable", "error", err)
	} else {
		rep.SecureExecution = &secure
	}

	if checkExecutable {
		rep.Executable = inspectExecutable(logger)
	}

	return rep
}

func inspectExecutable(logger *slog.Logger) *executableReport {
	info, err := executable.Inspect()
	if err != nil {
		logger.Warn("Executable inspection failed", "error", err)
		return nil
	}

	backend, err := executable.DetectLibcBackend(info.Path)
	if err != nil {
		logger.Debug("Libc backend detection failed", "path", info.Path, "error", err)
		backend = executable.BackendUnknown
	}

	return &executableReport{
		Path:        info.Path,
		SetuidBit:   info.SetuidBit,
		SetgidBit:   info.SetgidBit,
		OwnerUID:    info.OwnerUID,
		OwnedByRoot: info.OwnedByRoot,
		LibcBackend: string(backend),
	}
}

func (r *report) render(w io.Writer, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatText:
		return r.renderText(w)
	default:
		return fmt.Errorf("%w: %s", config.ErrUnknownFormat, format)
	}
}

func (r *report) renderText(w io.Writer) error {
	var err error
	write := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	write("state:          %s\n", r.State)
	write("reason:         %s\n", r.Reason)
	write("uid (r/e/s):    %d/%d/%d\n", r.RealUID, r.EffUID, r.SavedUID)
	write("gid (r/e/s):    %d/%d/%d\n", r.RealGID, r.EffGID, r.SavedGID)
	if r.SecureExecution != nil {
		write("secure exec:    %t\n", *r.SecureExecution)
	}
	if r.Executable != nil {
		write("executable:     %s\n", r.Executable.Path)
		write("  setuid bit:   %t\n", r.Executable.SetuidBit)
		write("  setgid bit:   %t\n", r.Executable.SetgidBit)
		write("  owner uid:    %d\n", r.Executable.OwnerUID)
		write("  libc backend: %s\n", r.Executable.LibcBackend)
	}
	write("run id:         %s\n", r.RunID)
	return err
}
