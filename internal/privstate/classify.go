package privstate

import (
	"fmt"

	"github.com/isseis/go-setuid-probe/internal/credentials"
)

// Evaluation pairs the classified state with the snapshot it was derived
// from and a human-diagnosable reason naming the rule that fired. The
// saved IDs travel along for diagnostics only; they never influence the
// decision.
type Evaluation struct {
	State    State
	Reason   string
	Snapshot credentials.Snapshot
}

// Classify maps a credential snapshot to a privilege state.
//
// Decision table, in order:
//  1. effective UID 0 is elevated regardless of the real identity. This
//     covers both a setuid-root binary run by an unprivileged user and a
//     plain binary run by root; a root-invoked process is privileged
//     whether or not setuid was involved.
//  2. an effective UID differing from the real UID is elevated even when
//     non-root (setuid to some other privileged account).
//  3. everything else is not elevated.
func Classify(snap credentials.Snapshot) State {
	if snap.EUID == 0 {
		return Elevated
	}
	if snap.EUID != snap.RUID {
		return Elevated
	}
	return NotElevated
}

// Evaluate classifies the snapshot and records which rule produced the
// verdict.
func Evaluate(snap credentials.Snapshot) Evaluation {
	switch {
	case snap.EUID == 0:
		return Evaluation{
			State:    Elevated,
			Reason:   fmt.Sprintf("effective uid is root (real uid %d)", snap.RUID),
			Snapshot: snap,
		}
	case snap.EUID != snap.RUID:
		return Evaluation{
			State:    Elevated,
			Reason:   fmt.Sprintf("effective uid %d differs from real uid %d", snap.EUID, snap.RUID),
			Snapshot: snap,
		}
	default:
		return Evaluation{
			State:    NotElevated,
			Reason:   fmt.Sprintf("effective uid %d matches real uid and is not root", snap.EUID),
			Snapshot: snap,
		}
	}
}
