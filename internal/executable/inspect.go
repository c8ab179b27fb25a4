// Package executable inspects the running probe binary itself: whether the
// installed file carries the setuid bit and root ownership, and which C
// library the binary is linked against. File-system state is a cross-check
// for diagnostics; the privilege classification proper is always derived
// from kernel-reported credentials, never from these file properties.
package executable

import (
	"errors"
	"fmt"
	"os"
)

// ErrOwnershipUnavailable is returned when the platform does not expose
// file ownership through os.FileInfo.
var ErrOwnershipUnavailable = errors.New("file ownership information unavailable")

// Info describes the on-disk state of the running executable.
type Info struct {
	Path        string
	SetuidBit   bool
	SetgidBit   bool
	OwnerUID    uint32
	OwnedByRoot bool
}

// Inspect stats the current executable and reports its setuid/setgid bits
// and ownership. A root-owned setuid file is the administrative
// precondition for the elevated probe to observe effective uid 0.
func Inspect() (Info, error) {
	path, err := os.Executable()
	if err != nil {
		return Info{}, fmt.Errorf("failed to resolve executable path: %w", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to stat executable %s: %w", path, err)
	}

	info := Info{
		Path:      path,
		SetuidBit: fi.Mode()&os.ModeSetuid != 0,
		SetgidBit: fi.Mode()&os.ModeSetgid != 0,
	}

	uid, ok := fileOwner(fi)
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrOwnershipUnavailable, path)
	}
	info.OwnerUID = uid
	info.OwnedByRoot = uid == 0

	return info, nil
}
