// Package credentials reads the calling process's user and group
// credential triples (real, effective, saved) and normalizes them into a
// single snapshot. All backend-specific query mechanics live here so that
// consumers see identical snapshots whether the binary performs the query
// through the C library (glibc or musl) or through raw kernel syscalls.
package credentials

// Snapshot holds the process credentials captured by a single query.
// It is a plain value: callers must not cache it across privilege-sensitive
// decisions and should obtain a fresh one at each decision point.
type Snapshot struct {
	// User identifiers
	RUID int // real: the user who launched the process
	EUID int // effective: the identity the kernel authorizes against
	SUID int // saved: preserved across seteuid round trips

	// Group identifiers
	RGID int
	EGID int
	SGID int
}

// Reader queries the operating system for the current process credentials.
type Reader interface {
	// Read captures both credential triples at one instant. It must not
	// mutate process state. Failures are returned as *QueryError and are
	// never retried internally.
	Read() (Snapshot, error)
}

// NewReader returns the credential reader for the current platform and
// build configuration.
func NewReader() Reader {
	return newPlatformReader()
}
