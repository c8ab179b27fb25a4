// Package secureexec reports the kernel's own secure-execution verdict for
// the running process. On Linux this is the AT_SECURE auxiliary vector
// entry the dynamic linker consults before honoring environment variables
// like LD_PRELOAD; on the BSD family it is issetugid(2). The flag is a
// diagnostic cross-check beside the credential classifier, not a
// replacement for it: AT_SECURE also covers setgid and file-capability
// cases the UID triple alone cannot see.
package secureexec

import "errors"

// ErrUnsupported is returned on platforms without a queryable
// secure-execution flag.
var ErrUnsupported = errors.New("secure-execution flag not available on this platform")

// Active reports whether the kernel flagged this process for secure
// execution.
func Active() (bool, error) {
	return platformActive()
}
