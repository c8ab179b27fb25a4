package credentials

import (
	"errors"
	"fmt"
)

// ErrPlatformUnsupported is returned when the platform has no notion of
// real/effective/saved credential triples.
var ErrPlatformUnsupported = errors.New("credential query not supported on this platform")

// QueryError contains detailed information about a failed credential query.
type QueryError struct {
	Call  string // the underlying call, e.g. "getresuid"
	Errno error  // the OS-reported error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("credential query %s failed: %v", e.Call, e.Errno)
}

func (e *QueryError) Unwrap() error {
	return e.Errno
}
