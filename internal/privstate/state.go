// Package privstate classifies a credential snapshot into the process's
// current privilege state. The classification is a pure function of the
// snapshot: no filesystem, environment, or configuration state participates.
package privstate

// State represents the binary privilege classification of a process.
type State string

// The closed set of privilege states. There is no "unknown" member: a
// failure to obtain credentials surfaces as an error before classification.
const (
	// Elevated means the process currently holds privileges beyond its
	// invoking user's own identity (effective root, or an effective
	// identity differing from the real one).
	Elevated State = "elevated"

	// NotElevated means the effective identity equals the real identity
	// and denotes an unprivileged account.
	NotElevated State = "not_elevated"
)

func (s State) String() string {
	return string(s)
}
