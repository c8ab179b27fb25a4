package privstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/isseis/go-setuid-probe/internal/credentials"
)

func TestClassify_SetuidRootInvokedByUser(t *testing.T) {
	// A setuid-root executable started by an unprivileged user.
	snap := credentials.Snapshot{RUID: 1000, EUID: 0, SUID: 0}
	assert.Equal(t, Elevated, Classify(snap))
}

func TestClassify_PlainBinaryUnprivilegedUser(t *testing.T) {
	snap := credentials.Snapshot{RUID: 1000, EUID: 1000, SUID: 1000}
	assert.Equal(t, NotElevated, Classify(snap))
}

func TestClassify_RootRunningPlainBinary(t *testing.T) {
	// Root running a non-setuid binary is still privileged.
	snap := credentials.Snapshot{RUID: 0, EUID: 0, SUID: 0}
	assert.Equal(t, Elevated, Classify(snap))
}

func TestClassify_RootEffectiveAlwaysElevated(t *testing.T) {
	// Any snapshot with effective uid 0 is elevated, regardless of the
	// real and saved values.
	for _, ruid := range []int{0, 1, 999, 1000, 65534} {
		for _, suid := range []int{0, 1000, 65534} {
			snap := credentials.Snapshot{RUID: ruid, EUID: 0, SUID: suid}
			assert.Equal(t, Elevated, Classify(snap),
				"ruid=%d suid=%d", ruid, suid)
		}
	}
}

func TestClassify_MatchedNonRootNeverElevated(t *testing.T) {
	for _, uid := range []int{1, 500, 1000, 65534} {
		for _, suid := range []int{0, uid, 65534} {
			snap := credentials.Snapshot{RUID: uid, EUID: uid, SUID: suid}
			assert.Equal(t, NotElevated, Classify(snap),
				"uid=%d suid=%d", uid, suid)
		}
	}
}

func TestClassify_MismatchedNonRootElevated(t *testing.T) {
	// Setuid to a non-root but distinct account.
	cases := []credentials.Snapshot{
		{RUID: 1000, EUID: 33, SUID: 33},
		{RUID: 0, EUID: 65534, SUID: 65534},
		{RUID: 500, EUID: 501, SUID: 501},
	}
	for _, snap := range cases {
		assert.Equal(t, Elevated, Classify(snap), "snapshot %+v", snap)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	snap := credentials.Snapshot{RUID: 1000, EUID: 0, SUID: 0}
	first := Classify(snap)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify(snap))
	}
}

func TestClassify_GroupIDsDoNotParticipate(t *testing.T) {
	base := credentials.Snapshot{RUID: 1000, EUID: 1000, SUID: 1000}
	withGroups := base
	withGroups.RGID, withGroups.EGID, withGroups.SGID = 1000, 0, 0

	assert.Equal(t, Classify(base), Classify(withGroups))
}

func TestEvaluate_Reasons(t *testing.T) {
	tests := []struct {
		name      string
		snap      credentials.Snapshot
		wantState State
		wantWords string
	}{
		{
			name:      "effective root",
			snap:      credentials.Snapshot{RUID: 1000, EUID: 0, SUID: 0},
			wantState: Elevated,
			wantWords: "effective uid is root (real uid 1000)",
		},
		{
			name:      "mismatched non-root",
			snap:      credentials.Snapshot{RUID: 1000, EUID: 33, SUID: 33},
			wantState: Elevated,
			wantWords: "effective uid 33 differs from real uid 1000",
		},
		{
			name:      "matched non-root",
			snap:      credentials.Snapshot{RUID: 1000, EUID: 1000, SUID: 1000},
			wantState: NotElevated,
			wantWords: "effective uid 1000 matches real uid and is not root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := Evaluate(tt.snap)
			assert.Equal(t, tt.wantState, eval.State)
			assert.Equal(t, tt.wantWords, eval.Reason)
			assert.Equal(t, tt.snap, eval.Snapshot)
		})
	}
}

func TestEvaluate_AgreesWithClassify(t *testing.T) {
	for _, ruid := range []int{0, 33, 1000} {
		for _, euid := range []int{0, 33, 1000} {
			snap := credentials.Snapshot{RUID: ruid, EUID: euid, SUID: euid}
			assert.Equal(t, Classify(snap), Evaluate(snap).State,
				"ruid=%d euid=%d", ruid, euid)
		}
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "elevated", Elevated.String())
	assert.Equal(t, "not_elevated", NotElevated.String())
}
