//go:build linux

package credentials

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestNewReader_Read(t *testing.T) {
	snap, err := NewReader().Read()
	require.NoError(t, err)

	assert.Equal(t, os.Getuid(), snap.RUID)
	assert.Equal(t, os.Geteuid(), snap.EUID)
	assert.Equal(t, os.Getgid(), snap.RGID)
	assert.Equal(t, os.Getegid(), snap.EGID)
}

// The active reader (libc-backed or raw-syscall, depending on how the test
// binary was built) must report exactly what the kernel reports.
func TestNewReader_MatchesKernelState(t *testing.T) {
	snap, err := NewReader().Read()
	require.NoError(t, err)

	ruid, euid, suid := unix.Getresuid()
	rgid, egid, sgid := unix.Getresgid()

	assert.Equal(t, Snapshot{
		RUID: ruid, EUID: euid, SUID: suid,
		RGID: rgid, EGID: egid, SGID: sgid,
	}, snap)
}

func TestNewReader_SavedMatchesEffectiveWithoutSetuid(t *testing.T) {
	snap, err := NewReader().Read()
	require.NoError(t, err)

	// The test binary is not installed setuid, so the saved and effective
	// identifiers must agree with the real ones.
	if snap.RUID == snap.EUID {
		assert.Equal(t, snap.EUID, snap.SUID)
	}
}

func TestNewReader_ReadsAreIndependent(t *testing.T) {
	reader := NewReader()

	first, err := reader.Read()
	require.NoError(t, err)

	second, err := reader.Read()
	require.NoError(t, err)

	// No credential-changing call happened in between.
	assert.Equal(t, first, second)
}
