//go:build unix

package executable

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect_TestBinary(t *testing.T) {
	info, err := Inspect()
	require.NoError(t, err)

	assert.NotEmpty(t, info.Path)

	// The test binary is freshly built and never installed setuid.
	assert.False(t, info.SetuidBit)
	assert.False(t, info.SetgidBit)

	assert.Equal(t, uint32(os.Getuid()), info.OwnerUID) //nolint:gosec // test uid fits in uint32
	assert.Equal(t, os.Getuid() == 0, info.OwnedByRoot)
}

func TestInspect_SetuidBitOnFile(t *testing.T) {
	// Inspect only reads the running executable, so exercise the mode
	// decoding path that Inspect relies on against a temp file.
	f, err := os.CreateTemp(t.TempDir(), "probe")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, os.Chmod(f.Name(), 0o755|os.ModeSetuid))

	fi, err := os.Stat(f.Name())
	require.NoError(t, err)

	assert.True(t, fi.Mode()&os.ModeSetuid != 0)

	uid, ok := fileOwner(fi)
	require.True(t, ok)
	assert.Equal(t, uint32(os.Getuid()), uid) //nolint:gosec // test uid fits in uint32
}
