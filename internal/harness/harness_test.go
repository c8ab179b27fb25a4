package harness

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isseis/go-setuid-probe/internal/credentials"
	credtesting "github.com/isseis/go-setuid-probe/internal/credentials/testing"
	"github.com/isseis/go-setuid-probe/internal/privstate"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_ElevatedSnapshotMatchesElevatedExpectation(t *testing.T) {
	reader := &credtesting.MockReader{
		Snapshot: credentials.Snapshot{RUID: 1000, EUID: 0, SUID: 0},
	}

	err := Run(ExpectElevated, Options{Reader: reader, Logger: discardLogger()})
	assert.NoError(t, err)
	assert.Equal(t, 1, reader.ReadCalls)
}

func TestRun_ElevatedSnapshotFailsNotElevatedExpectation(t *testing.T) {
	reader := &credtesting.MockReader{
		Snapshot: credentials.Snapshot{RUID: 1000, EUID: 0, SUID: 0},
	}

	err := Run(ExpectNotElevated, Options{Reader: reader, Logger: discardLogger()})
	assert.ErrorIs(t, err, ErrAssertionMismatch)
}

func TestRun_UnprivilegedSnapshot(t *testing.T) {
	reader := &credtesting.MockReader{
		Snapshot: credentials.Snapshot{
			RUID: 1000, EUID: 1000, SUID: 1000,
			RGID: 1000, EGID: 1000, SGID: 1000,
		},
	}

	require.NoError(t, Run(ExpectNotElevated, Options{Reader: reader, Logger: discardLogger()}))
	assert.ErrorIs(t,
		Run(ExpectElevated, Options{Reader: reader, Logger: discardLogger()}),
		ErrAssertionMismatch)
}

func TestRun_ReaderFailurePropagates(t *testing.T) {
	reader := &credtesting.MockReader{Err: credtesting.ErrMockQueryFailed}

	err := Run(ExpectElevated, Options{Reader: reader, Logger: discardLogger()})
	require.Error(t, err)
	assert.ErrorIs(t, err, credtesting.ErrMockQueryFailed)
	assert.NotErrorIs(t, err, ErrAssertionMismatch,
		"a failed query is not an ordinary mismatch")
}

func TestRun_FreshReadPerCall(t *testing.T) {
	reader := &credtesting.MockReader{
		Snapshot: credentials.Snapshot{RUID: 1000, EUID: 1000, SUID: 1000},
	}
	opts := Options{Reader: reader, Logger: discardLogger()}

	require.NoError(t, Run(ExpectNotElevated, opts))
	require.NoError(t, Run(ExpectNotElevated, opts))
	assert.Equal(t, 2, reader.ReadCalls, "each decision re-reads credentials")
}

func TestRun_AgainstRealProcessState(t *testing.T) {
	if _, err := credentials.NewReader().Read(); errors.Is(err, credentials.ErrPlatformUnsupported) {
		t.Skip("no credential reader on this platform")
	}

	expect := ExpectNotElevated
	if os.Geteuid() == 0 {
		expect = ExpectElevated
	}

	// Default reader, real kernel state.
	assert.NoError(t, Run(expect, Options{Logger: discardLogger()}))
}

func TestExpectationWant(t *testing.T) {
	assert.Equal(t, privstate.Elevated, ExpectElevated.want())
	assert.Equal(t, privstate.NotElevated, ExpectNotElevated.want())
}

func TestRun_MismatchErrorMessage(t *testing.T) {
	reader := &credtesting.MockReader{
		Snapshot: credentials.Snapshot{RUID: 1000, EUID: 0, SUID: 0},
	}

	err := Run(ExpectNotElevated, Options{Reader: reader, Logger: discardLogger()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected not_elevated, got elevated")
	assert.True(t, errors.Is(err, ErrAssertionMismatch))
}
