// Package testing provides shared test utilities for credential readers.
package testing

import (
	"errors"

	"github.com/isseis/go-setuid-probe/internal/credentials"
)

// ErrMockQueryFailed simulates an operating system credential query failure.
var ErrMockQueryFailed = errors.New("mock credential query failure")

// MockReader provides a mock implementation of credentials.Reader for testing.
type MockReader struct {
	Snapshot  credentials.Snapshot
	Err       error
	ReadCalls int
}

// Read returns the configured snapshot or error and records the call.
func (m *MockReader) Read() (credentials.Snapshot, error) {
	m.ReadCalls++
	if m.Err != nil {
		return credentials.Snapshot{}, m.Err
	}
	return m.Snapshot, nil
}
