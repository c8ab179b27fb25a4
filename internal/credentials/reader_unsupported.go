//go:build !linux

package credentials

// unsupportedReader is used on platforms without a real/effective/saved
// credential model (Windows) or without a saved-ID query (Darwin).
type unsupportedReader struct{}

func newPlatformReader() Reader {
	return unsupportedReader{}
}

func (unsupportedReader) Read() (Snapshot, error) {
	return Snapshot{}, ErrPlatformUnsupported
}
