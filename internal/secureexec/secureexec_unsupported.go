//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package secureexec

func platformActive() (bool, error) {
	return false, ErrUnsupported
}
