//go:build linux

package secureexec

import (
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
)

const (
	auxvPath = "/proc/self/auxv"

	// AT_SECURE has a nonzero value when the kernel requires the process
	// to be treated securely, most commonly because the executable was
	// set-user-ID, set-group-ID, or carried file capabilities.
	atSecure = 23

	wordSize = strconv.IntSize / 8
)

func platformActive() (bool, error) {
	data, err := os.ReadFile(auxvPath)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", auxvPath, err)
	}
	return auxvFlag(data, atSecure), nil
}

// auxvFlag scans the native-endian (type, value) word pairs of an auxiliary
// vector for the given entry type and reports whether its value is nonzero.
// An absent entry reads as zero, matching getauxval(3).
func auxvFlag(data []byte, typ uint64) bool {
	for off := 0; off+2*wordSize <= len(data); off += 2 * wordSize {
		entryType := readWord(data[off:])
		if entryType == 0 { // AT_NULL terminates the vector
			break
		}
		if entryType == typ {
			return readWord(data[off+wordSize:]) != 0
		}
	}
	return false
}

func readWord(b []byte) uint64 {
	if wordSize == 8 {
		return binary.NativeEndian.Uint64(b)
	}
	return uint64(binary.NativeEndian.Uint32(b))
}
