package executable

import (
	"bytes"
	"debug/elf"
	"fmt"
	"path"
	"strings"
)

// Backend identifies the C library an ELF binary is linked against. It
// lets an end-to-end comparison label which backend produced a given
// credential report when the glibc and musl builds are diffed against the
// same installed privilege configuration.
type Backend string

// Known backends.
const (
	BackendGlibc   Backend = "glibc"
	BackendMusl    Backend = "musl"
	BackendStatic  Backend = "static" // no program interpreter (includes pure-Go builds)
	BackendUnknown Backend = "unknown"
)

// DetectLibcBackend reads the ELF program interpreter of the binary at
// path and maps it to a C library backend.
func DetectLibcBackend(binPath string) (Backend, error) {
	f, err := elf.Open(binPath)
	if err != nil {
		return BackendUnknown, fmt.Errorf("failed to open %s as ELF: %w", binPath, err)
	}
	defer f.Close()

	for _, prog := range f.Progs {
		if prog.Type != elf.PT_INTERP {
			continue
		}

		data := make([]byte, prog.Filesz)
		if _, err := prog.ReadAt(data, 0); err != nil {
			return BackendUnknown, fmt.Errorf("failed to read program interpreter from %s: %w", binPath, err)
		}
		interp := string(bytes.TrimRight(data, "\x00"))
		return classifyInterp(interp), nil
	}

	return BackendStatic, nil
}

// classifyInterp maps a program-interpreter path to a backend. The
// interpreter basename is the stable identifier: ld-linux-<arch>.so.N for
// glibc, ld-musl-<arch>.so.N for musl.
func classifyInterp(interp string) Backend {
	base := path.Base(interp)
	switch {
	case strings.HasPrefix(base, "ld-musl"):
		return BackendMusl
	case strings.HasPrefix(base, "ld-linux"), base == "ld.so.1", base == "ld64.so.1", base == "ld64.so.2":
		return BackendGlibc
	default:
		return BackendUnknown
	}
}
