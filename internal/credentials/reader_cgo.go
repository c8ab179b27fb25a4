//go:build cgo && linux

package credentials

/*
#define _GNU_SOURCE
#include <unistd.h>
#include <errno.h>

static int probe_getresuid(uid_t *ruid, uid_t *euid, uid_t *suid) {
	if (getresuid(ruid, euid, suid) != 0) {
		return errno;
	}
	return 0;
}

static int probe_getresgid(gid_t *rgid, gid_t *egid, gid_t *sgid) {
	if (getresgid(rgid, egid, sgid) != 0) {
		return errno;
	}
	return 0;
}
*/
import "C"

import "syscall"

// libcReader queries credentials through the C library wrappers, so a
// binary linked against glibc exercises glibc's credential bookkeeping and
// one linked against musl exercises musl's. Both must land in the same
// Snapshot the raw-syscall reader produces for identical kernel state.
type libcReader struct{}

func newPlatformReader() Reader {
	return libcReader{}
}

func (libcReader) Read() (Snapshot, error) {
	var ruid, euid, suid C.uid_t
	if rc := C.probe_getresuid(&ruid, &euid, &suid); rc != 0 {
		return Snapshot{}, &QueryError{Call: "getresuid", Errno: syscall.Errno(rc)}
	}

	var rgid, egid, sgid C.gid_t
	if rc := C.probe_getresgid(&rgid, &egid, &sgid); rc != 0 {
		return Snapshot{}, &QueryError{Call: "getresgid", Errno: syscall.Errno(rc)}
	}

	return Snapshot{
		RUID: int(ruid),
		EUID: int(euid),
		SUID: int(suid),
		RGID: int(rgid),
		EGID: int(egid),
		SGID: int(sgid),
	}, nil
}
