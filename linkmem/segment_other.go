//go:build !linux

package linkmem

import (
	"errors"
	"io/fs"
	"os"
)

// Only Linux exposes POSIX shared memory objects as files. Elsewhere the
// directory holding the segments has to be given with WithDir.
var defaultDir = os.TempDir()

func currentUID() int {
	if uid := os.Getuid(); uid >= 0 {
		return uid
	}

	return 0
}

func bindReason(err error) BindReason {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	default:
		return OtherFailure
	}
}
