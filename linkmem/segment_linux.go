//go:build linux

package linkmem

import (
	"errors"

	"golang.org/x/sys/unix"
)

const defaultDir = "/dev/shm"

func currentUID() int {
	return unix.Getuid()
}

func bindReason(err error) BindReason {
	switch {
	case errors.Is(err, unix.ENOENT):
		return NotFound
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return PermissionDenied
	default:
		return OtherFailure
	}
}
