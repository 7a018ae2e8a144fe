package fs

import (
	"errors"
	iofs "io/fs"
	"syscall"
)

// defines helpers for classifying filesystem errors.
// These determine whether an operation should retry, fail, or treat the entry as gone.

func isTransient(err error) bool {
	if errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EBUSY) ||
		errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}

	// extend here for network FS specific errors if needed
	return false
}

// IsNotExist reports whether err means the entry is gone. ENOTDIR counts:
// it shows up when a parent directory was replaced by a file.
func IsNotExist(err error) bool {
	return errors.Is(err, iofs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
