package fs

import (
	"errors"
	iofs "io/fs"
	"sync"
	"syscall"
)

// IsInjected reports whether err (or any wrapped error) was injected by [Chaos].
// Returns false if err is nil.
//
// [Chaos] returns plain *fs.PathError values so os.IsNotExist/os.IsPermission
// keep working. Those values are tracked here so tests can still distinguish
// injected vs real OS errors.
func IsInjected(err error) bool {
	if err == nil {
		return false
	}

	var pathErr *iofs.PathError
	if errors.As(err, &pathErr) {
		_, ok := injectedPathErrors.Load(pathErr)

		return ok
	}

	return false
}

var injectedPathErrors sync.Map // map[*fs.PathError]struct{}

// pathError creates an *fs.PathError with the given operation, path, and errno.
// This matches what the real OS returns, so errors.Is() works correctly.
func pathError(op, path string, errno syscall.Errno) error {
	pe := &iofs.PathError{Op: op, Path: path, Err: errno}
	injectedPathErrors.Store(pe, struct{}{})

	return pe
}
