package fs

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
)

// PathState tracks the fault state of a path for consistent error injection.
type PathState int

const (
	// PathNormal means no fault. This is the zero value, so untracked paths
	// behave like the wrapped filesystem.
	PathNormal PathState = iota
	// PathIOError is sticky - the path has a "bad sector" and always returns EIO.
	PathIOError
	// PathReadOnly is sticky for writes - filesystem is read-only, returns EROFS.
	// Reads still work.
	PathReadOnly
	// PathNoPermission makes every operation on the path return EACCES.
	PathNoPermission
)

// Chaos wraps an [FS] and injects failures for paths marked with
// [Chaos.SetPathState].
//
// Faults are deterministic: a marked path fails on every call until it is
// reset, so tests can assert exactly which operation aborts a run.
//
// All injected errors are real OS errors (syscall.Errno wrapped in
// *fs.PathError) so they behave identically to real filesystem errors.
// Use [IsInjected] to tell them apart from genuine failures.
type Chaos struct {
	fs FS

	mu         sync.RWMutex
	pathStates map[string]PathState

	// Counters for testing verification
	readFails    atomic.Int64
	writeFails   atomic.Int64
	readDirFails atomic.Int64
	statFails    atomic.Int64
}

// NewChaos creates a new Chaos filesystem wrapping the given [FS].
// Panics if fs is nil.
func NewChaos(fs FS) *Chaos {
	if fs == nil {
		panic("fs is nil")
	}

	return &Chaos{
		fs:         fs,
		pathStates: make(map[string]PathState),
	}
}

// ChaosStats contains counts of injected faults.
type ChaosStats struct {
	ReadFails    int64
	WriteFails   int64
	ReadDirFails int64
	StatFails    int64
}

// Stats returns the current fault injection counts.
func (c *Chaos) Stats() ChaosStats {
	return ChaosStats{
		ReadFails:    c.readFails.Load(),
		WriteFails:   c.writeFails.Load(),
		ReadDirFails: c.readDirFails.Load(),
		StatFails:    c.statFails.Load(),
	}
}

// TotalFaults returns the total number of injected faults.
func (c *Chaos) TotalFaults() int64 {
	s := c.Stats()

	return s.ReadFails + s.WriteFails + s.ReadDirFails + s.StatFails
}

// SetPathState marks path with a fault state. [PathNormal] clears it.
func (c *Chaos) SetPathState(path string, state PathState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path = filepath.Clean(path)

	if state == PathNormal {
		delete(c.pathStates, path)
	} else {
		c.pathStates[path] = state
	}
}

// PathState returns the current fault state for a path.
func (c *Chaos) PathState(path string) PathState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pathStates[filepath.Clean(path)]
}

// ResetAllPathStates clears all fault states.
func (c *Chaos) ResetAllPathStates() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pathStates = make(map[string]PathState)
}

// readErrno returns the errno a read-like operation on path should fail with,
// or 0 when the operation should pass through.
func (c *Chaos) readErrno(path string) syscall.Errno {
	switch c.PathState(path) {
	case PathIOError:
		return syscall.EIO
	case PathNoPermission:
		return syscall.EACCES
	default:
		return 0
	}
}

// writeErrno is like readErrno but also honors [PathReadOnly].
func (c *Chaos) writeErrno(path string) syscall.Errno {
	switch c.PathState(path) {
	case PathIOError:
		return syscall.EIO
	case PathReadOnly:
		return syscall.EROFS
	case PathNoPermission:
		return syscall.EACCES
	default:
		return 0
	}
}

func (c *Chaos) ReadFile(path string) ([]byte, error) {
	if errno := c.readErrno(path); errno != 0 {
		c.readFails.Add(1)

		return nil, pathError("open", path, errno)
	}

	return c.fs.ReadFile(path)
}

func (c *Chaos) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if errno := c.writeErrno(path); errno != 0 {
		c.writeFails.Add(1)

		return pathError("write", path, errno)
	}

	return c.fs.WriteFileAtomic(path, data, perm)
}

func (c *Chaos) ReadDir(path string) ([]os.DirEntry, error) {
	if errno := c.readErrno(path); errno != 0 {
		c.readDirFails.Add(1)

		return nil, pathError("readdirent", path, errno)
	}

	return c.fs.ReadDir(path)
}

func (c *Chaos) Stat(path string) (os.FileInfo, error) {
	if errno := c.readErrno(path); errno != 0 {
		c.statFails.Add(1)

		return nil, pathError("stat", path, errno)
	}

	return c.fs.Stat(path)
}

func (c *Chaos) Exists(path string) (bool, error) {
	if errno := c.readErrno(path); errno != 0 {
		c.statFails.Add(1)

		return false, pathError("stat", path, errno)
	}

	return c.fs.Exists(path)
}

// Compile-time interface check.
var _ FS = (*Chaos)(nil)
