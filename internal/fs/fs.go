// Package fs provides the filesystem abstraction used by the index generator.
//
// The main types are:
//   - [FS]: interface for the filesystem operations the generator needs
//   - [Real]: production implementation using [os] package
//   - [Chaos]: testing implementation that injects per-path failures
//
// Example usage:
//
//	fsys := fs.NewReal()
//	entries, err := fsys.ReadDir("docs")
//	if err != nil {
//	    return err
//	}
package fs

import (
	"os"
)

// FS defines the read and write operations used to build an index.
//
// Two implementations are provided:
//   - [Real]: production use, wraps [os] package
//   - [Chaos]: testing use, injects failures for chosen paths
//
// All methods mirror their [os] package equivalents but can be intercepted
// for testing with fault injection.
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to a file atomically.
	// Uses a temp file + rename so readers never observe a partial file.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// ReadDir reads a directory and returns its entries. See [os.ReadDir].
	// Entries are sorted by name.
	ReadDir(path string) ([]os.DirEntry, error)

	// Stat returns file info. See [os.Stat].
	// Returns [os.ErrNotExist] if file doesn't exist.
	Stat(path string) (os.FileInfo, error)

	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)
}
