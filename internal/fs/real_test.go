package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// Real FS Tests
//
// These tests verify our Real implementation's helper methods work correctly.
// We're NOT testing os.ReadFile, os.ReadDir etc (that's Go's job).
// We ARE testing:
//   - Exists() - our convenience method
//   - WriteFileAtomic() - our atomic write wrapper
// =============================================================================

// -----------------------------------------------------------------------------
// Exists() Tests
// -----------------------------------------------------------------------------

func TestReal_Exists_ReturnsFalseForNonExistent(t *testing.T) {
	t.Parallel()

	fs := NewReal()
	dir := t.TempDir()

	exists, err := fs.Exists(filepath.Join(dir, "does-not-exist.txt"))

	if got, want := err, error(nil); !errors.Is(got, want) {
		t.Fatalf("err=%v, want=%v", got, want)
	}

	if got, want := exists, false; got != want {
		t.Fatalf("exists=%v, want=%v", got, want)
	}
}

func TestReal_Exists_ReturnsTrueForFile(t *testing.T) {
	t.Parallel()

	fs := NewReal()
	dir := t.TempDir()
	path := filepath.Join(dir, "exists.txt")

	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	exists, err := fs.Exists(path)

	if got, want := err, error(nil); !errors.Is(got, want) {
		t.Fatalf("err=%v, want=%v", got, want)
	}

	if got, want := exists, true; got != want {
		t.Fatalf("exists=%v, want=%v", got, want)
	}
}

func TestReal_Exists_ReturnsTrueForDirectory(t *testing.T) {
	t.Parallel()

	fs := NewReal()
	dir := t.TempDir()
	subdir := filepath.Join(dir, "subdir")

	if err := os.MkdirAll(subdir, 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	exists, err := fs.Exists(subdir)

	if got, want := err, error(nil); !errors.Is(got, want) {
		t.Fatalf("err=%v, want=%v", got, want)
	}

	if got, want := exists, true; got != want {
		t.Fatalf("exists=%v, want=%v", got, want)
	}
}

// -----------------------------------------------------------------------------
// WriteFileAtomic() Tests
// -----------------------------------------------------------------------------

func TestReal_WriteFileAtomic_CreatesFileWithPerm(t *testing.T) {
	t.Parallel()

	fs := NewReal()
	path := filepath.Join(t.TempDir(), "README.md")

	if err := fs.WriteFileAtomic(path, []byte("# index\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if got, want := string(data), "# index\n"; got != want {
		t.Fatalf("content=%q, want=%q", got, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	if got, want := info.Mode().Perm(), os.FileMode(0o644); got != want {
		t.Fatalf("perm=%v, want=%v", got, want)
	}
}

// TestReal_WriteFileAtomic_TruncatesExisting verifies a shorter write fully
// replaces a longer existing file.
func TestReal_WriteFileAtomic_TruncatesExisting(t *testing.T) {
	t.Parallel()

	fs := NewReal()
	path := filepath.Join(t.TempDir(), "README.md")

	if err := os.WriteFile(path, []byte("a much longer previous index\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := fs.WriteFileAtomic(path, []byte("short\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if got, want := string(data), "short\n"; got != want {
		t.Fatalf("content=%q, want=%q", got, want)
	}
}

func TestReal_WriteFileAtomic_FailsForMissingDirectory(t *testing.T) {
	t.Parallel()

	fs := NewReal()
	path := filepath.Join(t.TempDir(), "missing", "README.md")

	if err := fs.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
