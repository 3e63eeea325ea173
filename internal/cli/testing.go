package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CLI provides a clean interface for running CLI commands in tests.
// It manages a temp directory and environment variables.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string
}

// NewCLI creates a new test CLI with a temp directory. The global config
// lookup is pointed at an empty directory so user config never leaks in.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{
		t:   t,
		Dir: t.TempDir(),
		Env: map[string]string{"XDG_CONFIG_HOME": t.TempDir()},
	}
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include "docindex" or "--cwd" - those are added automatically.
func (r *CLI) Run(args ...string) (string, string, int) {
	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"docindex", "--cwd", r.Dir}, args...)
	code := Run(context.Background(), &outBuf, &errBuf, fullArgs, r.Env)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if the command returns non-zero.
// Returns stdout on success.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return stdout
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// WriteFile writes content to a slash-separated path under Dir, creating
// parent directories.
func (r *CLI) WriteFile(path, content string) {
	r.t.Helper()

	full := filepath.Join(r.Dir, filepath.FromSlash(path))

	err := os.MkdirAll(filepath.Dir(full), 0o755)
	if err != nil {
		r.t.Fatalf("failed to create dir for %s: %v", path, err)
	}

	err = os.WriteFile(full, []byte(content), 0o644)
	if err != nil {
		r.t.Fatalf("failed to write %s: %v", path, err)
	}
}

// ReadFile reads a slash-separated path under Dir.
func (r *CLI) ReadFile(path string) string {
	r.t.Helper()

	content, err := os.ReadFile(filepath.Join(r.Dir, filepath.FromSlash(path)))
	if err != nil {
		r.t.Fatalf("failed to read %s: %v", path, err)
	}

	return string(content)
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
