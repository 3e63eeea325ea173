package cli_test

import (
	"os"
	"path/filepath"
	"testing"
)

// writeAbs writes content to an absolute path outside the CLI's directory.
func writeAbs(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
