package index_test

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates path (and its parents) under root with content.
func writeFile(t *testing.T, root, path, content string) {
	t.Helper()

	full := filepath.Join(root, filepath.FromSlash(path))

	err := os.MkdirAll(filepath.Dir(full), 0o755)
	if err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(full), err)
	}

	err = os.WriteFile(full, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("write %s: %v", full, err)
	}
}

func mkdir(t *testing.T, root, path string) {
	t.Helper()

	err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(path)), 0o755)
	if err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

// snapshot returns the content of every regular file under root keyed by
// slash-separated relative path.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	files := map[string]string{}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		files[filepath.ToSlash(rel)] = string(data)

		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", root, err)
	}

	return files
}
