package index

import (
	"fmt"
	"strings"

	"github.com/calvinalkan/doc-index/internal/fs"
)

// Scan returns the immediate subdirectories of root whose names do not start
// with ".", in directory listing order.
//
// A symlink to a directory is not a directory here. An empty root yields an
// empty slice.
func Scan(fsys fs.FS, root string) ([]string, error) {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	dirs := make([]string, 0, len(entries))

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") || !entry.IsDir() {
			continue
		}

		dirs = append(dirs, entry.Name())
	}

	return dirs, nil
}
