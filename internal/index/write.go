package index

import (
	"fmt"

	"github.com/calvinalkan/doc-index/internal/fs"
)

const outputPerm = 0o644

// Write replaces the file at path with the rendered index.
// The write is atomic: on error the previous file, if any, is left intact.
func Write(fsys fs.FS, path string, rendered string) error {
	err := fsys.WriteFileAtomic(path, []byte(rendered), outputPerm)
	if err != nil {
		return fmt.Errorf("write index %s: %w", path, err)
	}

	return nil
}
