package index

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/calvinalkan/doc-index/internal/fs"
)

// Links returns the destinations of all inline links in a Markdown document,
// in document order.
func Links(markdown []byte) ([]string, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(markdown))

	var links []string

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if link, ok := n.(*ast.Link); ok {
			links = append(links, string(link.Destination))
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}

	return links, nil
}

// BrokenLinks returns the local link destinations in markdown that do not
// resolve to an existing path under root. URLs and fragment-only links are
// ignored.
func BrokenLinks(fsys fs.FS, root string, markdown []byte) ([]string, error) {
	links, err := Links(markdown)
	if err != nil {
		return nil, err
	}

	var broken []string

	for _, dest := range links {
		if dest == "" || strings.HasPrefix(dest, "#") || strings.Contains(dest, "://") {
			continue
		}

		target := dest
		if i := strings.IndexByte(target, '#'); i >= 0 {
			target = target[:i]
		}

		exists, err := fsys.Exists(filepath.Join(root, filepath.FromSlash(target)))
		if err != nil {
			return nil, fmt.Errorf("check link %s: %w", dest, err)
		}

		if !exists {
			broken = append(broken, dest)
		}
	}

	return broken, nil
}

// UnlinkedDestinations returns the section and document paths of idx that
// markdown does not carry as a link. Names with spaces or unbalanced
// brackets render as plain text rather than links.
func UnlinkedDestinations(idx Index, markdown []byte) ([]string, error) {
	links, err := Links(markdown)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(links))
	for _, dest := range links {
		seen[dest] = true
	}

	var missing []string

	for _, section := range idx.Sections {
		if dest := "./" + section.Title; !seen[dest] {
			missing = append(missing, dest)
		}

		for _, doc := range section.Files {
			if !seen[doc.Path] {
				missing = append(missing, doc.Path)
			}
		}
	}

	return missing, nil
}
