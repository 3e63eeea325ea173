package index

import (
	"strings"
)

// Render formats idx as Markdown:
//
//	# head_first_x_docs
//	#### [docs](./docs)
//	* [标题](./docs/a.md)
//
// An empty title falls back to [DefaultTitle]. Mapper indexes label bullets
// with the Chinese name only; front-matter indexes add the English name in
// parentheses. Every line ends with "\n".
func Render(idx Index, title string) string {
	if title == "" {
		title = DefaultTitle
	}

	var sb strings.Builder

	sb.WriteString("# " + title + "\n")

	for _, section := range idx.Sections {
		sb.WriteString("#### [" + section.Title + "](./" + section.Title + ")\n")

		for _, doc := range section.Files {
			sb.WriteString("* [" + label(idx.Source, doc.Names) + "](" + doc.Path + ")\n")
		}
	}

	return sb.String()
}

func label(source Source, names Names) string {
	if source == SourceFrontmatter {
		return names.CN + " (" + names.EN + ")"
	}

	return names.CN
}
