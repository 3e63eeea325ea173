package index

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	frontmatterDelimiter = "---"
	keyTitleCN           = "title_cn"
	keyTitleEN           = "title_en"
	valueSeparator       = ": "
)

// IsMarkdownName reports whether name looks like a markdown file.
// The match is a substring match, so "notes.md.bak" qualifies too.
func IsMarkdownName(name string) bool {
	return strings.Contains(name, ".md") || strings.Contains(name, ".markdown")
}

// ExtractTitles reads the localized titles from the front-matter of content.
//
// content is split on "---" and the second part is taken as the block; it
// must mention title_cn or title_en, otherwise ok is false. A line mentioning
// a key sets that title to everything after the first ": ". Titles that are
// not found keep the [UnknownCN]/[UnknownEN] placeholders.
func ExtractTitles(content string) (Names, bool) {
	parts := strings.Split(content, frontmatterDelimiter)
	if len(parts) < 2 {
		return Names{}, false
	}

	block := parts[1]
	if !strings.Contains(block, keyTitleCN) && !strings.Contains(block, keyTitleEN) {
		return Names{}, false
	}

	names := unknownNames()

	for line := range strings.SplitSeq(block, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		_, value, found := strings.Cut(line, valueSeparator)
		if !found {
			continue
		}

		if strings.Contains(line, keyTitleCN) {
			names.CN = value
		}

		if strings.Contains(line, keyTitleEN) {
			names.EN = value
		}
	}

	return names, true
}

// frontmatterSection builds the section for dir from the front-matter of its
// markdown files. A non-empty skip reason means the directory contributes
// nothing.
func (g *generator) frontmatterSection(dir string) (Section, string, error) {
	dirPath := filepath.Join(g.root, dir)

	entries, err := g.fs.ReadDir(dirPath)
	if err != nil {
		return Section{}, "", fmt.Errorf("list %s: %w", dirPath, err)
	}

	var files []Document

	for _, entry := range entries {
		if entry.IsDir() || !IsMarkdownName(entry.Name()) {
			continue
		}

		filePath := filepath.Join(dirPath, entry.Name())

		data, err := g.fs.ReadFile(filePath)
		if err != nil {
			return Section{}, "", fmt.Errorf("read document: %w", err)
		}

		names, ok := ExtractTitles(string(data))
		if !ok {
			continue
		}

		files = append(files, Document{
			Path:  docPath(dir, entry.Name()),
			Names: names,
		})
	}

	if len(files) == 0 {
		return Section{}, "no markdown files with front-matter titles", nil
	}

	return Section{Title: dir, Files: files}, "", nil
}
