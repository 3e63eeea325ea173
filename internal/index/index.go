// Package index builds a Markdown index of a documentation tree.
//
// The root's immediate, non-hidden subdirectories are scanned; each one
// contributes a section listing its documents with their localized titles.
// Titles come from one of two sources:
//
//   - [SourceMapper]: a sidecar mapping file (mapper.json) per directory
//   - [SourceFrontmatter]: a "---" delimited block inside each markdown file
//
// [Generate] is pure over an injected [fs.FS]; it never writes and never
// prints. [Render] turns the result into the final Markdown document.
package index

import (
	"errors"
	"fmt"
)

// Source selects where document titles are read from.
type Source string

// Supported title sources.
const (
	SourceMapper      Source = "mapper"
	SourceFrontmatter Source = "frontmatter"
)

// Defaults used when Options fields are empty.
const (
	DefaultMapperFile = "mapper.json"
	DefaultTitle      = "head_first_x_docs"
)

// Placeholder titles for front-matter fields that are absent.
const (
	UnknownCN = "未知"
	UnknownEN = "Unknown"
)

var (
	ErrUnknownSource = errors.New("unknown source")
	ErrMapperInvalid = errors.New("invalid mapper file")
)

// ParseSource validates a source name.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceMapper, SourceFrontmatter:
		return Source(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownSource, s, SourceMapper, SourceFrontmatter)
	}
}

// Names is the pair of localized display titles of a document.
type Names struct {
	CN string `json:"cn"`
	EN string `json:"en"`
}

// unknownNames returns a fresh placeholder pair.
func unknownNames() Names {
	return Names{CN: UnknownCN, EN: UnknownEN}
}

// MappingEntry is one record of a mapping file.
type MappingEntry struct {
	File  string `json:"file"`
	Names Names  `json:"names"`
}

// Document is one retained document: a bullet line in the index.
type Document struct {
	// Path is relative to the root and always starts with "./",
	// e.g. "./docs/a.md".
	Path  string
	Names Names
}

// Section groups the documents of one directory. Sections with no documents
// are never produced.
type Section struct {
	Title string // directory name
	Files []Document
}

// Skip records a directory that contributed nothing and why.
type Skip struct {
	Dir    string
	Reason string
}

// Index is the result of one scan.
type Index struct {
	Source   Source
	Sections []Section
	Skipped  []Skip
}

// Documents returns the total number of documents across all sections.
func (idx Index) Documents() int {
	n := 0
	for _, s := range idx.Sections {
		n += len(s.Files)
	}

	return n
}

// docPath builds the link target for file in dir. Forward slashes are used
// on every platform since the result is a Markdown link.
func docPath(dir, file string) string {
	return "./" + dir + "/" + file
}
