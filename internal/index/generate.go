package index

import (
	"github.com/calvinalkan/doc-index/internal/fs"
)

// Options configures [Generate].
type Options struct {
	// Source selects the title source. Default: [SourceMapper].
	Source Source

	// MapperFile is the mapping file name looked up in every directory.
	// Default: [DefaultMapperFile]. Only used by [SourceMapper].
	MapperFile string
}

type generator struct {
	fs   fs.FS
	root string
	opts Options
}

// Generate scans root and builds the index.
//
// Directories that contribute nothing are reported in [Index.Skipped] and do
// not stop the run. Any filesystem error, or a malformed mapping file, aborts
// the whole run.
func Generate(fsys fs.FS, root string, opts Options) (Index, error) {
	if opts.Source == "" {
		opts.Source = SourceMapper
	}

	if opts.MapperFile == "" {
		opts.MapperFile = DefaultMapperFile
	}

	source, err := ParseSource(string(opts.Source))
	if err != nil {
		return Index{}, err
	}

	g := &generator{fs: fsys, root: root, opts: opts}

	dirs, err := Scan(fsys, root)
	if err != nil {
		return Index{}, err
	}

	idx := Index{Source: source}

	for _, dir := range dirs {
		var (
			section Section
			reason  string
		)

		switch source {
		case SourceFrontmatter:
			section, reason, err = g.frontmatterSection(dir)
		default:
			section, reason, err = g.mapperSection(dir)
		}

		if err != nil {
			return Index{}, err
		}

		if reason != "" {
			idx.Skipped = append(idx.Skipped, Skip{Dir: dir, Reason: reason})

			continue
		}

		idx.Sections = append(idx.Sections, section)
	}

	return idx, nil
}
