package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/tailscale/hujson"
)

var (
	errNamesMissing = errors.New("names is missing")
	errCNMissing    = errors.New("names.cn is missing or empty")
)

// rawMappingEntry keeps names nullable so an absent object can be told
// apart from an empty one.
type rawMappingEntry struct {
	File  string `json:"file"`
	Names *Names `json:"names"`
}

// ParseMapper decodes a mapping file: a JSON array of [MappingEntry].
// Comments and trailing commas are accepted. Every entry must carry a names
// object with a non-empty cn.
func ParseMapper(data []byte) ([]MappingEntry, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	var raw []rawMappingEntry

	err = json.Unmarshal(standardized, &raw)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	entries := make([]MappingEntry, 0, len(raw))

	for i, r := range raw {
		switch {
		case r.Names == nil:
			return nil, fmt.Errorf("entry %d (%q): %w", i, r.File, errNamesMissing)
		case r.Names.CN == "":
			return nil, fmt.Errorf("entry %d (%q): %w", i, r.File, errCNMissing)
		}

		entries = append(entries, MappingEntry{File: r.File, Names: *r.Names})
	}

	return entries, nil
}

// mapperSection builds the section for dir from its mapping file.
// A non-empty skip reason means the directory contributes nothing.
func (g *generator) mapperSection(dir string) (Section, string, error) {
	dirPath := filepath.Join(g.root, dir)

	names, err := g.listNames(dirPath)
	if err != nil {
		return Section{}, "", err
	}

	if !slices.Contains(names, g.opts.MapperFile) {
		return Section{}, "no " + g.opts.MapperFile + " found", nil
	}

	mapperPath := filepath.Join(dirPath, g.opts.MapperFile)

	data, err := g.fs.ReadFile(mapperPath)
	if err != nil {
		return Section{}, "", fmt.Errorf("read mapper: %w", err)
	}

	entries, err := ParseMapper(data)
	if err != nil {
		return Section{}, "", fmt.Errorf("%w %s: %w", ErrMapperInvalid, mapperPath, err)
	}

	var files []Document

	for _, entry := range entries {
		// Stale entries whose file is gone are dropped.
		if entry.File == "" || !slices.Contains(names, entry.File) {
			continue
		}

		files = append(files, Document{
			Path:  docPath(dir, entry.File),
			Names: entry.Names,
		})
	}

	if len(files) == 0 {
		return Section{}, "no mapped files present", nil
	}

	return Section{Title: dir, Files: files}, "", nil
}

func (g *generator) listNames(dirPath string) ([]string, error) {
	entries, err := g.fs.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dirPath, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}
