package index_test

import (
	"errors"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/doc-index/internal/fs"
	"github.com/calvinalkan/doc-index/internal/index"
)

func TestGenerate_UnknownSource(t *testing.T) {
	t.Parallel()

	_, err := index.Generate(fs.NewReal(), t.TempDir(), index.Options{Source: "toc"})
	require.ErrorIs(t, err, index.ErrUnknownSource)
}

func TestGenerate_EmptyRoot(t *testing.T) {
	t.Parallel()

	for _, source := range []index.Source{index.SourceMapper, index.SourceFrontmatter} {
		got, err := index.Generate(fs.NewReal(), t.TempDir(), index.Options{Source: source})
		require.NoError(t, err)
		assert.Empty(t, got.Sections)
		assert.Empty(t, got.Skipped)
		assert.Equal(t, "# head_first_x_docs\n", index.Render(got, ""))
	}
}

func TestGenerate_UnreadableDocumentAbortsRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "docs/a.md", "---\ntitle_cn: A\n---\n")
	writeFile(t, root, "docs/b.md", "---\ntitle_cn: B\n---\n")

	chaos := fs.NewChaos(fs.NewReal())
	chaos.SetPathState(filepath.Join(root, "docs", "b.md"), fs.PathNoPermission)

	_, err := index.Generate(chaos, root, index.Options{Source: index.SourceFrontmatter})
	require.Error(t, err)
	assert.True(t, errors.Is(err, syscall.EACCES), "err=%v", err)
	assert.Contains(t, err.Error(), "b.md")
}

func TestGenerate_UnreadableDirectoryAbortsRun(t *testing.T) {
	t.Parallel()

	for _, source := range []index.Source{index.SourceMapper, index.SourceFrontmatter} {
		root := t.TempDir()
		writeFile(t, root, "docs/a.md", "")

		chaos := fs.NewChaos(fs.NewReal())
		chaos.SetPathState(filepath.Join(root, "docs"), fs.PathIOError)

		_, err := index.Generate(chaos, root, index.Options{Source: source})
		require.Error(t, err, "source=%s", source)
		assert.True(t, errors.Is(err, syscall.EIO), "source=%s err=%v", source, err)
	}
}

func TestGenerate_UnreadableMapperAbortsRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "docs/mapper.json", `[]`)

	chaos := fs.NewChaos(fs.NewReal())
	chaos.SetPathState(filepath.Join(root, "docs", "mapper.json"), fs.PathIOError)

	_, err := index.Generate(chaos, root, index.Options{})
	require.Error(t, err)
	assert.True(t, fs.IsInjected(err))
}

// TestGenerate_IsRepeatableAndReadOnly runs the generator twice over the same
// tree: the output must be byte-identical and no input may change.
func TestGenerate_IsRepeatableAndReadOnly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a/mapper.json", `[{"file": "1.md", "names": {"cn": "一", "en": "One"}}]`)
	writeFile(t, root, "a/1.md", "---\ntitle_cn: 一\ntitle_en: One\n---\n")
	writeFile(t, root, "b/2.md", "---\ntitle_en: Two\n---\n")

	before := snapshot(t, root)

	for _, source := range []index.Source{index.SourceMapper, index.SourceFrontmatter} {
		first, err := index.Generate(fs.NewReal(), root, index.Options{Source: source})
		require.NoError(t, err)

		second, err := index.Generate(fs.NewReal(), root, index.Options{Source: source})
		require.NoError(t, err)

		assert.Equal(t, index.Render(first, ""), index.Render(second, ""), "source=%s", source)
	}

	if diff := cmp.Diff(before, snapshot(t, root)); diff != "" {
		t.Fatalf("inputs changed (-before +after):\n%s", diff)
	}
}

// TestGenerate_Mapper_RecordsPointAtExistingFiles checks every emitted
// document path against the filesystem.
func TestGenerate_Mapper_RecordsPointAtExistingFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a/mapper.json", `[
		{"file": "1.md", "names": {"cn": "一"}},
		{"file": "2.md", "names": {"cn": "二"}},
		{"file": "3.md", "names": {"cn": "三"}}
	]`)
	writeFile(t, root, "a/1.md", "")
	writeFile(t, root, "a/3.md", "")

	got, err := index.Generate(fs.NewReal(), root, index.Options{})
	require.NoError(t, err)
	require.Equal(t, 2, got.Documents())

	broken, err := index.BrokenLinks(fs.NewReal(), root, []byte(index.Render(got, "")))
	require.NoError(t, err)
	assert.Empty(t, broken)
}
