package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/calvinalkan/doc-index/internal/fs"
	"github.com/calvinalkan/doc-index/internal/index"

	flag "github.com/spf13/pflag"
)

var (
	errOutputMissing = errors.New("output file missing")
	errOutputStale   = errors.New("output file is stale")
	errBrokenLinks   = errors.New("index has broken links")
	errUnlinked      = errors.New("index has paths that do not parse as links")
)

// CheckCmd returns the check command.
func CheckCmd(load LoadConfigFunc, fsys fs.FS) *Command {
	flags := flag.NewFlagSet("check", flag.ContinueOnError)
	flags.String("source", "", "Title source: mapper|frontmatter (default from config)")
	flags.StringP("output", "o", "", "Output file (default from config)")

	return &Command{
		Flags: flags,
		Usage: "check [flags]",
		Short: "Verify the index is up to date",
		Long: "Regenerate the index in memory and compare it with the output file.\n" +
			"Fails when the file is missing or stale, when a path in the index does\n" +
			"not parse as a Markdown link, or when a link does not resolve to an\n" +
			"existing path. Nothing is written.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execCheck(o, load, fsys, flags)
		},
	}
}

func execCheck(o *IO, load LoadConfigFunc, fsys fs.FS, flags *flag.FlagSet) error {
	cfg, err := loadWithFlags(load, flags)
	if err != nil {
		return err
	}

	outputPath := cfg.OutputAbs

	idx, err := index.Generate(fsys, cfg.EffectiveCwd, cfg.Options())
	if err != nil {
		return err
	}

	warnSkipped(o, idx)

	rendered := index.Render(idx, cfg.Title)

	unlinked, err := index.UnlinkedDestinations(idx, []byte(rendered))
	if err != nil {
		return err
	}

	if len(unlinked) > 0 {
		for _, dest := range unlinked {
			o.Warnf("not a markdown link: %s", dest)
		}

		return fmt.Errorf("%w: %d", errUnlinked, len(unlinked))
	}

	broken, err := index.BrokenLinks(fsys, cfg.EffectiveCwd, []byte(rendered))
	if err != nil {
		return err
	}

	if len(broken) > 0 {
		for _, dest := range broken {
			o.Warnf("broken link: %s", dest)
		}

		return fmt.Errorf("%w: %d", errBrokenLinks, len(broken))
	}

	exists, err := fsys.Exists(outputPath)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("%w: %s (run 'docindex build')", errOutputMissing, outputPath)
	}

	current, err := fsys.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("read output: %w", err)
	}

	if string(current) != rendered {
		return fmt.Errorf("%w: %s (run 'docindex build')", errOutputStale, outputPath)
	}

	o.Printf("%s is up to date (%d sections, %d documents)\n", outputPath, len(idx.Sections), idx.Documents())

	return nil
}
