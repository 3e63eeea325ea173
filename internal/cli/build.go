package cli

import (
	"context"

	"github.com/calvinalkan/doc-index/internal/config"
	"github.com/calvinalkan/doc-index/internal/fs"
	"github.com/calvinalkan/doc-index/internal/index"

	flag "github.com/spf13/pflag"
)

// BuildCmd returns the build command.
func BuildCmd(load LoadConfigFunc, fsys fs.FS) *Command {
	flags := flag.NewFlagSet("build", flag.ContinueOnError)
	flags.String("source", "", "Title source: mapper|frontmatter (default from config)")
	flags.StringP("output", "o", "", "Output file (default from config)")
	flags.Bool("dry-run", false, "Print the index without writing it")
	flags.Bool("strict", false, "Exit 1 when any directory was skipped")
	flags.BoolP("quiet", "q", false, "Do not echo the index to stdout")

	return &Command{
		Flags: flags,
		Usage: "build [flags]",
		Short: "Generate the index (default)",
		Long: "Scan the subdirectories of the working directory, write the index\n" +
			"to the output file and echo it to stdout.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execBuild(o, load, fsys, flags)
		},
	}
}

func execBuild(o *IO, load LoadConfigFunc, fsys fs.FS, flags *flag.FlagSet) error {
	cfg, err := loadWithFlags(load, flags)
	if err != nil {
		return err
	}

	dryRun, _ := flags.GetBool("dry-run")
	strict, _ := flags.GetBool("strict")
	quiet, _ := flags.GetBool("quiet")

	o.SetStrict(strict)

	idx, err := index.Generate(fsys, cfg.EffectiveCwd, cfg.Options())
	if err != nil {
		return err
	}

	warnSkipped(o, idx)

	rendered := index.Render(idx, cfg.Title)

	if !dryRun {
		err = index.Write(fsys, cfg.OutputAbs, rendered)
		if err != nil {
			return err
		}
	}

	if !quiet || dryRun {
		o.Println(rendered)
	}

	return nil
}

// loadWithFlags loads the configuration with the command's --source and
// --output flags as overrides.
func loadWithFlags(load LoadConfigFunc, flags *flag.FlagSet) (config.Config, error) {
	var overrides config.Config

	if flags.Changed("source") {
		value, _ := flags.GetString("source")

		_, err := index.ParseSource(value)
		if err != nil {
			return config.Config{}, err
		}

		overrides.Source = value
	}

	if flags.Changed("output") {
		value, _ := flags.GetString("output")
		if value == "" {
			return config.Config{}, config.ErrOutputEmpty
		}

		overrides.Output = value
	}

	return load(overrides)
}

func warnSkipped(o *IO, idx index.Index) {
	for _, skip := range idx.Skipped {
		o.Warnf("skipped %s: %s", skip.Dir, skip.Reason)
	}
}
