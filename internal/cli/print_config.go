package cli

import (
	"context"

	"github.com/calvinalkan/doc-index/internal/config"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(load LoadConfigFunc) *Command {
	flags := flag.NewFlagSet("print-config", flag.ContinueOnError)
	flags.String("source", "", "Title source: mapper|frontmatter (default from config)")
	flags.StringP("output", "o", "", "Output file (default from config)")

	return &Command{
		Flags: flags,
		Usage: "print-config [flags]",
		Short: "Show resolved configuration",
		Long: "Display the effective configuration and which files it was loaded from.\n" +
			"Flags are applied the same way build and check apply them.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, load, flags)
		},
	}
}

func execPrintConfig(io *IO, load LoadConfigFunc, flags *flag.FlagSet) error {
	cfg, err := loadWithFlags(load, flags)
	if err != nil {
		return err
	}

	formatted, err := config.Format(cfg)
	if err != nil {
		return err
	}

	io.Println(formatted)

	io.Println("")
	io.Println("# resolved")
	io.Println("effective_cwd=" + cfg.EffectiveCwd)
	io.Println("output_path=" + cfg.OutputAbs)

	io.Println("")
	io.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		io.Println("(defaults only)")
	} else {
		if cfg.Sources.Global != "" {
			io.Println("global_config=" + cfg.Sources.Global)
		}

		if cfg.Sources.Project != "" {
			io.Println("project_config=" + cfg.Sources.Project)
		}
	}

	return nil
}
