package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/calvinalkan/doc-index/internal/config"
	"github.com/calvinalkan/doc-index/internal/fs"

	flag "github.com/spf13/pflag"
)

const defaultCommand = "build"

// Run is the main entry point. Returns exit code.
//
// With no command, "build" runs: the working directory is indexed into
// README.md and the result is echoed to out.
func Run(ctx context.Context, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	globals := flag.NewFlagSet("docindex", flag.ContinueOnError)
	globals.SetInterspersed(false)
	globals.SetOutput(&strings.Builder{}) // discard pflag output

	workDir := globals.StringP("cwd", "C", "", "Run as if started in `dir`")
	configPath := globals.StringP("config", "c", "", "Use specified config `file`")
	help := globals.BoolP("help", "h", false, "Show help")

	if len(args) > 0 {
		args = args[1:]
	}

	err := globals.Parse(args)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, globals, nil)

		return 1
	}

	if *help || errors.Is(err, flag.ErrHelp) {
		printUsage(out, globals, nil)

		return 0
	}

	load := func(overrides config.Config) (config.Config, error) {
		return config.Load(config.LoadInput{
			WorkDirOverride: *workDir,
			ConfigPath:      *configPath,
			Overrides:       overrides,
			Env:             env,
		})
	}

	fsys := fs.NewReal()

	commands := []*Command{
		BuildCmd(load, fsys),
		CheckCmd(load, fsys),
		PrintConfigCmd(load),
	}

	remaining := globals.Args()

	name := defaultCommand
	if len(remaining) > 0 {
		name, remaining = remaining[0], remaining[1:]
	}

	var cmd *Command

	for _, c := range commands {
		if c.Name() == name {
			cmd = c

			break
		}
	}

	if cmd == nil {
		fprintln(errOut, "error: unknown command:", name)
		fprintln(errOut)
		printUsage(errOut, globals, commands)

		return 1
	}

	o := NewIO(out, errOut)

	code := cmd.Run(ctx, o, remaining)

	finish := o.Finish()
	if code != 0 {
		return code
	}

	return finish
}

// LoadConfigFunc resolves the configuration for a command. Overrides carry
// the command's flag values and win over every config file.
type LoadConfigFunc func(overrides config.Config) (config.Config, error)

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globals *flag.FlagSet, commands []*Command) {
	fprintln(w, `docindex - generate a README index of a documentation tree

Usage: docindex [global flags] [command] [flags]

Global flags:`)

	var buf strings.Builder
	globals.SetOutput(&buf)
	globals.PrintDefaults()
	_, _ = fmt.Fprint(w, buf.String())

	if commands == nil {
		commands = []*Command{
			BuildCmd(nil, nil),
			CheckCmd(nil, nil),
			PrintConfigCmd(nil),
		}
	}

	fprintln(w)
	fprintln(w, "Commands:")

	for _, c := range commands {
		fprintln(w, c.HelpLine())
	}
}
