package cli

import (
	"fmt"
	"io"
)

// IO separates command output from diagnostics.
//
// The generated document goes to stdout. Warnings (skipped directories,
// broken links) go to stderr.
type IO struct {
	out      io.Writer
	errOut   io.Writer
	warnings []string
	started  bool
	strict   bool
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Warn records a non-fatal diagnostic.
//
// Warnings are printed to stderr at both the START and END of output,
// ensuring visibility regardless of truncation or piping (head/tail).
// They only affect the exit code in strict mode, see [IO.SetStrict].
//
// Output to stdout (via Println) still occurs - warnings don't suppress
// normal output.
func (o *IO) Warn(issue string) {
	o.warnings = append(o.warnings, issue)
}

// Warnf is like [IO.Warn] with formatting.
func (o *IO) Warnf(format string, a ...any) {
	o.Warn(fmt.Sprintf(format, a...))
}

// SetStrict makes [IO.Finish] report failure when any warning was recorded.
func (o *IO) SetStrict(strict bool) {
	o.strict = strict
}

// Println writes to stdout. On first call, any collected warnings
// are printed to stderr first.
func (o *IO) Println(a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout. On first call, any collected
// warnings are printed to stderr first.
func (o *IO) Printf(format string, a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Finish prints warnings to stderr and returns the exit code.
// Returns 1 if warnings were recorded in strict mode, 0 otherwise.
func (o *IO) Finish() int {
	// If no output happened but we have warnings, print them at "start" position
	if !o.started && len(o.warnings) > 0 {
		o.flushWarningsStart()

		return o.exitCode()
	}

	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}

	return o.exitCode()
}

func (o *IO) exitCode() int {
	if o.strict && len(o.warnings) > 0 {
		return 1
	}

	return 0
}

func (o *IO) flushWarningsStart() {
	if !o.started && len(o.warnings) > 0 {
		for _, w := range o.warnings {
			_, _ = fmt.Fprintln(o.errOut, "warning:", w)
		}

		o.started = true
	}
}
