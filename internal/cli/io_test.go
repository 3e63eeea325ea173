package cli

import (
	"bytes"
	"testing"
)

func Test_IO_Warnings_Printed_At_Start_And_End(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	o := NewIO(&out, &errOut)
	o.Warn("skipped notes: no mapper.json found")
	o.Println("# head_first_x_docs")

	if got, want := errOut.String(), "warning: skipped notes: no mapper.json found\n"; got != want {
		t.Fatalf("stderr before finish=%q, want=%q", got, want)
	}

	if got, want := o.Finish(), 0; got != want {
		t.Fatalf("exit=%d, want=%d", got, want)
	}

	want := "warning: skipped notes: no mapper.json found\nwarning: skipped notes: no mapper.json found\n"
	if got := errOut.String(); got != want {
		t.Fatalf("stderr=%q, want=%q", got, want)
	}

	if got, want := out.String(), "# head_first_x_docs\n"; got != want {
		t.Fatalf("stdout=%q, want=%q", got, want)
	}
}

func Test_IO_Warnings_Without_Output_Printed_Once(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	o := NewIO(&out, &errOut)
	o.Warnf("skipped %s: %s", "a", "reason")

	if got, want := o.Finish(), 0; got != want {
		t.Fatalf("exit=%d, want=%d", got, want)
	}

	if got, want := errOut.String(), "warning: skipped a: reason\n"; got != want {
		t.Fatalf("stderr=%q, want=%q", got, want)
	}
}

func Test_IO_Strict_Fails_Only_With_Warnings(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	o := NewIO(&out, &errOut)
	o.SetStrict(true)

	if got, want := o.Finish(), 0; got != want {
		t.Fatalf("exit without warnings=%d, want=%d", got, want)
	}

	o = NewIO(&out, &errOut)
	o.SetStrict(true)
	o.Warn("x")

	if got, want := o.Finish(), 1; got != want {
		t.Fatalf("exit with warnings=%d, want=%d", got, want)
	}
}
