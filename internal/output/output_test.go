package output

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/benchcmp/internal/dataset"
	"github.com/AndreyAkinshin/benchcmp/internal/validation"
)

// newTestWriter creates a Writer with captured output for testing.
func newTestWriter() (*Writer, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	w := &Writer{
		out:   stdout,
		err:   stderr,
		color: false, // Disable color for predictable test output
		quiet: false,
	}
	return w, stdout, stderr
}

func TestNew(t *testing.T) {
	w := New()
	if w == nil {
		t.Fatal("New() returned nil")
	}
	if w.out == nil || w.err == nil {
		t.Error("writers are nil")
	}
}

func TestWriter_Println(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Println("hello %s", "world")

	if got := stdout.String(); got != "hello world\n" {
		t.Errorf("Println() = %q, want %q", got, "hello world\n")
	}
}

func TestWriter_Errorln(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.Errorln("error %d", 42)

	if got := stderr.String(); got != "error 42\n" {
		t.Errorf("Errorln() = %q, want %q", got, "error 42\n")
	}
}

func TestWriter_Quiet(t *testing.T) {
	w, stdout, _ := newTestWriter()
	w.SetQuiet(true)

	w.Info("info")
	w.SummaryHeader("Comparison")
	w.SummaryItem("Mode", "Tagged")
	w.SummaryFailed("Status", "Fail")
	w.Hint("hint")

	if stdout.Len() != 0 {
		t.Errorf("quiet writer printed %q", stdout.String())
	}
}

func TestWriter_Summary(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.SummaryHeader("Comparison")
	w.SummaryItem("Mode", "Tagged")
	w.SummaryPassed("Status", "Pass")
	w.SummaryWarning("Status", "Warning")

	want := "\n=== Comparison ===\n  Mode: Tagged\n  Status: Pass\n  Status: Warning\n"
	if got := stdout.String(); got != want {
		t.Errorf("summary output = %q, want %q", got, want)
	}
}

func TestWriter_ErrorPrefix(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.ErrorPrefix("bad %s", "input")

	if got := stderr.String(); got != "benchcmp: bad input\n" {
		t.Errorf("ErrorPrefix() = %q", got)
	}
}

func TestWriter_WarningColor(t *testing.T) {
	stderr := &bytes.Buffer{}
	w := NewWithWriters(&bytes.Buffer{}, stderr, true)

	w.Warning("unknown field %q", "x")

	got := stderr.String()
	if !strings.Contains(got, yellow) || !strings.Contains(got, `warning: unknown field "x"`) {
		t.Errorf("Warning() = %q", got)
	}
}

func TestStatusReporter_Verbose(t *testing.T) {
	tests := []struct {
		name   string
		status validation.Status
		msg    string
		vspace bool
		want   string
	}{
		{"pass", validation.Pass, "", true, "Passed.\n\n"},
		{"warning with message", validation.Warning, "E: relative error", true, "WARNING.\nE: relative error\n\n"},
		{"fail without vspace", validation.Fail, "bad", false, "**FAILED**.\nbad\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			bw := bufio.NewWriter(&buf)
			r := NewStatusReporter(bw, true)
			r.SetVerticalSpace(tt.vspace)

			if err := r.Report(tt.status, tt.msg); err != nil {
				t.Fatalf("Report() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Report() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusReporter_Terse(t *testing.T) {
	var buf bytes.Buffer
	r := NewStatusReporter(bufio.NewWriter(&buf), false)

	for _, st := range []validation.Status{validation.Pass, validation.Warning, validation.Fail, validation.Pass} {
		if err := r.Report(st, "ignored in terse mode"); err != nil {
			t.Fatalf("Report() error = %v", err)
		}
	}

	// Each symbol must be visible without an explicit flush by the caller.
	if got := buf.String(); got != ".WF." {
		t.Errorf("terse output = %q, want %q", got, ".WF.")
	}
}

type failingSink struct{ flushed bool }

func (s *failingSink) WriteString(string) (int, error) { return 0, errors.New("disk full") }
func (s *failingSink) Flush() error                    { s.flushed = true; return nil }

func TestStatusReporter_WriteError(t *testing.T) {
	sink := &failingSink{}
	r := NewStatusReporter(sink, false)

	if err := r.Report(validation.Fail, ""); err == nil {
		t.Error("Report() error = nil, want write error")
	}
	if sink.flushed {
		t.Error("Report() flushed after a failed write")
	}
}

func TestFormatDataTable(t *testing.T) {
	bench := dataset.FromFloats(map[string][]float64{"E": {1.5, -2}, "n": {3}})
	test := dataset.FromFloats(map[string][]float64{"E": {1.51, -2}, "n": {3}})

	got := FormatDataTable([]string{"benchmark", "test"}, []dataset.DataSet{bench, test})
	want := strings.Join([]string{
		"           E     E     n",
		"benchmark  1.5   -2    3",
		"test       1.51  -2    3",
	}, "\n")
	if got != want {
		t.Errorf("FormatDataTable() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatDataTable_UnevenSets(t *testing.T) {
	a := dataset.FromFloats(map[string][]float64{"x": {1}})
	b := dataset.FromFloats(map[string][]float64{"x": {1, 22}})

	got := FormatDataTable([]string{"a", "b"}, []dataset.DataSet{a, b})
	want := strings.Join([]string{
		"   x   x",
		"a  1",
		"b  1   22",
	}, "\n")
	if got != want {
		t.Errorf("FormatDataTable() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatDataTable_FieldsFromEverySet(t *testing.T) {
	bench := dataset.FromFloats(map[string][]float64{"x": {1}})
	test := dataset.FromFloats(map[string][]float64{"w": {7}, "x": {1}})

	got := FormatDataTable([]string{"benchmark", "test"}, []dataset.DataSet{bench, test})
	want := strings.Join([]string{
		"           w  x",
		"benchmark     1",
		"test       7  1",
	}, "\n")
	if got != want {
		t.Errorf("FormatDataTable() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatDataTable_Empty(t *testing.T) {
	if got := FormatDataTable(nil, nil); got != "" {
		t.Errorf("FormatDataTable(nil, nil) = %q, want empty", got)
	}
}
