package testhelper

import (
	"math"
	"strings"
	"testing"
)

func TestCompare_Tagged(t *testing.T) {
	t.Parallel()
	opts := CompareOptions{Tag: "E:", Tolerance: Tolerance{Absolute: 1e-6}}

	tests := []struct {
		name    string
		actual  string
		wantOK  bool
		wantMsg string
	}{
		{"identical", "E: 1.0\n", true, ""},
		{"within tolerance", "E: 1.0000005\n", true, ""},
		{"outside tolerance", "E: 1.000002\n", false, "E: absolute error"},
		{"missing field", "F: 1.0\n", false, "Different sets of data"},
		{"malformed", "E:\n", false, "actual: line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, msg := Compare("E: 1.0\n", tt.actual, opts)
			if ok != tt.wantOK {
				t.Errorf("Compare() ok = %v, want %v (msg %q)", ok, tt.wantOK, msg)
			}
			if tt.wantMsg == "" && msg != "" {
				t.Errorf("Compare() msg = %q, want empty", msg)
			}
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("Compare() msg = %q, want it to contain %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestCompare_TableWithFieldsAndIgnore(t *testing.T) {
	t.Parallel()
	expected := "x y time\n1 100 5.0\n"
	actual := "x y time\n1 101 9.0\n"

	opts := CompareOptions{
		Tolerance: Tolerance{Absolute: 1e-9},
		Fields:    map[string]Tolerance{"y": {Relative: 0.05}},
	}
	if CompareOutput(expected, actual, opts) {
		t.Error("expected mismatch on time")
	}

	opts.Ignore = []string{"time"}
	if !CompareOutput(expected, actual, opts) {
		ok, msg := Compare(expected, actual, opts)
		t.Errorf("Compare() = %v, %q; want match", ok, msg)
	}
}

func TestCompare_DefaultOptions(t *testing.T) {
	t.Parallel()
	if !CompareOutput("a\n1\n", "a\n1.0000000000001\n", DefaultOptions()) {
		t.Error("expected match within default relative tolerance")
	}
	if CompareOutput("a\n1\n", "a\n1.001\n", DefaultOptions()) {
		t.Error("expected mismatch outside default relative tolerance")
	}
}

func TestValidateOptions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		opts    CompareOptions
		wantErr bool
	}{
		{"default", DefaultOptions(), false},
		{"zero", CompareOptions{}, false},
		{"negative absolute", CompareOptions{Tolerance: Tolerance{Absolute: -1}}, true},
		{"nan relative", CompareOptions{Tolerance: Tolerance{Relative: math.NaN()}}, true},
		{"infinite field", CompareOptions{Fields: map[string]Tolerance{"E": {Absolute: math.Inf(1)}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateOptions(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOptions() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompare_PanicsOnInvalidOptions(t *testing.T) {
	t.Parallel()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !strings.HasPrefix(r.(string), "testhelper.Compare: ") {
			t.Errorf("panic = %v", r)
		}
	}()
	Compare("", "", CompareOptions{Tolerance: Tolerance{Relative: -1}})
}

func TestFormatComparisonResult(t *testing.T) {
	t.Parallel()
	opts := CompareOptions{Tag: "E:", Tolerance: Tolerance{Absolute: 1e-6}}

	if got := FormatComparisonResult("E: 1\n", "E: 1\n", opts); got != "outputs match" {
		t.Errorf("FormatComparisonResult() = %q", got)
	}

	got := FormatComparisonResult("E: 1\n", "E: 2\n", opts)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("FormatComparisonResult() = %q, want message plus a 3-line table", got)
	}
	if !strings.HasPrefix(lines[0], "E: absolute error 1.00e+00") {
		t.Errorf("message line = %q", lines[0])
	}
	if f := strings.Fields(lines[2]); len(f) != 2 || f[0] != "expected" || f[1] != "1" {
		t.Errorf("expected row = %q", lines[2])
	}
	if f := strings.Fields(lines[3]); len(f) != 2 || f[0] != "actual" || f[1] != "2" {
		t.Errorf("actual row = %q", lines[3])
	}
}
