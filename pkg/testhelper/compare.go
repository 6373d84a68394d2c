package testhelper

import (
	"fmt"
	"math"

	"github.com/AndreyAkinshin/benchcmp/internal/dataset"
	"github.com/AndreyAkinshin/benchcmp/internal/extract"
	"github.com/AndreyAkinshin/benchcmp/internal/output"
	"github.com/AndreyAkinshin/benchcmp/internal/validation"
)

// Tolerance is an absolute/relative threshold pair. A zero threshold is not
// checked.
type Tolerance struct {
	Absolute float64
	Relative float64
}

// CompareOptions configures output comparison behavior.
type CompareOptions struct {
	// Tag selects tagged extraction from lines starting with it. Empty selects
	// table extraction.
	Tag string

	// Tolerance applies to every field without an entry in Fields.
	Tolerance Tolerance

	// Fields overrides Tolerance per field.
	Fields map[string]Tolerance

	// Ignore lists fields left out of the comparison.
	Ignore []string
}

// DefaultOptions returns table extraction with a relative tolerance of 1e-9.
func DefaultOptions() CompareOptions {
	return CompareOptions{
		Tolerance: Tolerance{Relative: 1e-9},
	}
}

// ValidateOptions checks that every threshold is finite and non-negative.
func ValidateOptions(opts CompareOptions) error {
	if err := validateTolerance("Tolerance", opts.Tolerance); err != nil {
		return err
	}
	for field, tol := range opts.Fields {
		if err := validateTolerance(fmt.Sprintf("Fields[%q]", field), tol); err != nil {
			return err
		}
	}
	return nil
}

func validateTolerance(name string, tol Tolerance) error {
	for _, v := range []float64{tol.Absolute, tol.Relative} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("invalid %s: thresholds must be finite and non-negative, got %v", name, v)
		}
	}
	return nil
}

// CompareOutput reports whether actual matches expected. A warning counts as
// a match.
// Panics if opts is invalid (use ValidateOptions to check beforehand).
func CompareOutput(expected, actual string, opts CompareOptions) bool {
	ok, _ := Compare(expected, actual, opts)
	return ok
}

// Compare extracts data from the expected and actual program output and
// compares it. It returns false only if the comparison fails, together with
// the messages of the checks that did not pass. An extraction error is a
// mismatch and is reported in the message.
// Panics if opts is invalid (use ValidateOptions to check beforehand).
func Compare(expected, actual string, opts CompareOptions) (bool, string) {
	if err := ValidateOptions(opts); err != nil {
		panic("testhelper.Compare: " + err.Error())
	}

	benchmark, test, err := extractBoth(expected, actual, opts)
	if err != nil {
		return false, err.Error()
	}
	res := validation.CompareData(benchmark, test, toleranceTable(opts), opts.Ignore...)
	return !res.Status.Failed(), res.Message
}

// FormatComparisonResult describes a comparison for a test failure message,
// with the extracted data laid out side by side.
func FormatComparisonResult(expected, actual string, opts CompareOptions) string {
	ok, msg := Compare(expected, actual, opts)
	if ok && msg == "" {
		return "outputs match"
	}
	benchmark, test, err := extractBoth(expected, actual, opts)
	if err != nil {
		return msg
	}
	return msg + "\n" + output.FormatDataTable(
		[]string{"expected", "actual"},
		[]dataset.DataSet{benchmark, test},
	)
}

func extractBoth(expected, actual string, opts CompareOptions) (dataset.DataSet, dataset.DataSet, error) {
	var e extract.Extractor = &extract.TableExtractor{}
	if opts.Tag != "" {
		e = &extract.TagExtractor{Tag: opts.Tag}
	}
	benchmark, err := e.Extract(expected)
	if err != nil {
		return dataset.DataSet{}, dataset.DataSet{}, fmt.Errorf("expected: %w", err)
	}
	test, err := e.Extract(actual)
	if err != nil {
		return dataset.DataSet{}, dataset.DataSet{}, fmt.Errorf("actual: %w", err)
	}
	return benchmark, test, nil
}

func toleranceTable(opts CompareOptions) validation.ToleranceTable {
	table := validation.ToleranceTable{
		Default: validation.NewTolerance(opts.Tolerance.Absolute, opts.Tolerance.Relative),
	}
	if len(opts.Fields) > 0 {
		table.Fields = make(map[string]validation.Tolerance, len(opts.Fields))
		for field, tol := range opts.Fields {
			table.Fields[field] = validation.NewTolerance(tol.Absolute, tol.Relative)
		}
	}
	return table
}
