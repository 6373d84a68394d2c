package validation

import (
	"fmt"
	"math"

	"github.com/AndreyAkinshin/benchcmp/internal/dataset"
)

// Tolerance holds the thresholds under which two numbers are considered equal.
// A nil or zero threshold is not checked; with neither set, numbers always
// pass and only tokens are compared (for exact equality).
type Tolerance struct {
	Absolute *float64
	Relative *float64
}

// NewTolerance builds a Tolerance from plain numbers; zero leaves a threshold unset.
func NewTolerance(absolute, relative float64) Tolerance {
	var t Tolerance
	if absolute != 0 {
		t.Absolute = &absolute
	}
	if relative != 0 {
		t.Relative = &relative
	}
	return t
}

func (t Tolerance) absolute() (float64, bool) {
	if t.Absolute == nil || *t.Absolute == 0 {
		return 0, false
	}
	return *t.Absolute, true
}

func (t Tolerance) relative() (float64, bool) {
	if t.Relative == nil || *t.Relative == 0 {
		return 0, false
	}
	return *t.Relative, true
}

func (t Tolerance) String() string {
	abs, hasAbs := t.absolute()
	rel, hasRel := t.relative()
	switch {
	case hasAbs && hasRel:
		return fmt.Sprintf("absolute %.2e, relative %.2e", abs, rel)
	case hasAbs:
		return fmt.Sprintf("absolute %.2e", abs)
	case hasRel:
		return fmt.Sprintf("relative %.2e", rel)
	}
	return "exact"
}

// Validate compares a test value against its benchmark and returns the Status
// with a message describing the outcome. If field is not empty the message is
// prefixed with it.
//
// Numbers are checked against each threshold that is set (strictly below),
// and the worst outcome is kept; when several checks fail the message reports
// the last. NaN on either side always fails. If either value is a token the
// two must be exactly equal.
func (t Tolerance) Validate(test, benchmark dataset.Value, field string) (Status, string) {
	status, msg := t.validate(test, benchmark)
	if field != "" {
		msg = field + ": " + msg
	}
	return status, msg
}

func (t Tolerance) validate(test, benchmark dataset.Value) (Status, string) {
	if !test.IsNumeric() || !benchmark.IsNumeric() {
		if !test.Equal(benchmark) {
			return Fail, "values are different."
		}
		return Pass, "values are within tolerance."
	}

	tv, bv := test.Float(), benchmark.Float()
	if math.IsNaN(tv) || math.IsNaN(bv) {
		return Fail, "cannot compare NaNs."
	}
	// Covers matching infinities, whose difference is NaN.
	if tv == bv {
		return Pass, "values are within tolerance."
	}

	status := Pass
	msg := "values are within tolerance."
	diff := tv - bv

	if threshold, ok := t.absolute(); ok {
		err := math.Abs(diff)
		passed := err < threshold
		if !passed {
			msg = fmt.Sprintf("absolute error %.2e greater than %.2e.", err, threshold)
		}
		status = status.Combine(StatusOf(passed))
	}

	if threshold, ok := t.relative(); ok {
		var err float64
		// Equal values returned above, so a zero benchmark has a nonzero diff.
		if bv == 0 {
			err = math.Inf(1)
		} else {
			err = math.Abs(diff / bv)
		}
		passed := err < threshold
		if !passed {
			msg = fmt.Sprintf("relative error %.2e greater than %.2e.", err, threshold)
		}
		status = status.Combine(StatusOf(passed))
	}

	return status, msg
}
