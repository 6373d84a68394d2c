// Package validation compares extracted benchmark and test data.
//
// Individual values are checked by a Tolerance, and the outcomes are folded
// into a three-valued Status where the worst outcome wins.
package validation

import "fmt"

// Status is the verdict of a comparison. Statuses are totally ordered
// Pass < Warning < Fail.
type Status uint8

const (
	// Pass means every check succeeded.
	Pass Status = iota
	// Warning means some, but not all, checks succeeded.
	Warning
	// Fail means no check succeeded.
	Fail
)

// StatusOf derives a Status from check outcomes: Pass if all are true, Fail
// if none are, Warning otherwise. No outcomes at all is a Pass.
func StatusOf(checks ...bool) Status {
	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	switch {
	case passed == len(checks):
		return Pass
	case passed == 0:
		return Fail
	default:
		return Warning
	}
}

// Combine returns the worse of s and other. It is commutative and
// associative, Pass is its identity and Fail absorbs everything.
func (s Status) Combine(other Status) Status {
	if other > s {
		return other
	}
	return s
}

// Worst folds statuses with Combine, starting from Pass.
func Worst(statuses ...Status) Status {
	result := Pass
	for _, st := range statuses {
		result = result.Combine(st)
	}
	return result
}

// Compare returns -1, 0 or +1 depending on whether s is better than, equal to,
// or worse than other.
func (s Status) Compare(other Status) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	}
	return 0
}

// Passed reports whether s is Pass.
func (s Status) Passed() bool { return s == Pass }

// Warned reports whether s is Warning.
func (s Status) Warned() bool { return s == Warning }

// Failed reports whether s is Fail.
func (s Status) Failed() bool { return s == Fail }

// Label is the verbose form reported for a comparison.
func (s Status) Label() string {
	switch s {
	case Pass:
		return "Passed."
	case Warning:
		return "WARNING."
	default:
		return "**FAILED**."
	}
}

// Symbol is the single-character form reported in terse mode.
func (s Status) Symbol() string {
	switch s {
	case Pass:
		return "."
	case Warning:
		return "W"
	default:
		return "F"
	}
}

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warning:
		return "warning"
	case Fail:
		return "fail"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}
