package validation

import (
	"strings"

	"github.com/AndreyAkinshin/benchcmp/internal/dataset"
)

// IncomparableMessage is reported when benchmark and test data differ in shape.
const IncomparableMessage = "Different sets of data extracted from benchmark and test."

// ToleranceTable assigns a Tolerance to every field: an override from Fields
// when one exists, Default otherwise.
type ToleranceTable struct {
	Default Tolerance
	Fields  map[string]Tolerance
}

// For returns the Tolerance that applies to field.
func (t ToleranceTable) For(field string) Tolerance {
	if tol, ok := t.Fields[field]; ok {
		return tol
	}
	return t.Default
}

// Result is the outcome of comparing two DataSets.
type Result struct {
	Comparable bool   // false if the DataSets differ in fields or lengths
	Status     Status // overall verdict
	Message    string // newline-separated messages of the checks that did not pass
}

// CompareData compares test against benchmark field by field.
//
// Fields named in ignore are left out of both sides; naming a field that is
// absent is not an error. If the remaining DataSets differ in field names or in
// the length of any field, the result is not comparable and fails without
// looking at values. Otherwise every value pair is validated with the field's
// Tolerance and the worst Status wins.
func CompareData(benchmark, test dataset.DataSet, tolerances ToleranceTable, ignore ...string) Result {
	benchmark = benchmark.Without(ignore...)
	test = test.Without(ignore...)

	if !dataset.SameShape(benchmark, test) {
		return Result{
			Comparable: false,
			Status:     Fail,
			Message:    IncomparableMessage,
		}
	}

	status := Pass
	var msgs []string
	for _, field := range benchmark.Fields() {
		tol := tolerances.For(field)
		for i := 0; i < benchmark.Count(field); i++ {
			st, msg := tol.Validate(test.At(field, i), benchmark.At(field, i), field)
			status = status.Combine(st)
			if !st.Passed() && msg != "" {
				msgs = append(msgs, msg)
			}
		}
	}

	return Result{
		Comparable: true,
		Status:     status,
		Message:    strings.Join(msgs, "\n"),
	}
}
