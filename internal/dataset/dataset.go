// Package dataset provides the field-to-values structure shared by extraction
// and comparison.
//
// A DataSet maps unique field names to ordered sequences of scalar values. It is
// assembled with a Builder and is read-only once built: accessors hand out
// copies, so callers can never alter the sequences behind a DataSet.
package dataset

import "sort"

// DataSet is an immutable mapping from field name to an ordered value sequence.
// The zero DataSet is empty and ready to use.
type DataSet struct {
	fields []string
	values map[string][]Value
}

// FromFloats builds a DataSet from plain numeric sequences. Fields are
// registered in sorted order.
func FromFloats(m map[string][]float64) DataSet {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	b := NewBuilder()
	for _, name := range names {
		b.Declare(name)
		for _, f := range m[name] {
			b.Append(name, Number(f))
		}
	}
	return b.Build()
}

// Len returns the number of fields.
func (d DataSet) Len() int {
	return len(d.fields)
}

// Fields returns field names in insertion order.
func (d DataSet) Fields() []string {
	out := make([]string, len(d.fields))
	copy(out, d.fields)
	return out
}

// SortedFields returns field names in lexical order.
func (d DataSet) SortedFields() []string {
	out := d.Fields()
	sort.Strings(out)
	return out
}

// Has reports whether the field exists, even with an empty sequence.
func (d DataSet) Has(field string) bool {
	_, ok := d.values[field]
	return ok
}

// Count returns the sequence length of field, or 0 if it does not exist.
func (d DataSet) Count(field string) int {
	return len(d.values[field])
}

// At returns the i-th value of field. It panics if the index is out of range,
// like a slice access.
func (d DataSet) At(field string, i int) Value {
	return d.values[field][i]
}

// Values returns a copy of the sequence for field.
func (d DataSet) Values(field string) ([]Value, bool) {
	vals, ok := d.values[field]
	if !ok {
		return nil, false
	}
	out := make([]Value, len(vals))
	copy(out, vals)
	return out, true
}

// Without returns a DataSet lacking the named fields. Names that are not
// present are ignored. The receiver is left untouched; sequences are shared
// between the two, which is safe because neither can be modified.
func (d DataSet) Without(fields ...string) DataSet {
	if len(fields) == 0 {
		return d
	}
	drop := make(map[string]bool, len(fields))
	for _, f := range fields {
		drop[f] = true
	}

	out := DataSet{values: make(map[string][]Value, len(d.values))}
	for _, name := range d.fields {
		if drop[name] {
			continue
		}
		out.fields = append(out.fields, name)
		out.values[name] = d.values[name]
	}
	return out
}

// SameShape reports whether both DataSets have identical field names and, for
// every field, sequences of equal length.
func SameShape(a, b DataSet) bool {
	if len(a.values) != len(b.values) {
		return false
	}
	for name, vals := range a.values {
		other, ok := b.values[name]
		if !ok || len(other) != len(vals) {
			return false
		}
	}
	return true
}

// Builder accumulates fields and values for a DataSet.
// A Builder must not be used concurrently.
type Builder struct {
	fields []string
	values map[string][]Value
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{values: make(map[string][]Value)}
}

// Declare registers a field without adding values. Declaring an existing field
// is a no-op.
func (b *Builder) Declare(field string) {
	if _, ok := b.values[field]; ok {
		return
	}
	b.fields = append(b.fields, field)
	b.values[field] = []Value{}
}

// Append adds v to the end of field's sequence, declaring the field if needed.
func (b *Builder) Append(field string, v Value) {
	b.Declare(field)
	b.values[field] = append(b.values[field], v)
}

// Build freezes the accumulated data into a DataSet and resets the Builder,
// so later appends cannot reach the returned value.
func (b *Builder) Build() DataSet {
	d := DataSet{fields: b.fields, values: b.values}
	b.fields = nil
	b.values = make(map[string][]Value)
	return d
}
