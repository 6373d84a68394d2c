package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AndreyAkinshin/benchcmp/internal/dataset"
)

// FormatDataTable lays out DataSets side by side, one row per label:
//
//	           E     E     n
//	benchmark  1.5   -2    3
//	test       1.51  -2    3
//
// Columns follow the sorted union of the field names of all DataSets, one
// column per value; a field repeats its name over each of its columns. Cells missing from
// a DataSet are left blank. Trailing spaces are trimmed.
func FormatDataTable(labels []string, sets []dataset.DataSet) string {
	if len(sets) == 0 {
		return ""
	}

	labelWidth := 0
	for _, label := range labels {
		labelWidth = max(labelWidth, len(label))
	}

	type column struct {
		field string
		index int
		width int
	}
	var columns []column
	for _, field := range unionFields(sets) {
		width := len(field)
		n := 0
		for _, d := range sets {
			n = max(n, d.Count(field))
			for i := 0; i < d.Count(field); i++ {
				width = max(width, len(d.At(field, i).String()))
			}
		}
		for i := 0; i < n; i++ {
			columns = append(columns, column{field: field, index: i, width: width})
		}
	}

	var lines []string
	header := []string{fmt.Sprintf("%-*s", labelWidth, "")}
	for _, c := range columns {
		header = append(header, fmt.Sprintf("%-*s", c.width, c.field))
	}
	lines = append(lines, strings.Join(header, "  "))

	for i, label := range labels {
		if i >= len(sets) {
			break
		}
		row := []string{fmt.Sprintf("%-*s", labelWidth, label)}
		for _, c := range columns {
			cell := ""
			if c.index < sets[i].Count(c.field) {
				cell = sets[i].At(c.field, c.index).String()
			}
			row = append(row, fmt.Sprintf("%-*s", c.width, cell))
		}
		lines = append(lines, strings.Join(row, "  "))
	}

	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}

func unionFields(sets []dataset.DataSet) []string {
	seen := make(map[string]bool)
	var fields []string
	for _, d := range sets {
		for _, field := range d.Fields() {
			if !seen[field] {
				seen[field] = true
				fields = append(fields, field)
			}
		}
	}
	sort.Strings(fields)
	return fields
}
