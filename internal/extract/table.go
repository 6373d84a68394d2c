package extract

import (
	"strings"

	"github.com/AndreyAkinshin/benchcmp/internal/dataset"
	"github.com/AndreyAkinshin/benchcmp/internal/errors"
)

// ExtractTable reads a whitespace-delimited table into a DataSet.
//
// Any row without a single number is a header; it names the columns of the
// rows below it until the next header. Rows with at least one number are data
// and are matched to the active header by position, so
//
//	a  b  c
//	1  2  3
//	4  5  6
//	a  b  d  e
//	7  8  9  6
//
// gives a=(1 4 7) b=(2 5 8) c=(3 6) d=(9) e=(6). Non-numeric cells in a data
// row are kept as tokens. A blank line is a header with no columns.
func ExtractTable(text string) (dataset.DataSet, error) {
	b := dataset.NewBuilder()
	var header []string
	seenHeader := false

	for i, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		row := make([]dataset.Value, len(words))
		numeric := false
		for j, word := range words {
			row[j] = dataset.Parse(word)
			numeric = numeric || row[j].IsNumeric()
		}

		if !numeric {
			header = words
			seenHeader = true
			for _, name := range header {
				b.Declare(name)
			}
			continue
		}

		switch {
		case !seenHeader:
			return dataset.DataSet{}, errors.MalformedLine(i+1, "data row before any header row")
		case len(header) == 0:
			return dataset.DataSet{}, errors.MalformedLine(i+1, "data row under an empty header")
		case len(row) > len(header):
			return dataset.DataSet{}, errors.MalformedLine(i+1,
				"data row has %d columns but its header has %d", len(row), len(header))
		}

		// Repeated header names accumulate onto the same field.
		for j, v := range row {
			b.Append(header[j], v)
		}
	}
	return b.Build(), nil
}
