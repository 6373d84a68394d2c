// Package extract turns raw program output into DataSets.
//
// Two conventions are supported: tagged lines, where a fixed leading literal
// marks a line carrying a label and a number, and whitespace-delimited tables,
// where rows without any numbers act as headers for the rows that follow.
package extract

import (
	"strings"
	"unicode"

	"github.com/AndreyAkinshin/benchcmp/internal/dataset"
	"github.com/AndreyAkinshin/benchcmp/internal/errors"
)

// DefaultField names values whose label reduces to nothing.
const DefaultField = "data"

// ExtractTagged collects one value from every line that starts with tag
// (leading whitespace allowed).
//
// For a line such as
//
//	[QMC]  Total energy =  -1.2567  +/- 0.0003
//
// with tag "[QMC]", the tokens before the first number form the key
// ("Total_energy") and only that first number is kept. A trailing "=" or ":"
// is removed from the key. A line with nothing after the tag, or with no
// number after it, is a MalformedLine error.
func ExtractTagged(tag, text string) (dataset.DataSet, error) {
	if tag == "" {
		return dataset.DataSet{}, errors.Config("data tag must not be empty")
	}

	b := dataset.NewBuilder()
	for i, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), tag) {
			continue
		}
		field, val, err := parseTaggedLine(tag, line, i+1)
		if err != nil {
			return dataset.DataSet{}, err
		}
		b.Append(field, val)
	}
	return b.Build(), nil
}

func parseTaggedLine(tag, line string, lineNo int) (string, dataset.Value, error) {
	words := strings.Fields(line)
	if len(words) < 2 {
		return "", dataset.Value{}, errors.MalformedLine(lineNo, "no data after tag %q", tag)
	}

	var key []string
	for _, word := range words[1:] {
		if f, ok := dataset.ParseNumber(word); ok {
			return fieldName(key, words[0]), dataset.Number(f), nil
		}
		key = append(key, word)
	}
	return "", dataset.Value{}, errors.MalformedLine(lineNo, "no numeric value after tag %q", tag)
}

// fieldName joins the key tokens into a field name. With no key tokens at all
// the tag token itself names the field.
func fieldName(key []string, tagWord string) string {
	if len(key) == 0 {
		if name := trimSeparator(tagWord); name != "" {
			return name
		}
		return DefaultField
	}
	if last := key[len(key)-1]; last == "=" || last == ":" {
		key = key[:len(key)-1]
	}
	if name := trimSeparator(strings.Join(key, "_")); name != "" {
		return name
	}
	return DefaultField
}

func trimSeparator(s string) string {
	if strings.HasSuffix(s, "=") || strings.HasSuffix(s, ":") {
		return s[:len(s)-1]
	}
	return s
}
