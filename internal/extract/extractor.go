package extract

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AndreyAkinshin/benchcmp/internal/dataset"
	"github.com/AndreyAkinshin/benchcmp/internal/errors"
)

// Extraction modes.
const (
	ModeTagged = "tagged"
	ModeTable  = "table"
)

// Extractor defines the interface for turning output text into data.
type Extractor interface {
	// Extract parses text into a DataSet.
	Extract(text string) (dataset.DataSet, error)
	// Name returns the extraction mode.
	Name() string
}

// TagExtractor extracts data from lines starting with Tag.
type TagExtractor struct {
	Tag string
}

// Name returns the extractor name.
func (e *TagExtractor) Name() string {
	return ModeTagged
}

// Extract implements Extractor.
func (e *TagExtractor) Extract(text string) (dataset.DataSet, error) {
	return ExtractTagged(e.Tag, text)
}

// TableExtractor extracts data from whitespace-delimited tables.
type TableExtractor struct{}

// Name returns the extractor name.
func (e *TableExtractor) Name() string {
	return ModeTable
}

// Extract implements Extractor.
func (e *TableExtractor) Extract(text string) (dataset.DataSet, error) {
	return ExtractTable(text)
}

// New returns the extractor for mode. The tag is required for tagged mode and
// ignored otherwise.
func New(mode, tag string) (Extractor, error) {
	switch strings.ToLower(mode) {
	case "", ModeTagged:
		if tag == "" {
			return nil, errors.Config("tagged extraction requires a data tag")
		}
		return &TagExtractor{Tag: tag}, nil
	case ModeTable:
		return &TableExtractor{}, nil
	default:
		return nil, errors.Configf("unknown extraction mode %q (must be %q or %q)", mode, ModeTagged, ModeTable)
	}
}

// ExtractFile runs e over the contents of path. A missing file is reported as
// a MissingSource error before anything is read; errors from e carry the path.
func ExtractFile(e Extractor, path string) (dataset.DataSet, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return dataset.DataSet{}, errors.MissingSource(path)
		}
		return dataset.DataSet{}, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return dataset.DataSet{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return dataset.DataSet{}, fmt.Errorf("read %s: %w", path, err)
	}

	d, err := e.Extract(string(data))
	if err != nil {
		var be *errors.BenchcmpError
		if stderrors.As(err, &be) && be.Path == "" {
			be.Path = path
		}
		return dataset.DataSet{}, err
	}
	return d, nil
}

// ExtractTaggedFile is ExtractTagged over the contents of a file.
func ExtractTaggedFile(tag, path string) (dataset.DataSet, error) {
	return ExtractFile(&TagExtractor{Tag: tag}, path)
}

// ExtractTableFile is ExtractTable over the contents of a file.
func ExtractTableFile(path string) (dataset.DataSet, error) {
	return ExtractFile(&TableExtractor{}, path)
}
