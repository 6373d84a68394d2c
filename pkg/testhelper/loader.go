// Package testhelper lets Go test suites check program output against
// recorded benchmark output with benchcmp's extraction and tolerance rules.
//
// A suite is a directory of benchmark outputs (*.out) with an optional
// benchcmp.yaml holding the comparison options.
//
// Example usage in a Go test:
//
//	func TestSolver(t *testing.T) {
//	    suite, opts, err := testhelper.LoadSuite("testdata/solver")
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//
//	    for _, b := range suite {
//	        t.Run(b.Name, func(t *testing.T) {
//	            actual := runSolver(b.Name)
//	            if !testhelper.CompareOutput(b.Output, actual, opts) {
//	                t.Error(testhelper.FormatComparisonResult(b.Output, actual, opts))
//	            }
//	        })
//	    }
//	}
package testhelper

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/AndreyAkinshin/benchcmp/internal/config"
	"github.com/AndreyAkinshin/benchcmp/internal/extract"
)

// Benchmark is a recorded program output.
type Benchmark struct {
	// Name is derived from the file name without extension.
	Name string

	// Suite is the directory name.
	Suite string

	// Path is the file the output was read from.
	Path string

	// Output is the recorded text.
	Output string
}

// LoadSuite loads every *.out file in dir, sorted by name, and the options
// from dir/benchcmp.yaml. Without a config file DefaultOptions is returned.
func LoadSuite(dir string) ([]Benchmark, CompareOptions, error) {
	opts := DefaultOptions()
	cfgPath := filepath.Join(dir, config.DefaultFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		opts, err = LoadOptions(cfgPath)
		if err != nil {
			return nil, CompareOptions{}, err
		}
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.out"))
	if err != nil {
		return nil, CompareOptions{}, err
	}

	suite := filepath.Base(dir)
	var benchmarks []Benchmark
	for _, f := range files {
		b, err := LoadBenchmark(f)
		if err != nil {
			return nil, CompareOptions{}, err
		}
		b.Suite = suite
		benchmarks = append(benchmarks, *b)
	}
	return benchmarks, opts, nil
}

// LoadBenchmark reads a single recorded output.
func LoadBenchmark(path string) (*Benchmark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Benchmark{Name: name, Path: path, Output: string(data)}, nil
}

// LoadOptions reads comparison options from a benchcmp config file.
func LoadOptions(path string) (CompareOptions, error) {
	cfg, _, err := config.LoadAndValidate(path)
	if err != nil {
		return CompareOptions{}, err
	}
	if _, err := cfg.Extractor(); err != nil {
		return CompareOptions{}, err
	}

	var opts CompareOptions
	if cfg.Extract.Mode != extract.ModeTable {
		opts.Tag = cfg.Extract.Tag
	}
	opts.Tolerance = fromConfig(cfg.Tolerance)
	if len(cfg.Fields) > 0 {
		opts.Fields = make(map[string]Tolerance, len(cfg.Fields))
		for field, tol := range cfg.Fields {
			opts.Fields[field] = fromConfig(tol)
		}
	}
	opts.Ignore = append([]string(nil), cfg.IgnoreFields...)
	return opts, nil
}

func fromConfig(tc config.ToleranceConfig) Tolerance {
	var tol Tolerance
	if tc.Absolute != nil {
		tol.Absolute = *tc.Absolute
	}
	if tc.Relative != nil {
		tol.Relative = *tc.Relative
	}
	return tol
}
