// Package integration runs benchcmp end to end against recorded program output.
package integration

import (
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/AndreyAkinshin/benchcmp/internal/config"
	"github.com/AndreyAkinshin/benchcmp/internal/extract"
	"github.com/AndreyAkinshin/benchcmp/internal/validation"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

// compareFixture compares test against benchmark.out in a fixture directory
// using that directory's config.
func compareFixture(t *testing.T, fixture, test string) validation.Result {
	t.Helper()
	dir := filepath.Join(fixturesDir(), fixture)

	cfg, warnings, err := config.LoadAndValidate(filepath.Join(dir, config.DefaultFileName))
	if err != nil {
		t.Fatalf("failed to load %s config: %v", fixture, err)
	}
	if len(warnings) > 0 {
		t.Errorf("unexpected config warnings: %v", warnings)
	}

	e, err := cfg.Extractor()
	if err != nil {
		t.Fatalf("Extractor() error = %v", err)
	}
	benchmark, err := extract.ExtractFile(e, filepath.Join(dir, "benchmark.out"))
	if err != nil {
		t.Fatalf("failed to extract benchmark: %v", err)
	}
	got, err := extract.ExtractFile(e, filepath.Join(dir, test))
	if err != nil {
		t.Fatalf("failed to extract %s: %v", test, err)
	}
	return validation.CompareData(benchmark, got, cfg.ToleranceTable(), cfg.IgnoreFields...)
}
