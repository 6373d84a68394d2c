package integration

import (
	"path/filepath"
	"testing"

	"github.com/AndreyAkinshin/benchcmp/internal/extract"
	"github.com/AndreyAkinshin/benchcmp/internal/validation"
)

func TestQMCFixture_Extract(t *testing.T) {
	t.Parallel()
	ds, err := extract.ExtractTaggedFile("[QMC]", filepath.Join(fixturesDir(), "qmc", "benchmark.out"))
	if err != nil {
		t.Fatalf("ExtractTaggedFile() error = %v", err)
	}

	want := map[string]float64{
		"Total_energy":     -76.4197,
		"Variance":         0.2512,
		"Acceptance_ratio": 0.5123,
		"Walltime":         812.4,
	}
	if ds.Len() != len(want) {
		t.Errorf("Len() = %d, want %d (fields %v)", ds.Len(), len(want), ds.Fields())
	}
	for field, v := range want {
		if ds.Count(field) != 1 {
			t.Errorf("Count(%q) = %d, want 1", field, ds.Count(field))
			continue
		}
		if got := ds.At(field, 0).Float(); got != v {
			t.Errorf("%s = %v, want %v", field, got, v)
		}
	}
}

func TestQMCFixture_Pass(t *testing.T) {
	t.Parallel()
	res := compareFixture(t, "qmc", "test_pass.out")

	if !res.Comparable {
		t.Fatal("expected comparable data")
	}
	if res.Status != validation.Pass {
		t.Errorf("Status = %v, want pass; message:\n%s", res.Status, res.Message)
	}
	if res.Message != "" {
		t.Errorf("Message = %q, want empty", res.Message)
	}
}

func TestQMCFixture_Fail(t *testing.T) {
	t.Parallel()
	res := compareFixture(t, "qmc", "test_fail.out")

	if res.Status != validation.Fail {
		t.Errorf("Status = %v, want fail", res.Status)
	}
	want := "Total_energy: absolute error 1.30e-03 greater than 5.00e-04."
	if res.Message != want {
		t.Errorf("Message = %q, want %q", res.Message, want)
	}
}

func TestTableFixture_Pass(t *testing.T) {
	t.Parallel()
	res := compareFixture(t, "table", "test.out")

	if res.Status != validation.Pass {
		t.Errorf("Status = %v, want pass; message:\n%s", res.Status, res.Message)
	}
}

func TestTableFixture_Reshaped(t *testing.T) {
	t.Parallel()
	res := compareFixture(t, "table", "test_reshaped.out")

	if res.Comparable {
		t.Error("expected incomparable data")
	}
	if res.Status != validation.Fail {
		t.Errorf("Status = %v, want fail", res.Status)
	}
	if res.Message != validation.IncomparableMessage {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestTableFixture_TokensCompareExactly(t *testing.T) {
	t.Parallel()
	ds, err := extract.ExtractTableFile(filepath.Join(fixturesDir(), "table", "benchmark.out"))
	if err != nil {
		t.Fatalf("ExtractTableFile() error = %v", err)
	}
	atoms, _ := ds.Values("atom")
	if len(atoms) != 3 {
		t.Fatalf("atom values = %v, want 3", atoms)
	}
	for i, v := range atoms {
		if v.IsNumeric() {
			t.Errorf("atom[%d] = %v, want a token", i, v)
		}
	}
	if atoms[0].String() != "O" {
		t.Errorf("atom[0] = %q, want O", atoms[0].String())
	}
}
