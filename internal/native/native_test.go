package native

import (
	"math"
	"testing"
)

// TestGammaSelfComparison verifies that a field compared against itself gives zero everywhere
func TestGammaSelfComparison(t *testing.T) {
	if !Available() {
		t.Skip("native routine not compiled in")
	}
	data := []float64{1, 2, 6, 4}
	out := make([]float64, 4)
	if err := Gamma([]int{2, 2}, data, data, out, 1, 1); err != nil {
		t.Fatalf("Gamma failed: %v", err)
	}
	for i, v := range out {
		if v != 0 {
			t.Errorf("Expected gamma 0 at %d, got %f", i, v)
		}
	}
}

// TestGammaMissingData verifies that NaN tested samples are skipped
func TestGammaMissingData(t *testing.T) {
	if !Available() {
		t.Skip("native routine not compiled in")
	}
	ref := []float64{0, 1, 2}
	tested := []float64{math.NaN(), 1, math.NaN()}
	out := make([]float64, 3)
	if err := Gamma([]int{3}, ref, tested, out, 1, 1); err != nil {
		t.Fatalf("Gamma failed: %v", err)
	}
	// Only index 1 is usable: point 0 sees diff 1 at distance 1
	want := []float64{math.Sqrt(2), 0, math.Sqrt(2)}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Errorf("Index %d: expected %f, got %f", i, want[i], out[i])
		}
	}

	allMissing := []float64{math.NaN(), math.NaN(), math.NaN()}
	if err := Gamma([]int{3}, ref, allMissing, out, 1, 1); err != nil {
		t.Fatalf("Gamma failed: %v", err)
	}
	for i, v := range out {
		if !math.IsNaN(v) {
			t.Errorf("Index %d: expected NaN, got %f", i, v)
		}
	}
}

// TestGammaBufferCheck verifies that mismatched buffers and empty shapes are rejected before the call
func TestGammaBufferCheck(t *testing.T) {
	if err := Gamma([]int{2, 2}, make([]float64, 4), make([]float64, 3), make([]float64, 4), 1, 1); err == nil {
		t.Error("Expected an error for a short tested buffer")
	}

	for _, shape := range [][]int{{}, {0}, {-1}, {2, 0}} {
		if err := Gamma(shape, nil, nil, nil, 1, 1); err == nil {
			t.Errorf("Shape %v: expected an error", shape)
		}
	}
}

// TestGammaNonFiniteReference verifies NaN and infinite reference values with the default build flags
func TestGammaNonFiniteReference(t *testing.T) {
	if !Available() {
		t.Skip("native routine not compiled in")
	}
	ref := []float64{math.NaN(), 1, math.Inf(1)}
	tested := []float64{0, 1, 2}
	out := make([]float64, 3)
	if err := Gamma([]int{3}, ref, tested, out, 1, 1); err != nil {
		t.Fatalf("Gamma failed: %v", err)
	}
	if !math.IsNaN(out[0]) || out[1] != 0 || !math.IsInf(out[2], 1) {
		t.Errorf("Expected [NaN 0 +Inf], got %v", out)
	}
}
