package gamma

import (
	"math"
	"math/rand"
	"testing"

	"gammaindex/pkg/grid"
)

// createRandomField fills a field with uniform values in [0, 1); a fraction of the
// samples is replaced by NaN when missing > 0.
func createRandomField(rng *rand.Rand, shape grid.Shape, missing float64) *grid.Field {
	f := grid.Zeros(shape)
	for i := range f.Data {
		if missing > 0 && rng.Float64() < missing {
			f.Data[i] = math.NaN()
			continue
		}
		f.Data[i] = rng.Float64()
	}
	return f
}

// createPerturbed returns a copy of f with uniform noise of the given amplitude added
func createPerturbed(rng *rand.Rand, f *grid.Field, amplitude float64) *grid.Field {
	p := f.Clone()
	for i := range p.Data {
		p.Data[i] += (rng.Float64()*2 - 1) * amplitude
	}
	return p
}

func mustField(t *testing.T, shape grid.Shape, data ...float64) *grid.Field {
	t.Helper()
	f, err := grid.NewField(shape, data)
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}
	return f
}

// sameValue treats two NaNs as equal
func sameValue(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) <= tol
}

// randomCases is the set of shapes and tolerances used by the equivalence tests
var randomCases = []struct {
	shape grid.Shape
	tol   Tolerance
}{
	{grid.Shape{17}, Tolerance{DTA: 1.0, DD: 0.05}},
	{grid.Shape{25}, Tolerance{DTA: 2.5, DD: 0.2}},
	{grid.Shape{6, 7}, Tolerance{DTA: 1.0, DD: 0.1}},
	{grid.Shape{8, 5}, Tolerance{DTA: 1.7, DD: 0.3}},
	{grid.Shape{9, 9}, Tolerance{DTA: 0.5, DD: 0.5}},
	{grid.Shape{4, 3, 5}, Tolerance{DTA: 2.0, DD: 0.15}},
	{grid.Shape{3, 4, 2, 3}, Tolerance{DTA: 1.2, DD: 0.25}},
}
