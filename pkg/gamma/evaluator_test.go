package gamma

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"gammaindex/pkg/grid"
)

// TestNewEvaluator verifies strategy lookup by name
func TestNewEvaluator(t *testing.T) {
	want := []string{StrategyKDTree, StrategyNative, StrategyParallel, StrategyPruned, StrategyScalar}
	if got := Strategies(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected strategies %v, got %v", want, got)
	}

	for _, name := range Strategies() {
		e, err := NewEvaluator(name, 2)
		if err != nil {
			t.Fatalf("NewEvaluator(%q) failed: %v", name, err)
		}
		if e.Name() != name {
			t.Errorf("Expected evaluator name %q, got %q", name, e.Name())
		}
	}

	if p, _ := NewEvaluator(StrategyParallel, 3); p.(*ParallelEvaluator).Workers != 3 {
		t.Errorf("Expected 3 workers on the parallel evaluator")
	}

	if _, err := NewEvaluator("gpu", 1); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("Expected ErrUnknownStrategy, got %v", err)
	}
}

// TestStrategiesMatchScalar verifies every strategy against the all-pairs scan on
// random fields. The exact strategies must agree bit for bit; the k-d tree works in a
// rescaled space and is compared with a small tolerance.
func TestStrategiesMatchScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))

	evaluators := []struct {
		e     Evaluator
		exact bool
	}{
		{&PrunedEvaluator{}, true},
		{&ParallelEvaluator{Workers: 3}, true},
		{&KDTreeEvaluator{}, false},
		{&NativeEvaluator{}, true},
	}

	for _, tc := range randomCases {
		ref := createRandomField(rng, tc.shape, 0.05)
		tested := createPerturbed(rng, ref, 0.3)
		holes := createRandomField(rng, tc.shape, 0.15)
		for i, v := range holes.Data {
			if math.IsNaN(v) {
				tested.Data[i] = math.NaN()
			}
		}

		want, err := Dense(ref, tested, tc.tol)
		if err != nil {
			t.Fatalf("Dense failed: %v", err)
		}

		for _, ev := range evaluators {
			if ev.e.Name() == StrategyNative && !NativeAvailable() {
				continue
			}
			got, err := ev.e.Evaluate(ref, tested, tc.tol)
			if err != nil {
				t.Fatalf("%s: Evaluate failed: %v", ev.e.Name(), err)
			}
			if !got.Shape.Equal(ref.Shape) {
				t.Fatalf("%s: expected shape %v, got %v", ev.e.Name(), ref.Shape, got.Shape)
			}
			for i := range want.Data {
				var ok bool
				if ev.exact {
					ok = sameValue(got.Data[i], want.Data[i], 0)
				} else {
					ok = sameValue(got.Data[i], want.Data[i], 1e-9*math.Max(1, want.Data[i]))
				}
				if !ok {
					t.Errorf("%s shape %v tol %+v: point %d expected %v, got %v",
						ev.e.Name(), tc.shape, tc.tol, i, want.Data[i], got.Data[i])
				}
			}
		}
	}
}

// TestStrategiesAllMissing verifies that every strategy returns NaN when no tested sample exists
func TestStrategiesAllMissing(t *testing.T) {
	ref := mustField(t, grid.Shape{2, 2}, 1, 2, 3, 4)
	tested := grid.Filled(grid.Shape{2, 2}, math.NaN())

	for _, name := range Strategies() {
		if name == StrategyNative && !NativeAvailable() {
			continue
		}
		e, _ := NewEvaluator(name, 2)
		g, err := e.Evaluate(ref, tested, DefaultTolerance())
		if err != nil {
			t.Fatalf("%s: Evaluate failed: %v", name, err)
		}
		for i, v := range g.Data {
			if !math.IsNaN(v) {
				t.Errorf("%s: expected NaN at %d, got %f", name, i, v)
			}
		}
	}
}

// TestStrategiesRejectBadInput verifies that every strategy validates before computing
func TestStrategiesRejectBadInput(t *testing.T) {
	for _, name := range Strategies() {
		e, _ := NewEvaluator(name, 2)
		if _, err := e.Evaluate(grid.Zeros(grid.Shape{3}), grid.Zeros(grid.Shape{4}), DefaultTolerance()); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("%s: expected ErrShapeMismatch, got %v", name, err)
		}
		f := grid.Zeros(grid.Shape{3})
		if _, err := e.Evaluate(f, f, Tolerance{DTA: 1}); !errors.Is(err, ErrInvalidTolerance) {
			t.Errorf("%s: expected ErrInvalidTolerance, got %v", name, err)
		}
	}
}

// TestNativeUnavailable verifies the error reported by builds without the native routine
func TestNativeUnavailable(t *testing.T) {
	if NativeAvailable() {
		t.Skip("native routine compiled in")
	}
	f := grid.Zeros(grid.Shape{3})
	if _, err := (&NativeEvaluator{}).Evaluate(f, f, DefaultTolerance()); !errors.Is(err, ErrNativeUnavailable) {
		t.Errorf("Expected ErrNativeUnavailable, got %v", err)
	}
}

// TestProgressCallback verifies that progress reaches the total number of points
func TestProgressCallback(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	ref := createRandomField(rng, grid.Shape{6, 6}, 0)

	var calls, last int
	e := &ScalarEvaluator{Progress: func(completed, total int, message string) {
		calls++
		last = completed
		if total != ref.Len() {
			t.Errorf("Expected total %d, got %d", ref.Len(), total)
		}
		if message == "" {
			t.Error("Expected a progress message")
		}
	}}
	if _, err := e.Evaluate(ref, ref, DefaultTolerance()); err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if calls != chunksPerWorker || last != ref.Len() {
		t.Errorf("Expected %d calls ending at %d, got %d calls ending at %d", chunksPerWorker, ref.Len(), calls, last)
	}
}

// TestPartition verifies that spans cover the range without gaps or overlap
func TestPartition(t *testing.T) {
	tests := []struct{ n, parts, want int }{
		{10, 3, 3},
		{2, 8, 2},
		{7, 0, 1},
		{16, 4, 4},
	}
	for _, tc := range tests {
		spans := partition(tc.n, tc.parts)
		if len(spans) != tc.want {
			t.Errorf("partition(%d, %d): expected %d spans, got %d", tc.n, tc.parts, tc.want, len(spans))
		}
		next := 0
		for _, s := range spans {
			if s.lo != next || s.hi <= s.lo {
				t.Errorf("partition(%d, %d): bad span %+v", tc.n, tc.parts, s)
			}
			next = s.hi
		}
		if next != tc.n {
			t.Errorf("partition(%d, %d): spans end at %d", tc.n, tc.parts, next)
		}
	}
}
