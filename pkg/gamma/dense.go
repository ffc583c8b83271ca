package gamma

import (
	"math"

	"gammaindex/pkg/grid"
)

// ScalarEvaluator is the reference all-pairs scan, O(n^2) in the number of grid points.
// The other strategies are validated against it.
type ScalarEvaluator struct {
	Progress ProgressCallback
}

// Name implements Evaluator
func (e *ScalarEvaluator) Name() string { return StrategyScalar }

// Evaluate implements Evaluator
func (e *ScalarEvaluator) Evaluate(ref, tested *grid.Field, tol Tolerance) (*grid.Field, error) {
	if err := checkInputs(ref, tested, tol); err != nil {
		return nil, err
	}
	s := tol.scales()
	out := grid.Zeros(ref.Shape)
	whole := ref.Shape.Box()

	runRange(ref.Shape, 1, e.Progress, "dense gamma", func(offset int, coords []int) {
		best, ok := s.minimum(tested, ref.Data[offset], coords, whole)
		out.Data[offset] = gammaValue(best, ok)
	})
	return out, nil
}

// minimum returns the smallest metric between the reference sample (value, pos) and
// the tested samples inside box. Candidates whose metric is NaN are skipped; ok is
// false when none remained.
func (s scales) minimum(tested *grid.Field, value float64, pos []int, box grid.Box) (best float64, ok bool) {
	box.Each(tested.Shape, func(offset int, coords []int) {
		candidate := tested.Data[offset]
		if math.IsNaN(candidate) {
			return
		}
		m := s.metric(candidate-value, squaredDistance(pos, coords))
		if math.IsNaN(m) {
			return
		}
		if !ok || m < best {
			best, ok = m, true
		}
	})
	return best, ok
}

func gammaValue(best float64, ok bool) float64 {
	if !ok {
		return math.NaN()
	}
	return math.Sqrt(best)
}
