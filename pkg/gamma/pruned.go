package gamma

import (
	"math"

	"gammaindex/pkg/grid"
)

// PrunedEvaluator computes the exact dense gamma field with a bounded search. The
// metric of the tested sample at the reference position bounds the minimum, and any
// candidate whose spatial term alone reaches that bound cannot beat it, so only the
// cube of half-width floor(dta*sqrt(bound))+1 is scanned. When the co-located tested
// sample is missing the point falls back to the full scan.
type PrunedEvaluator struct {
	Progress ProgressCallback
}

// Name implements Evaluator
func (e *PrunedEvaluator) Name() string { return StrategyPruned }

// Evaluate implements Evaluator
func (e *PrunedEvaluator) Evaluate(ref, tested *grid.Field, tol Tolerance) (*grid.Field, error) {
	if err := checkInputs(ref, tested, tol); err != nil {
		return nil, err
	}
	s := tol.scales()
	out := grid.Zeros(ref.Shape)
	whole := ref.Shape.Box()
	extent := 0
	for _, n := range ref.Shape {
		extent = max(extent, n)
	}

	runRange(ref.Shape, 1, e.Progress, "pruned gamma", func(offset int, coords []int) {
		value := ref.Data[offset]
		box := whole
		bound := s.metric(tested.Data[offset]-value, 0)
		if !math.IsNaN(bound) {
			if reach := math.Sqrt(bound * s.dta2); reach < float64(extent) {
				box = ref.Shape.Window(coords, int(reach)+1)
			}
		}
		best, ok := s.minimum(tested, value, coords, box)
		out.Data[offset] = gammaValue(best, ok)
	})
	return out, nil
}
