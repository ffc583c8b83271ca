package gamma

import (
	"math"

	"gammaindex/pkg/grid"
)

// Outcome is the result of the gamma test at one reference point
type Outcome uint8

const (
	// Fail means no tested point inside the window came within the tolerances,
	// including the case where every candidate was missing
	Fail Outcome = iota

	// Pass means the gamma index at the point is below 1
	Pass

	// Ignored means the ignore predicate matched the reference value and nothing was computed
	Ignored
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Fail:
		return "fail"
	case Pass:
		return "pass"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// IgnoreFunc decides from a reference value whether the point is excluded from the test.
// It must be pure; it is called once per reference point.
type IgnoreFunc func(value float64) bool

// IgnoreBelow returns a predicate that ignores reference values under threshold,
// the usual way of excluding the low-dose region.
func IgnoreBelow(threshold float64) IgnoreFunc {
	return func(value float64) bool { return value < threshold }
}

// PassField holds the outcome of every reference point, row-major like grid.Field
type PassField struct {
	Shape    grid.Shape
	Outcomes []Outcome
}

// At returns the outcome at the given coordinate
func (p *PassField) At(coords ...int) Outcome {
	return p.Outcomes[p.Shape.Offset(coords)]
}

// Bools returns the outcomes as a pass mask and an evaluated mask; ignored points are
// false in both.
func (p *PassField) Bools() (passed, evaluated []bool) {
	passed = make([]bool, len(p.Outcomes))
	evaluated = make([]bool, len(p.Outcomes))
	for i, o := range p.Outcomes {
		passed[i] = o == Pass
		evaluated[i] = o != Ignored
	}
	return passed, evaluated
}

// WindowedEvaluator runs the pass/fail gamma test restricted to the cube of half-width
// floor(dta) around each reference point, clipped at the field edges.
//
// The restriction is lossless for the pass/fail answer: a tested point more than dta
// away along any axis has a spatial term above 1 on its own, so it can only matter
// when the minimum is already at least 1.
type WindowedEvaluator struct {
	// Workers is the number of goroutines; zero or less means one per CPU
	Workers int

	Progress ProgressCallback
}

// Windowed runs the windowed gamma test on the calling goroutine. A nil ignore
// predicate evaluates every point.
func Windowed(ref, tested *grid.Field, tol Tolerance, ignore IgnoreFunc) (*PassField, error) {
	return (&WindowedEvaluator{Workers: 1}).Evaluate(ref, tested, tol, ignore)
}

// Evaluate returns the outcome of every reference point. A panic raised by ignore is
// propagated to the caller.
func (w *WindowedEvaluator) Evaluate(ref, tested *grid.Field, tol Tolerance, ignore IgnoreFunc) (*PassField, error) {
	if err := checkInputs(ref, tested, tol); err != nil {
		return nil, err
	}
	s := tol.scales()
	extent := 0
	for _, n := range ref.Shape {
		extent = max(extent, n)
	}
	radius := min(tol.Radius(), extent)
	out := &PassField{Shape: ref.Shape.Clone(), Outcomes: make([]Outcome, ref.Len())}

	runRange(ref.Shape, resolveWorkers(w.Workers), w.Progress, "windowed gamma", func(offset int, coords []int) {
		value := ref.Data[offset]
		if ignore != nil && ignore(value) {
			out.Outcomes[offset] = Ignored
			return
		}
		best, ok := s.minimum(tested, value, coords, ref.Shape.Window(coords, radius))
		if ok && math.Sqrt(best) < 1.0 {
			out.Outcomes[offset] = Pass
		} else {
			out.Outcomes[offset] = Fail
		}
	})
	return out, nil
}
