package gamma

import (
	"fmt"

	"gammaindex/internal/native"
	"gammaindex/pkg/grid"
)

// NativeEvaluator delegates the all-pairs scan to the compiled routine in
// internal/native. It produces the same values as ScalarEvaluator and is only
// available in cgo builds.
type NativeEvaluator struct{}

// NativeAvailable reports whether the native routine was compiled in
func NativeAvailable() bool { return native.Available() }

// Name implements Evaluator
func (e *NativeEvaluator) Name() string { return StrategyNative }

// Evaluate implements Evaluator
func (e *NativeEvaluator) Evaluate(ref, tested *grid.Field, tol Tolerance) (*grid.Field, error) {
	if err := checkInputs(ref, tested, tol); err != nil {
		return nil, err
	}
	if !native.Available() {
		return nil, ErrNativeUnavailable
	}
	out := grid.Zeros(ref.Shape)
	if err := native.Gamma(ref.Shape, ref.Data, tested.Data, out.Data, tol.DD, tol.DTA); err != nil {
		return nil, fmt.Errorf("native gamma: %w", err)
	}
	return out, nil
}
