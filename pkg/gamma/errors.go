package gamma

import (
	"errors"
	"fmt"

	"gammaindex/pkg/grid"
)

var (
	// ErrShapeMismatch is returned when the reference and tested fields differ in shape
	ErrShapeMismatch = errors.New("gamma: cannot compare fields of different shapes")

	// ErrInvalidTolerance is returned when dta or dd is not a finite positive number
	ErrInvalidTolerance = errors.New("gamma: invalid tolerance")

	// ErrUnknownStrategy is returned by NewEvaluator for an unregistered strategy name
	ErrUnknownStrategy = errors.New("gamma: unknown evaluation strategy")

	// ErrNativeUnavailable is returned when the native routine was not compiled in
	ErrNativeUnavailable = errors.New("gamma: native routine unavailable")
)

// checkInputs validates everything an evaluation needs before any work is done
func checkInputs(ref, tested *grid.Field, tol Tolerance) error {
	if err := tol.Validate(); err != nil {
		return err
	}
	if ref == nil || tested == nil {
		return fmt.Errorf("%w: missing field", ErrShapeMismatch)
	}
	if err := ref.Shape.Validate(); err != nil {
		return fmt.Errorf("reference field: %w", err)
	}
	if !ref.Shape.Equal(tested.Shape) {
		return fmt.Errorf("%w: reference %s, tested %s", ErrShapeMismatch, ref.Shape, tested.Shape)
	}
	n := ref.Shape.Len()
	if len(ref.Data) != n || len(tested.Data) != n {
		return fmt.Errorf("%w: shape %s needs %d samples, got %d and %d",
			grid.ErrInvalidShape, ref.Shape, n, len(ref.Data), len(tested.Data))
	}
	return nil
}
