// Package native binds the compiled dense gamma routine. The routine takes the
// dimension count, the per-axis extents, two contiguous row-major buffers and the two
// tolerances, and fills a preallocated output buffer of the same length in place.
package native

import "errors"

// ErrAllocation is returned when the routine cannot allocate its scratch space
var ErrAllocation = errors.New("native: allocation failed")

func checkBuffers(shape []int, ref, tested, out []float64) error {
	if len(shape) == 0 {
		return errors.New("native: shape has no axes")
	}
	n := 1
	for _, e := range shape {
		if e <= 0 {
			return errors.New("native: extents must be positive")
		}
		n *= e
	}
	if len(ref) != n || len(tested) != n || len(out) != n {
		return errors.New("native: buffer lengths do not match shape")
	}
	return nil
}
