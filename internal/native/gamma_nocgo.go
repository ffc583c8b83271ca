//go:build !cgo

package native

import "errors"

// Available reports whether the routine was compiled in
func Available() bool { return false }

// Gamma always fails in builds without cgo
func Gamma(shape []int, ref, tested, out []float64, dd, dta float64) error {
	if err := checkBuffers(shape, ref, tested, out); err != nil {
		return err
	}
	return errors.New("native: built without cgo")
}
