package gamma

import (
	"fmt"
	"math"
)

// Tolerance holds the two acceptance criteria of the gamma test
type Tolerance struct {
	// DTA is the distance-to-agreement in grid steps
	DTA float64 `yaml:"dta"`

	// DD is the absolute dose-difference tolerance, in field units
	DD float64 `yaml:"dd"`
}

// DefaultTolerance returns dta = 1 grid step and dd = 0.05
func DefaultTolerance() Tolerance {
	return Tolerance{DTA: 1.0, DD: 0.05}
}

// Validate rejects zero, negative, NaN and infinite tolerances
func (t Tolerance) Validate() error {
	if !(t.DTA > 0) || math.IsInf(t.DTA, 0) {
		return fmt.Errorf("%w: dta must be positive, got %v", ErrInvalidTolerance, t.DTA)
	}
	if !(t.DD > 0) || math.IsInf(t.DD, 0) {
		return fmt.Errorf("%w: dd must be positive, got %v", ErrInvalidTolerance, t.DD)
	}
	return nil
}

// maxRadius caps Radius so that window arithmetic never overflows
const maxRadius = math.MaxInt32

// Radius returns the half-width floor(dta) of the windowed search cube, capped at
// math.MaxInt32 grid steps.
func (t Tolerance) Radius() int {
	if t.DTA >= maxRadius {
		return maxRadius
	}
	return int(math.Floor(t.DTA))
}

// Metric returns the normalized squared distance between a reference sample and a
// tested sample in the combined dose/space metric. Its square root is the gamma value
// of that single pair. The tolerances are not validated here; both positions must have
// the same number of axes.
func (t Tolerance) Metric(refValue float64, refPos []int, testValue float64, testPos []int) float64 {
	if len(refPos) != len(testPos) {
		panic("gamma: coordinate dimensions do not match")
	}
	return t.scales().metric(testValue-refValue, squaredDistance(refPos, testPos))
}

// scales caches the squared tolerances so that every strategy performs the exact same
// floating-point operations for a pair.
type scales struct {
	dd2  float64
	dta2 float64
}

func (t Tolerance) scales() scales {
	return scales{dd2: t.DD * t.DD, dta2: t.DTA * t.DTA}
}

func (s scales) metric(diff float64, dist2 int) float64 {
	return diff*diff/s.dd2 + float64(dist2)/s.dta2
}

// squaredDistance is the squared Euclidean distance between two grid coordinates
func squaredDistance(a, b []int) int {
	d2 := 0
	for i := range a {
		d := b[i] - a[i]
		d2 += d * d
	}
	return d2
}
