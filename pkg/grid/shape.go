// Package grid provides the dense N-dimensional field representation shared by the
// gamma evaluators, together with the index arithmetic that maps a row-major offset
// to its integer grid coordinate.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidShape is returned when a shape has no axes or a non-positive extent
var ErrInvalidShape = errors.New("grid: invalid shape")

// Shape holds the extent of every axis of a field, outermost axis first
type Shape []int

// Validate checks that the shape has at least one axis and that every extent is positive
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no axes", ErrInvalidShape)
	}
	for i, n := range s {
		if n <= 0 {
			return fmt.Errorf("%w: axis %d has extent %d", ErrInvalidShape, i, n)
		}
	}
	return nil
}

// NumDims returns the number of axes
func (s Shape) NumDims() int { return len(s) }

// Len returns the total number of grid points
func (s Shape) Len() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, e := range s {
		n *= e
	}
	return n
}

// Equal reports whether both shapes have the same dimensionality and extents
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that does not alias s
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

// Strides returns the row-major element strides, the last axis being contiguous
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}
	return strides
}

// Offset converts a grid coordinate to its row-major offset.
// Coordinates are not bounds checked.
func (s Shape) Offset(coords []int) int {
	offset := 0
	for i, c := range coords {
		offset = offset*s[i] + c
	}
	return offset
}

// Coords converts a row-major offset to its grid coordinate, writing into dst
// when it has room and returning the coordinate slice.
func (s Shape) Coords(offset int, dst []int) []int {
	if cap(dst) < len(s) {
		dst = make([]int, len(s))
	}
	dst = dst[:len(s)]
	for i := len(s) - 1; i >= 0; i-- {
		dst[i] = offset % s[i]
		offset /= s[i]
	}
	return dst
}

// Contains reports whether coords lies inside the grid
func (s Shape) Contains(coords []int) bool {
	if len(coords) != len(s) {
		return false
	}
	for i, c := range coords {
		if c < 0 || c >= s[i] {
			return false
		}
	}
	return true
}

// Each calls fn for every grid point in row-major order. The coords slice is
// reused between calls and must not be retained.
func (s Shape) Each(fn func(offset int, coords []int)) {
	s.Box().Each(s, fn)
}

// Box returns the window covering the whole grid
func (s Shape) Box() Box {
	return Box{Lo: make([]int, len(s)), Hi: s.Clone()}
}

// String formats the shape as extents joined by "x", e.g. "3x4x5"
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "x")
}

// ParseShape parses the "3x4x5" notation produced by String
func ParseShape(text string) (Shape, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidShape)
	}
	parts := strings.Split(strings.ToLower(text), "x")
	shape := make(Shape, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: axis %d: %v", ErrInvalidShape, i, err)
		}
		shape[i] = n
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}
