package grid

import (
	"fmt"
	"math"
)

// Field is a dense, rectangular N-dimensional array of samples stored in row-major order.
// NaN samples mean "no data here" and are skipped by the gamma evaluators.
type Field struct {
	// Shape is the extent of each axis
	Shape Shape

	// Data holds Shape.Len() samples, last axis contiguous
	Data []float64
}

// NewField wraps data as a field of the given shape. The data slice is not copied.
func NewField(shape Shape, data []float64) (*Field, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Len() {
		return nil, fmt.Errorf("%w: %d samples for shape %s (want %d)",
			ErrInvalidShape, len(data), shape, shape.Len())
	}
	return &Field{Shape: shape.Clone(), Data: data}, nil
}

// Zeros allocates a zero-valued field of the given shape
func Zeros(shape Shape) *Field {
	return &Field{Shape: shape.Clone(), Data: make([]float64, shape.Len())}
}

// Filled allocates a field with every sample set to value
func Filled(shape Shape, value float64) *Field {
	f := Zeros(shape)
	for i := range f.Data {
		f.Data[i] = value
	}
	return f
}

// Len returns the number of samples
func (f *Field) Len() int { return len(f.Data) }

// At returns the sample at the given coordinate
func (f *Field) At(coords ...int) float64 {
	return f.Data[f.Shape.Offset(coords)]
}

// Set stores value at the given coordinate
func (f *Field) Set(value float64, coords ...int) {
	f.Data[f.Shape.Offset(coords)] = value
}

// Clone returns a deep copy of the field
func (f *Field) Clone() *Field {
	return &Field{Shape: f.Shape.Clone(), Data: append([]float64(nil), f.Data...)}
}

// CountNaN returns how many samples carry no data
func (f *Field) CountNaN() int {
	n := 0
	for _, v := range f.Data {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}
