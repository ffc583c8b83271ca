package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromMatrix copies a 2-D gonum matrix (for example a dose plane) into a field of shape rows x cols
func FromMatrix(m mat.Matrix) *Field {
	rows, cols := m.Dims()
	f := Zeros(Shape{rows, cols})
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			f.Data[i*cols+j] = m.At(i, j)
		}
	}
	return f
}

// Matrix returns a 2-D field as a gonum dense matrix sharing no memory with the field
func (f *Field) Matrix() (*mat.Dense, error) {
	if f.Shape.NumDims() != 2 {
		return nil, fmt.Errorf("%w: matrix view needs 2 axes, field has shape %s",
			ErrInvalidShape, f.Shape)
	}
	return mat.NewDense(f.Shape[0], f.Shape[1], append([]float64(nil), f.Data...)), nil
}
