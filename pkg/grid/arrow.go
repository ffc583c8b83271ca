package grid

import (
	"fmt"
	"math"

	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/arrow/tensor"
)

// FromArrowArray copies a flat Arrow float64 array into a field of the given shape.
// Null slots become NaN so that they are treated as missing data.
func FromArrowArray(arr *array.Float64, shape Shape) (*Field, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if arr.Len() != shape.Len() {
		return nil, fmt.Errorf("%w: arrow array has %d values for shape %s",
			ErrInvalidShape, arr.Len(), shape)
	}
	f := Zeros(shape)
	for i := range f.Data {
		if arr.IsNull(i) {
			f.Data[i] = math.NaN()
			continue
		}
		f.Data[i] = arr.Value(i)
	}
	return f, nil
}

// FromTensor copies an Arrow float64 tensor into a field. Any stride layout is accepted;
// the result is always row-major.
func FromTensor(t *tensor.Float64) (*Field, error) {
	shape := make(Shape, t.NumDims())
	for i, n := range t.Shape() {
		shape[i] = int(n)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	if t.IsRowMajor() && t.IsContiguous() {
		values := t.Float64Values()
		if len(values) < shape.Len() {
			return nil, fmt.Errorf("%w: tensor holds %d values for shape %s",
				ErrInvalidShape, len(values), shape)
		}
		return &Field{Shape: shape, Data: append([]float64(nil), values[:shape.Len()]...)}, nil
	}

	f := Zeros(shape)
	index := make([]int64, len(shape))
	shape.Each(func(offset int, coords []int) {
		for i, c := range coords {
			index[i] = int64(c)
		}
		f.Data[offset] = t.Value(index)
	})
	return f, nil
}

// Tensor exports the field as a row-major Arrow tensor allocated from mem.
// The caller owns the returned tensor and must Release it.
func (f *Field) Tensor(mem memory.Allocator) *tensor.Float64 {
	bld := array.NewFloat64Builder(mem)
	defer bld.Release()
	bld.AppendValues(f.Data, nil)

	arr := bld.NewFloat64Array()
	defer arr.Release()

	shape := make([]int64, len(f.Shape))
	for i, n := range f.Shape {
		shape[i] = int64(n)
	}
	return tensor.New(arr.Data(), shape, nil, nil).(*tensor.Float64)
}
