package gamma

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"gammaindex/pkg/grid"
)

// KDTreeEvaluator answers each reference point with a nearest-neighbour query in the
// scaled space (p/dta, v/dd), where plain Euclidean distance equals the gamma metric.
// Results match the all-pairs scan up to floating-point rounding of the scaling.
type KDTreeEvaluator struct {
	Progress ProgressCallback
}

// Name implements Evaluator
func (e *KDTreeEvaluator) Name() string { return StrategyKDTree }

// Evaluate implements Evaluator
func (e *KDTreeEvaluator) Evaluate(ref, tested *grid.Field, tol Tolerance) (*grid.Field, error) {
	if err := checkInputs(ref, tested, tol); err != nil {
		return nil, err
	}
	out := grid.Zeros(ref.Shape)

	// Missing tested samples never enter the tree
	points := make(scaledPoints, 0, tested.Len())
	tested.Shape.Each(func(offset int, coords []int) {
		if v := tested.Data[offset]; !math.IsNaN(v) {
			points = append(points, scale(coords, v, tol))
		}
	})

	if len(points) == 0 {
		for i := range out.Data {
			out.Data[i] = math.NaN()
		}
		return out, nil
	}
	tree := kdtree.New(points, false)

	runRange(ref.Shape, 1, e.Progress, "kd-tree gamma", func(offset int, coords []int) {
		value := ref.Data[offset]
		if math.IsNaN(value) {
			out.Data[offset] = math.NaN()
			return
		}
		_, dist2 := tree.Nearest(scale(coords, value, tol))
		out.Data[offset] = math.Sqrt(dist2)
	})
	return out, nil
}

// scaledPoint is a grid point in the normalized space: coordinates divided by dta,
// followed by the sample value divided by dd.
type scaledPoint []float64

func scale(coords []int, value float64, tol Tolerance) scaledPoint {
	p := make(scaledPoint, len(coords)+1)
	for i, c := range coords {
		p[i] = float64(c) / tol.DTA
	}
	p[len(coords)] = value / tol.DD
	return p
}

// Compare implements the kdtree.Comparable interface
func (p scaledPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(scaledPoint)
	return p[d] - q[d]
}

// Dims implements the kdtree.Comparable interface
func (p scaledPoint) Dims() int { return len(p) }

// Distance returns the squared Euclidean distance, which is the gamma metric
func (p scaledPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(scaledPoint)
	var sum float64
	for i := range p {
		d := p[i] - q[i]
		sum += d * d
	}
	return sum
}

// scaledPoints is a collection of scaledPoint that satisfies kdtree.Interface
type scaledPoints []scaledPoint

func (p scaledPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p scaledPoints) Len() int                              { return len(p) }
func (p scaledPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// Pivot implements the kdtree.Interface method
func (p scaledPoints) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(plane{scaledPoints: p, Dim: d}, kdtree.MedianOfRandoms(plane{scaledPoints: p, Dim: d}, 100))
}

// plane implements sort.Interface and kdtree.SortSlicer for scaledPoints
type plane struct {
	scaledPoints
	kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	return p.scaledPoints[i][p.Dim] < p.scaledPoints[j][p.Dim]
}

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	return plane{scaledPoints: p.scaledPoints[start:end], Dim: p.Dim}
}

func (p plane) Swap(i, j int) {
	p.scaledPoints[i], p.scaledPoints[j] = p.scaledPoints[j], p.scaledPoints[i]
}
