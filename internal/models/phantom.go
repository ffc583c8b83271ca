package models

import (
	"math"

	"gammaindex/pkg/grid"
)

// Phantom represents a synthetic dose distribution: a Gaussian peak on a flat background
type Phantom struct {
	// Shape is the grid the phantom is rendered on
	Shape grid.Shape

	// Center is the position of the peak in grid coordinates, one entry per axis
	Center []float64

	// Sigma is the width of the peak in grid steps
	Sigma float64

	// Peak is the dose at the centre, on top of the background
	Peak float64

	// Background is the dose far from the peak
	Background float64
}

// NewPhantom creates a unit peak centred on the grid with a width of a quarter of the
// smallest extent
func NewPhantom(shape grid.Shape) *Phantom {
	center := make([]float64, len(shape))
	smallest := math.Inf(1)
	for i, n := range shape {
		center[i] = float64(n-1) / 2
		smallest = math.Min(smallest, float64(n))
	}
	return &Phantom{
		Shape:  shape.Clone(),
		Center: center,
		Sigma:  math.Max(smallest/4, 0.5),
		Peak:   1.0,
	}
}

// Shifted returns a copy whose peak is moved by offset grid steps per axis
func (p *Phantom) Shifted(offset []float64) *Phantom {
	q := *p
	q.Center = append([]float64(nil), p.Center...)
	for i := range q.Center {
		if i < len(offset) {
			q.Center[i] += offset[i]
		}
	}
	return &q
}

// Scaled returns a copy with the peak dose multiplied by factor
func (p *Phantom) Scaled(factor float64) *Phantom {
	q := *p
	q.Center = append([]float64(nil), p.Center...)
	q.Peak *= factor
	return &q
}

// Render samples the phantom on its grid
func (p *Phantom) Render() *grid.Field {
	f := grid.Zeros(p.Shape)
	twoSigma2 := 2 * p.Sigma * p.Sigma
	p.Shape.Each(func(offset int, coords []int) {
		r2 := 0.0
		for i, c := range coords {
			d := float64(c) - p.Center[i]
			r2 += d * d
		}
		f.Data[offset] = p.Background + p.Peak*math.Exp(-r2/twoSigma2)
	})
	return f
}
