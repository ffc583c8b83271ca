package models

import (
	"math"
	"testing"

	"gammaindex/pkg/grid"
)

// TestNewPhantom verifies the default centre, width and peak
func TestNewPhantom(t *testing.T) {
	p := NewPhantom(grid.Shape{9, 13})

	if p.Center[0] != 4 || p.Center[1] != 6 {
		t.Errorf("Expected centre [4 6], got %v", p.Center)
	}
	if p.Sigma != 9.0/4 {
		t.Errorf("Expected sigma %f, got %f", 9.0/4, p.Sigma)
	}

	f := p.Render()
	if got := f.At(4, 6); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Expected peak dose 1 at the centre, got %f", got)
	}
	if f.At(0, 0) >= f.At(4, 6) {
		t.Errorf("Corner dose %f should be below the peak", f.At(0, 0))
	}
}

// TestPhantomShiftedScaled verifies that derived phantoms leave the original untouched
func TestPhantomShiftedScaled(t *testing.T) {
	p := NewPhantom(grid.Shape{11})
	shifted := p.Shifted([]float64{2})
	scaled := p.Scaled(1.1)

	if p.Center[0] != 5 {
		t.Errorf("Original centre changed to %v", p.Center)
	}
	if shifted.Center[0] != 7 {
		t.Errorf("Expected shifted centre 7, got %v", shifted.Center)
	}
	if got := shifted.Render().At(7); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Expected shifted peak at 7, got %f", got)
	}
	if got := scaled.Render().At(5); math.Abs(got-1.1) > 1e-12 {
		t.Errorf("Expected scaled peak 1.1, got %f", got)
	}
}
