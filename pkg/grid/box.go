package grid

// Box is an axis-aligned window of grid points, Lo inclusive and Hi exclusive on every axis
type Box struct {
	Lo []int
	Hi []int
}

// Window returns the cube [center-radius, center+radius] on every axis, clipped to the
// grid bounds. Points near an edge get a smaller window; there is no wraparound or padding.
func (s Shape) Window(center []int, radius int) Box {
	b := Box{Lo: make([]int, len(s)), Hi: make([]int, len(s))}
	for i, c := range center {
		b.Lo[i] = max(0, c-radius)
		b.Hi[i] = min(s[i], c+radius+1)
	}
	return b
}

// Empty reports whether the box contains no points
func (b Box) Empty() bool {
	for i := range b.Lo {
		if b.Lo[i] >= b.Hi[i] {
			return true
		}
	}
	return len(b.Lo) == 0
}

// Len returns the number of points inside the box
func (b Box) Len() int {
	if b.Empty() {
		return 0
	}
	n := 1
	for i := range b.Lo {
		n *= b.Hi[i] - b.Lo[i]
	}
	return n
}

// Each visits every point of the box in row-major order, passing its offset within a
// field of the given shape. The coords slice is reused and must not be retained.
func (b Box) Each(s Shape, fn func(offset int, coords []int)) {
	if b.Empty() {
		return
	}
	ndim := len(b.Lo)
	strides := s.Strides()
	coords := append([]int(nil), b.Lo...)
	offset := s.Offset(coords)
	for {
		fn(offset, coords)

		// Advance the odometer, innermost axis first
		axis := ndim - 1
		for ; axis >= 0; axis-- {
			coords[axis]++
			offset += strides[axis]
			if coords[axis] < b.Hi[axis] {
				break
			}
			offset -= (coords[axis] - b.Lo[axis]) * strides[axis]
			coords[axis] = b.Lo[axis]
		}
		if axis < 0 {
			return
		}
	}
}
