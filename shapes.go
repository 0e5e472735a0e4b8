package hexgrid

// Shape generators produce the coordinate sets that the storage
// engines and bounds computations are built over.
// Hexagon-shaped regions come from Range.

// Parallelogram returns every hex with both axial coordinates
// inside the componentwise [min, max] box, row-major.
func Parallelogram(min, max Hex) []Hex {
	if max.X < min.X || max.Y < min.Y {
		return nil
	}
	coords := make([]Hex, 0, int(max.X-min.X+1)*int(max.Y-min.Y+1))
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			coords = append(coords, Hex{x, y})
		}
	}
	return coords
}

// Triangle returns the triangular region of the given size
// with a corner at the origin.
func Triangle(size uint32) []Hex {
	s := int32(size)
	coords := make([]Hex, 0, int(s+1)*int(s+2)/2)
	for x := int32(0); x <= s; x++ {
		for y := int32(0); y <= s-x; y++ {
			coords = append(coords, Hex{x, y})
		}
	}
	return coords
}

// Rhombus returns the rows-by-columns rhombus
// whose first coordinate is origin, row-major.
func Rhombus(origin Hex, rows, columns uint32) []Hex {
	coords := make([]Hex, 0, int(rows)*int(columns))
	for y := int32(0); y < int32(rows); y++ {
		for x := int32(0); x < int32(columns); x++ {
			coords = append(coords, origin.Add(Hex{x, y}))
		}
	}
	return coords
}

// PointyRectangle returns a screen-space rectangle of hexes for
// pointy-top layouts, bounded by [left, right] columns and
// [top, bottom] rows in offset space.
// Each row is shifted by half its y coordinate to stay
// rectangular in world space.
func PointyRectangle(left, right, top, bottom int32) []Hex {
	var coords []Hex
	for y := top; y <= bottom; y++ {
		off := y >> 1
		for x := left - off; x <= right-off; x++ {
			coords = append(coords, Hex{x, y})
		}
	}
	return coords
}

// FlatRectangle returns a screen-space rectangle of hexes for
// flat-top layouts, bounded by [left, right] columns and
// [top, bottom] rows in offset space.
func FlatRectangle(left, right, top, bottom int32) []Hex {
	var coords []Hex
	for x := left; x <= right; x++ {
		off := x >> 1
		for y := top - off; y <= bottom-off; y++ {
			coords = append(coords, Hex{x, y})
		}
	}
	return coords
}
