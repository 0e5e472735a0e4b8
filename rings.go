package hexgrid

// RangeCount returns the number of hexes within
// radius steps of a center, the centered hexagonal number
// 3r(r+1)+1.
func RangeCount(radius uint32) int {
	r := int(radius)
	return 3*r*(r+1) + 1
}

// RingCount returns the number of hexes on the ring
// at exactly radius steps from a center: 6r, or 1 when radius is 0.
func RingCount(radius uint32) int {
	if radius == 0 {
		return 1
	}
	return 6 * int(radius)
}

// WedgeCount returns the number of hexes in a full wedge
// of the given extent: n(n+3)/2 + 1.
func WedgeCount(extent uint32) int {
	n := int(extent)
	return n*(n+3)/2 + 1
}

// Range returns every hex within radius steps of center,
// exactly RangeCount(radius) coordinates with no duplicates.
//
// The order is row-major over the axial axes,
// not ring order; use Spiral for ring-ordered enumeration.
func Range(center Hex, radius uint32) []Hex {
	r := int32(radius)
	coords := make([]Hex, 0, RangeCount(radius))
	for x := -r; x <= r; x++ {
		for y := max(-r, -x-r); y <= min(r, r-x); y++ {
			coords = append(coords, center.Add(Hex{x, y}))
		}
	}
	return coords
}

// Ring returns the hexes at exactly radius steps from center,
// starting toward EdgeTopRight and looping counter-clockwise.
// Radius 0 yields the center alone; otherwise the result
// holds exactly 6*radius coordinates.
func Ring(center Hex, radius uint32) []Hex {
	return RingCustom(center, radius, EdgeTopRight, false)
}

// RingCustom returns the ring at the given radius around center,
// starting from the hex toward start and walking counter-clockwise,
// or clockwise when requested.
func RingCustom(center Hex, radius uint32, start EdgeDirection, clockwise bool) []Hex {
	if radius == 0 {
		return []Hex{center}
	}
	// The ring is walked as 6 straight segments of `radius`
	// steps each. Starting at the corner toward `start`,
	// the first segment heads two direction steps around:
	// one step away would leave the ring, and the winding
	// determines which side the walk continues on.
	var dirs [6]EdgeDirection
	for i := range dirs {
		if clockwise {
			dirs[i] = start.CCW(4).CW(uint8(i))
		} else {
			dirs[i] = start.CCW(2 + uint8(i))
		}
	}
	h := center.Add(start.Hex().Mul(int32(radius)))
	coords := make([]Hex, 0, RingCount(radius))
	for _, d := range dirs {
		for range radius {
			coords = append(coords, h)
			h = h.Neighbor(d)
		}
	}
	return coords
}

// Rings returns the rings at each radius from 0 through radius,
// innermost first.
func Rings(center Hex, radius uint32) [][]Hex {
	return RingsBetween(center, 0, radius)
}

// RingsBetween returns the rings at each radius from lo through hi
// inclusive, innermost first. It returns nil when hi < lo.
func RingsBetween(center Hex, lo, hi uint32) [][]Hex {
	if hi < lo {
		return nil
	}
	rings := make([][]Hex, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		rings = append(rings, Ring(center, r))
	}
	return rings
}

// Spiral returns every hex within radius steps of center,
// ordered as concatenated rings from the center outward.
// The result holds the same coordinate set as Range.
func Spiral(center Hex, radius uint32) []Hex {
	return SpiralCustom(center, radius, EdgeTopRight, false)
}

// SpiralBetween returns the hexes between lo and hi steps of center
// inclusive, ordered as concatenated rings from the inside out:
// the annulus left after cutting Range(center, lo-1)
// out of Range(center, hi). It returns nil when hi < lo.
func SpiralBetween(center Hex, lo, hi uint32) []Hex {
	if hi < lo {
		return nil
	}
	n := RangeCount(hi)
	if lo > 0 {
		n -= RangeCount(lo - 1)
	}
	coords := make([]Hex, 0, n)
	for r := lo; r <= hi; r++ {
		coords = append(coords, Ring(center, r)...)
	}
	return coords
}

// SpiralCustom is Spiral with control over the ring start
// direction and winding.
func SpiralCustom(center Hex, radius uint32, start EdgeDirection, clockwise bool) []Hex {
	coords := make([]Hex, 0, RangeCount(radius))
	for r := uint32(0); r <= radius; r++ {
		coords = append(coords, RingCustom(center, r, start, clockwise)...)
	}
	return coords
}

// RingEdge returns the straight side of the ring at the given
// radius facing the vertex direction dir:
// the run from the corner toward edge direction dir
// to the corner toward edge direction dir+1,
// in counter-clockwise order.
// Radius 0 yields the center alone; otherwise radius+1 coordinates.
func RingEdge(center Hex, radius uint32, dir VertexDirection) []Hex {
	if radius == 0 {
		return []Hex{center}
	}
	corner := center.Add(dir.RightEdge().Hex().Mul(int32(radius)))
	step := dir.RightEdge().CCW(2).Hex()
	coords := make([]Hex, 0, radius+1)
	for i := int32(0); i <= int32(radius); i++ {
		coords = append(coords, corner.Add(step.Mul(i)))
	}
	return coords
}

// Wedge returns the 60-degree sector of hexes between the two
// edge directions adjacent to the vertex direction dir,
// out to the given extent:
// the concatenation of RingEdge for each radius 0 through extent.
// The result holds exactly WedgeCount(extent) coordinates.
func Wedge(center Hex, extent uint32, dir VertexDirection) []Hex {
	return WedgeBetween(center, 0, extent, dir)
}

// WedgeBetween is Wedge restricted to the radii from lo through hi
// inclusive, the concatenation of RingEdge for each.
// It returns nil when hi < lo.
func WedgeBetween(center Hex, lo, hi uint32, dir VertexDirection) []Hex {
	if hi < lo {
		return nil
	}
	n := WedgeCount(hi)
	if lo > 0 {
		n -= WedgeCount(lo - 1)
	}
	coords := make([]Hex, 0, n)
	for r := lo; r <= hi; r++ {
		coords = append(coords, RingEdge(center, r, dir)...)
	}
	return coords
}

// CornerWedgeEdge returns the part of the ring at the given
// radius within 30 degrees of the edge direction dir:
// the near halves of the two ring sides meeting at the corner
// toward dir, with the shared corner emitted once.
// Hexes exactly on the 30-degree boundary are included.
func CornerWedgeEdge(center Hex, radius uint32, dir EdgeDirection) []Hex {
	if radius == 0 {
		return []Hex{center}
	}
	corner := center.Add(dir.Hex().Mul(int32(radius)))
	half := int32(radius / 2)
	ccw := dir.CCW(2).Hex()
	cw := dir.CCW(4).Hex()
	coords := make([]Hex, 0, 2*half+1)
	// walk in ring order: up the clockwise side, corner, then down the other
	for i := half; i >= 1; i-- {
		coords = append(coords, corner.Add(cw.Mul(i)))
	}
	for i := int32(0); i <= half; i++ {
		coords = append(coords, corner.Add(ccw.Mul(i)))
	}
	return coords
}

// CornerWedge returns the sector of hexes within 30 degrees of
// the edge direction dir out to the given extent,
// the concatenation of CornerWedgeEdge for each radius.
func CornerWedge(center Hex, extent uint32, dir EdgeDirection) []Hex {
	var coords []Hex
	for r := uint32(0); r <= extent; r++ {
		coords = append(coords, CornerWedgeEdge(center, r, dir)...)
	}
	return coords
}
