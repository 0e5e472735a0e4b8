package hexgrid

import "math"

// Bounds describes the filled hexagonal region of every hex
// within Radius steps of Center.
type Bounds struct {
	Center Hex    `json:"center"`
	Radius uint32 `json:"radius"`
}

// NewBounds returns the bounds with the given center and radius.
func NewBounds(center Hex, radius uint32) Bounds {
	return Bounds{Center: center, Radius: radius}
}

// BoundsFrom computes the minimal bounds enclosing every
// coordinate in coords.
// An empty set yields zero-radius bounds at the origin.
//
// Minimality means no bounds with a smaller radius contains the
// set; rebuilding bounds from AllCoords or Corners of the result
// reproduces it exactly.
func BoundsFrom(coords []Hex) Bounds {
	if len(coords) == 0 {
		return Bounds{}
	}
	lo := [3]int32{math.MaxInt32, math.MaxInt32, math.MaxInt32}
	hi := [3]int32{math.MinInt32, math.MinInt32, math.MinInt32}
	for _, h := range coords {
		c := h.ToCubic()
		for i := range 3 {
			lo[i] = min(lo[i], c[i])
			hi[i] = max(hi[i], c[i])
		}
	}

	// The radius is forced up by two constraints:
	// a single axis spanning more than 2r,
	// and the axis sums drifting more than 3r from zero
	// (no center can be near all points at once).
	var duo, trio int32
	for i := range 3 {
		duo = max(duo, ceilDiv(hi[i]-lo[i], 2))
	}
	trio = max(trio, ceilDiv(hi[0]+hi[1]+hi[2], 3))
	trio = max(trio, ceilDiv(-lo[0]-lo[1]-lo[2], 3))
	radius := max(duo, trio)

	// A valid center must sit within radius of the extremes on
	// every axis, so each cubic axis is confined to the window
	// [hi-radius, lo+radius]. Start each axis at the low edge of
	// its window (the sum lands at or below zero) and pay the
	// deficit back through x then y; z follows from the zero sum.
	var cLo, cHi [3]int32
	for i := range 3 {
		cLo[i] = hi[i] - radius
		cHi[i] = lo[i] + radius
	}
	cx := cLo[0]
	cy := cLo[1]
	deficit := -(cLo[0] + cLo[1] + cLo[2])
	bump := min(deficit, cHi[0]-cLo[0])
	cx += bump
	deficit -= bump
	cy += min(deficit, cHi[1]-cLo[1])

	return Bounds{Center: Hex{cx, cy}, Radius: uint32(radius)}
}

// InBounds reports whether h lies within the bounds.
func (b Bounds) InBounds(h Hex) bool {
	return b.Center.DistanceTo(h) <= int32(b.Radius)
}

// Count returns the number of hexes within the bounds.
func (b Bounds) Count() int {
	return RangeCount(b.Radius)
}

// AllCoords returns every hex within the bounds.
func (b Bounds) AllCoords() []Hex {
	return Range(b.Center, b.Radius)
}

// Corners returns the six corner hexes of the bounds
// in counter-clockwise edge direction order.
func (b Bounds) Corners() [6]Hex {
	var corners [6]Hex
	for d := range EdgeDirection(6) {
		corners[d] = b.Center.Add(d.Hex().Mul(int32(b.Radius)))
	}
	return corners
}

// Intersection returns the hexes contained in both b and o.
func (b Bounds) Intersection(o Bounds) []Hex {
	small, big := b, o
	if small.Radius > big.Radius {
		small, big = big, small
	}
	var coords []Hex
	for _, h := range small.AllCoords() {
		if big.InBounds(h) {
			coords = append(coords, h)
		}
	}
	return coords
}

// Mirrors returns the six mirror centers of the origin for
// wraparound hexagon maps of the given radius.
// Subtracting a mirror from a coordinate moves it to the same
// cell of an adjacent copy of the map.
func Mirrors(radius uint32) [6]Hex {
	mirror := Hex{2*int32(radius) + 1, -int32(radius)}
	left, right := mirror.RotateLeft(), mirror.RotateRight()
	return [6]Hex{left, mirror, right, left.Neg(), mirror.Neg(), right.Neg()}
}

// WrapInRange wraps h onto the hexagon map of the given radius
// around the origin, producing the canonical representative of
// its wraparound equivalence class.
//
// Wrapping repeatedly subtracts the nearest mirror center;
// each subtraction strictly reduces the distance to the origin,
// so the loop terminates.
func WrapInRange(h Hex, radius uint32) Hex {
	mirrors := Mirrors(radius)
	return wrapWith(h, radius, &mirrors)
}

func wrapWith(h Hex, radius uint32, mirrors *[6]Hex) Hex {
	for h.Length() > int32(radius) {
		nearest := mirrors[0]
		best := h.DistanceTo(nearest)
		for _, m := range mirrors[1:] {
			if d := h.DistanceTo(m); d < best {
				nearest, best = m, d
			}
		}
		h = h.Sub(nearest)
	}
	return h
}

// WrapLocal wraps coord into the bounds and returns its
// position relative to the bounds center.
func (b Bounds) WrapLocal(coord Hex) Hex {
	return WrapInRange(coord.Sub(b.Center), b.Radius)
}

// Wrap wraps coord into the bounds, for seamless wraparound
// hexagon maps. The result is always in bounds and wrapping is
// idempotent: coordinates already in bounds are unchanged.
func (b Bounds) Wrap(coord Hex) Hex {
	return b.WrapLocal(coord).Add(b.Center)
}

// WrappedNeighbors returns the six neighbors of h,
// each wrapped into the bounds.
func (b Bounds) WrappedNeighbors(h Hex) [6]Hex {
	n := h.AllNeighbors()
	for i, c := range n {
		n[i] = b.Wrap(c)
	}
	return n
}

// ceilDiv divides rounding toward positive infinity.
func ceilDiv(a, b int32) int32 {
	return floorDiv(a+b-1, b)
}
