package hexgrid

// DoubledMode selects which axis doubles when converting to
// doubled coordinates.
// See https://www.redblobgames.com/grids/hexagons/#coordinates-doubled.
type DoubledMode uint8

const (
	// DoubledWidth doubles column values.
	DoubledWidth DoubledMode = iota
	// DoubledHeight doubles row values.
	DoubledHeight
)

// OffsetMode selects which rows or columns are shoved when
// converting to offset coordinates.
// See https://www.redblobgames.com/grids/hexagons/#coordinates-offset.
type OffsetMode uint8

const (
	// OffsetEvenColumns is a vertical layout shoving even columns down.
	OffsetEvenColumns OffsetMode = iota
	// OffsetOddColumns is a vertical layout shoving odd columns down.
	OffsetOddColumns
	// OffsetEvenRows is a horizontal layout shoving even rows right.
	OffsetEvenRows
	// OffsetOddRows is a horizontal layout shoving odd rows right.
	OffsetOddRows
)

// ToCubic returns the cubic [x, y, z] form of h.
func (h Hex) ToCubic() [3]int32 {
	return [3]int32{h.X, h.Y, h.Z()}
}

// ToDoubled converts h to doubled coordinates,
// returned as [column, row].
func (h Hex) ToDoubled(mode DoubledMode) [2]int32 {
	if mode == DoubledWidth {
		return [2]int32{2*h.X + h.Y, h.Y}
	}
	return [2]int32{h.X, 2*h.Y + h.X}
}

// FromDoubled converts doubled [column, row] coordinates back
// to axial. It is the exact inverse of Hex.ToDoubled for the
// same mode.
func FromDoubled(col, row int32, mode DoubledMode) Hex {
	if mode == DoubledWidth {
		return Hex{(col - row) / 2, row}
	}
	return Hex{col, (row - col) / 2}
}

// ToOffset converts h to offset coordinates,
// returned as [column, row].
func (h Hex) ToOffset(mode OffsetMode) [2]int32 {
	switch mode {
	case OffsetEvenColumns:
		return [2]int32{h.X, h.Y + (h.X+(h.X&1))/2}
	case OffsetOddColumns:
		return [2]int32{h.X, h.Y + (h.X-(h.X&1))/2}
	case OffsetEvenRows:
		return [2]int32{h.X + (h.Y+(h.Y&1))/2, h.Y}
	default: // OffsetOddRows
		return [2]int32{h.X + (h.Y-(h.Y&1))/2, h.Y}
	}
}

// FromOffset converts offset [column, row] coordinates back to
// axial. It is the exact inverse of Hex.ToOffset for the same mode.
func FromOffset(col, row int32, mode OffsetMode) Hex {
	switch mode {
	case OffsetEvenColumns:
		return Hex{col, row - (col+(col&1))/2}
	case OffsetOddColumns:
		return Hex{col, row - (col-(col&1))/2}
	case OffsetEvenRows:
		return Hex{col - (row+(row&1))/2, row}
	default: // OffsetOddRows
		return Hex{col - (row-(row&1))/2, row}
	}
}

// hexmodShift is the multiplier of the hexmod numeral system
// for a hexagon of the given radius.
// See https://observablehq.com/@sanderevers/hexmod-representation.
func hexmodShift(radius uint32) int32 {
	return 3*int32(radius) + 2
}

// ToHexmod converts h to its hexmod index within the hexagon of
// the given radius around the origin:
// a single integer in [0, 3r(r+1)+1) identifying the hex.
// Coordinates outside the hexagon alias onto indices of
// coordinates inside it.
func (h Hex) ToHexmod(radius uint32) uint32 {
	area := int32(RangeCount(radius))
	v := (h.Y + hexmodShift(radius)*h.X) % area
	if v < 0 {
		v += area
	}
	return uint32(v)
}

// FromHexmod converts a hexmod index back to the axial
// coordinate inside the hexagon of the given radius.
// The result is unspecified when index is not a valid hexmod
// value for the radius.
func FromHexmod(index, radius uint32) Hex {
	shift := hexmodShift(radius)
	r := int32(radius)
	i := int32(index)
	ms := (i + r) / shift
	mcs := (i + 2*r) / (shift - 1)
	return Hex{
		X: ms*(r+1) - mcs*r,
		Y: i - ms*(2*r+1) - mcs*(r+1),
	}
}

// ToLowerRes returns the coordinate of the chunk containing h
// when the grid is tiled by hexagons of the given radius.
// The result is expressed in the lower-resolution chunk grid.
func (h Hex) ToLowerRes(radius uint32) Hex {
	x, y, z := h.X, h.Y, h.Z()
	area := int32(RangeCount(radius))
	shift := hexmodShift(radius)
	cx := floorDiv(y+shift*x, area)
	cy := floorDiv(z+shift*y, area)
	cz := floorDiv(x+shift*z, area)
	return Hex{
		X: floorDiv(1+cx-cy, 3),
		Y: floorDiv(1+cy-cz, 3),
	}
}

// ToHigherRes returns the center of h in a higher resolution
// grid chunked by hexagons of the given radius:
// the inverse of ToLowerRes for chunk centers.
func (h Hex) ToHigherRes(radius uint32) Hex {
	r := int32(radius)
	return Hex{
		X: h.X*(r+1) - r*h.Z(),
		Y: h.Y*(r+1) - r*h.X,
	}
}

// ToLocal returns the position of h relative to the center of
// its containing chunk of the given radius.
// The result always lies within `radius` of the origin,
// which also makes ToLocal a wraparound for hexagon maps
// centered on the origin.
func (h Hex) ToLocal(radius uint32) Hex {
	center := h.ToLowerRes(radius).ToHigherRes(radius)
	return h.Sub(center)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
