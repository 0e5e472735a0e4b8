// Package hexgrid implements axial hexagonal grid coordinates
// and the algorithms that operate on them:
// neighbor and ring enumeration, line drawing, coordinate system
// conversions, minimal enclosing bounds, and toroidal wraparound.
//
// Coordinates follow the axial convention described at
// https://www.redblobgames.com/grids/hexagons/.
// A Hex stores the X and Y axes; the third cubic axis Z is always
// -X-Y and is derived on demand rather than stored.
// All rotational orderings in this package are counter-clockwise.
package hexgrid

import (
	"fmt"
	"math"
)

// Hex is an axial hexagonal grid coordinate.
//
// The zero value is the grid origin.
// Hex is comparable and may be used as a map key.
type Hex struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Zero is the grid origin.
var Zero = Hex{0, 0}

// XY returns the hex at axial coordinates (x, y).
func XY(x, y int32) Hex {
	return Hex{X: x, Y: y}
}

// Cubic returns the hex at cubic coordinates (x, y, z).
//
// Cubic coordinates are redundant:
// the three axes of a valid coordinate always sum to zero.
// Cubic panics when x+y+z != 0,
// since a non-zero sum means the caller computed the coordinate incorrectly.
func Cubic(x, y, z int32) Hex {
	if x+y+z != 0 {
		panic(fmt.Sprintf("hexgrid: invalid cubic coordinate (%d,%d,%d): axes must sum to 0", x, y, z))
	}
	return Hex{X: x, Y: y}
}

// Splat returns the hex with both axes set to v.
func Splat(v int32) Hex {
	return Hex{X: v, Y: v}
}

// Z returns the derived third cubic axis, -X-Y.
func (h Hex) Z() int32 {
	return -h.X - h.Y
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.X, h.Y)
}

// Add returns h + o componentwise.
func (h Hex) Add(o Hex) Hex {
	return Hex{h.X + o.X, h.Y + o.Y}
}

// Sub returns h - o componentwise.
func (h Hex) Sub(o Hex) Hex {
	return Hex{h.X - o.X, h.Y - o.Y}
}

// Neg returns the coordinate reflected through the origin.
func (h Hex) Neg() Hex {
	return Hex{-h.X, -h.Y}
}

// Mul returns h scaled by k.
func (h Hex) Mul(k int32) Hex {
	return Hex{h.X * k, h.Y * k}
}

// MulFloat scales h by f and rounds the result to the nearest hex.
func (h Hex) MulFloat(f float64) Hex {
	return Round(float64(h.X)*f, float64(h.Y)*f)
}

// Div divides h by k and rounds to the nearest hex.
//
// Division rounds to the nearest coordinate on the grid
// rather than truncating each axis,
// so that h.Div(k).Mul(k) stays as close to h as integer hexes allow.
//
// Div panics if k is zero.
func (h Hex) Div(k int32) Hex {
	if k == 0 {
		panic("hexgrid: division by zero")
	}
	return Round(float64(h.X)/float64(k), float64(h.Y)/float64(k))
}

// DivFloat divides h by f and rounds to the nearest hex.
func (h Hex) DivFloat(f float64) Hex {
	return Round(float64(h.X)/f, float64(h.Y)/f)
}

// DivHex divides h componentwise by o and rounds to the nearest hex.
//
// DivHex panics if either component of o is zero.
func (h Hex) DivHex(o Hex) Hex {
	if o.X == 0 || o.Y == 0 {
		panic("hexgrid: division by zero")
	}
	return Round(float64(h.X)/float64(o.X), float64(h.Y)/float64(o.Y))
}

// Rem returns the remainder of dividing h by k,
// defined as h - h.Div(k).Mul(k) so that it is consistent
// with the rounding behavior of Div.
func (h Hex) Rem(k int32) Hex {
	return h.Sub(h.Div(k).Mul(k))
}

// Abs returns the componentwise absolute value.
func (h Hex) Abs() Hex {
	return Hex{abs32(h.X), abs32(h.Y)}
}

// Min returns the componentwise minimum of h and o.
func (h Hex) Min(o Hex) Hex {
	return Hex{min(h.X, o.X), min(h.Y, o.Y)}
}

// Max returns the componentwise maximum of h and o.
func (h Hex) Max(o Hex) Hex {
	return Hex{max(h.X, o.X), max(h.Y, o.Y)}
}

// Signum returns the componentwise sign (-1, 0, or 1) of h.
func (h Hex) Signum() Hex {
	return Hex{sign32(h.X), sign32(h.Y)}
}

// Dot returns the dot product of the axial vectors h and o.
func (h Hex) Dot(o Hex) int32 {
	return h.X*o.X + h.Y*o.Y
}

// Round converts fractional axial coordinates to the nearest hex.
//
// Each axis is rounded independently,
// then the axis with the larger rounding error is corrected
// so that the cubic axes still sum to zero.
func Round(x, y float64) Hex {
	rx := math.Round(x)
	ry := math.Round(y)
	dx := x - rx
	dy := y - ry
	if math.Abs(dx) >= math.Abs(dy) {
		rx += math.Round(0.5*dy + dx)
	} else {
		ry += math.Round(0.5*dx + dy)
	}
	return Hex{int32(rx), int32(ry)}
}

// Length returns the distance from the origin to h,
// measured in hexes.
//
// The length of a cubic coordinate is (|x|+|y|+|z|)/2.
// The sum is computed in 64 bits and saturates at math.MaxInt32,
// so coordinates near the int32 extremes return a valid
// (if clamped) length instead of overflowing.
func (h Hex) Length() int32 {
	l := (abs64(int64(h.X)) + abs64(int64(h.Y)) + abs64(int64(h.X)+int64(h.Y))) / 2
	if l > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(l)
}

// DistanceTo returns the number of hex steps between h and o.
func (h Hex) DistanceTo(o Hex) int32 {
	return o.Sub(h).Length()
}

// RotateLeft rotates h 60 degrees counter-clockwise around the origin.
func (h Hex) RotateLeft() Hex {
	return Hex{-h.Z(), -h.X}
}

// RotateRight rotates h 60 degrees clockwise around the origin.
func (h Hex) RotateRight() Hex {
	return Hex{-h.Y, -h.Z()}
}

// RotateLeftBy rotates h counter-clockwise around the origin
// by n 60-degree steps. n is taken mod 6.
func (h Hex) RotateLeftBy(n uint32) Hex {
	for range n % 6 {
		h = h.RotateLeft()
	}
	return h
}

// RotateRightBy rotates h clockwise around the origin
// by n 60-degree steps. n is taken mod 6.
func (h Hex) RotateRightBy(n uint32) Hex {
	for range n % 6 {
		h = h.RotateRight()
	}
	return h
}

// RotateLeftAround rotates h 60 degrees counter-clockwise around center.
func (h Hex) RotateLeftAround(center Hex) Hex {
	return h.Sub(center).RotateLeft().Add(center)
}

// RotateRightAround rotates h 60 degrees clockwise around center.
func (h Hex) RotateRightAround(center Hex) Hex {
	return h.Sub(center).RotateRight().Add(center)
}

// ReflectX reflects h across the cubic x axis.
func (h Hex) ReflectX() Hex {
	return Hex{h.X, h.Z()}
}

// ReflectY reflects h across the cubic y axis.
func (h Hex) ReflectY() Hex {
	return Hex{h.Z(), h.Y}
}

// ReflectZ reflects h across the cubic z axis.
func (h Hex) ReflectZ() Hex {
	return Hex{h.Y, h.X}
}

// Lerp linearly interpolates between h and o at t
// and rounds to the nearest hex.
// t=0 returns h and t=1 returns o.
func (h Hex) Lerp(o Hex, t float64) Hex {
	x := float64(h.X) + (float64(o.X)-float64(h.X))*t
	y := float64(h.Y) + (float64(o.Y)-float64(h.Y))*t
	return Round(x, y)
}

// Line returns the hexes on the straight line from a to b,
// inclusive of both endpoints.
// The result contains a.DistanceTo(b)+1 hexes with no duplicates,
// ordered from a to b.
func Line(a, b Hex) []Hex {
	d := a.DistanceTo(b)
	line := make([]Hex, 0, d+1)
	step := 1 / math.Max(float64(d), 1)
	for i := int32(0); i <= d; i++ {
		line = append(line, a.Lerp(b, step*float64(i)))
	}
	return line
}

// Neighbor returns the hex adjacent to h in the given edge direction.
func (h Hex) Neighbor(d EdgeDirection) Hex {
	return h.Add(d.Hex())
}

// DiagonalNeighbor returns the second-ring hex
// across the vertex of h in the given direction.
func (h Hex) DiagonalNeighbor(d VertexDirection) Hex {
	return h.Add(d.Hex())
}

// AllNeighbors returns the six hexes adjacent to h
// in counter-clockwise edge direction order.
func (h Hex) AllNeighbors() [6]Hex {
	var n [6]Hex
	for d := range EdgeDirection(6) {
		n[d] = h.Neighbor(d)
	}
	return n
}

// AllDiagonals returns the six diagonal neighbors of h
// in counter-clockwise vertex direction order.
func (h Hex) AllDiagonals() [6]Hex {
	var n [6]Hex
	for d := range VertexDirection(6) {
		n[d] = h.DiagonalNeighbor(d)
	}
	return n
}

// NeighborDirection returns the edge direction from h to o,
// or false when o is not adjacent to h.
func (h Hex) NeighborDirection(o Hex) (EdgeDirection, bool) {
	v := o.Sub(h)
	for d := range EdgeDirection(6) {
		if d.Hex() == v {
			return d, true
		}
	}
	return 0, false
}

// Pack encodes h into a uint64 suitable for sort keys
// or compact binary storage.
// The encoding preserves equality: Unpack(h.Pack()) == h.
func (h Hex) Pack() uint64 {
	return uint64(uint32(h.X))<<32 | uint64(uint32(h.Y))
}

// Unpack decodes a coordinate packed with Hex.Pack.
func Unpack(v uint64) Hex {
	return Hex{X: int32(uint32(v >> 32)), Y: int32(uint32(v))}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func sign32(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
