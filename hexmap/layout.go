// Package hexmap bridges hex grid coordinates and world/pixel space:
// layouts, region outlines, raster and SVG rendering, and region
// traversal helpers.
package hexmap

import (
	"math"

	"github.com/Travis-Britz/hexgrid"
)

// Point is an x,y coordinate on a plane where the top left is 0,0.
// This correlates to the SVG coordinate system and most computer graphics.
type Point struct {
	X, Y float64
}

// Orientation holds the projection matrices for one of the two hexagon
// rotations. Use [Pointy] or [Flat]; the zero value is not usable.
type Orientation struct {
	// forward converts hex coordinates to world coordinates.
	forward [4]float64
	// inverse converts world coordinates back to fractional hex coordinates.
	inverse [4]float64
	// startAngle is the angle of corner 0 in radians.
	startAngle float64
	// cornerEdge[c] is the edge crossed when an outline walk turns off the
	// current hex at corner c.
	cornerEdge [6]hexgrid.EdgeDirection
}

const sqrt3 = 1.7320508075688772

// Pointy is the point-up hexagon orientation.
// Corner 0 sits at 30 degrees; corners advance by 60 degrees each.
var Pointy = Orientation{
	forward:    [4]float64{sqrt3, sqrt3 / 2, 0, 3. / 2},
	inverse:    [4]float64{sqrt3 / 3, -1. / 3, 0, 2. / 3},
	startAngle: math.Pi / 6,
	cornerEdge: [6]hexgrid.EdgeDirection{
		hexgrid.EdgeRight,
		hexgrid.EdgeBottomRight,
		hexgrid.EdgeBottomLeft,
		hexgrid.EdgeLeft,
		hexgrid.EdgeTopLeft,
		hexgrid.EdgeTopRight,
	},
}

// Flat is the flat-top hexagon orientation.
// Corner 0 sits at 0 degrees; corners advance by 60 degrees each.
var Flat = Orientation{
	forward:    [4]float64{3. / 2, 0, sqrt3 / 2, sqrt3},
	inverse:    [4]float64{2. / 3, 0, -1. / 3, sqrt3 / 3},
	startAngle: 0,
	cornerEdge: [6]hexgrid.EdgeDirection{
		hexgrid.EdgeTopRight,
		hexgrid.EdgeRight,
		hexgrid.EdgeBottomRight,
		hexgrid.EdgeBottomLeft,
		hexgrid.EdgeLeft,
		hexgrid.EdgeTopLeft,
	},
}

// Layout is the bridge between hex coordinates and world/pixel
// coordinates.
//
// Size is the distance from a hex center to its corners on each world
// axis; the two components may differ for squashed grids. Origin is the
// world position of hex (0,0).
type Layout struct {
	Orientation Orientation
	Origin      Point
	Size        Point
}

// Center returns the world position of the center of h.
func (l Layout) Center(h hexgrid.Hex) Point {
	m := l.Orientation.forward
	x := m[0]*float64(h.X) + m[1]*float64(h.Y)
	y := m[2]*float64(h.X) + m[3]*float64(h.Y)
	return Point{
		X: x*l.Size.X + l.Origin.X,
		Y: y*l.Size.Y + l.Origin.Y,
	}
}

// HexAt returns the hex containing the world position p.
func (l Layout) HexAt(p Point) hexgrid.Hex {
	m := l.Orientation.inverse
	x := (p.X - l.Origin.X) / l.Size.X
	y := (p.Y - l.Origin.Y) / l.Size.Y
	return hexgrid.Round(
		m[0]*x+m[1]*y,
		m[2]*x+m[3]*y,
	)
}

// Corner returns the world position of one corner of h.
// Corners are indexed 0 through 5, starting from the orientation's
// start angle and advancing by 60 degrees each.
func (l Layout) Corner(h hexgrid.Hex, corner int) Point {
	center := l.Center(h)
	angle := float64(corner)*math.Pi/3 + l.Orientation.startAngle
	return Point{
		X: center.X + l.Size.X*math.Cos(angle),
		Y: center.Y + l.Size.Y*math.Sin(angle),
	}
}

// Corners returns the world positions of all six corners of h.
func (l Layout) Corners(h hexgrid.Hex) [6]Point {
	var corners [6]Point
	for c := range corners {
		corners[c] = l.Corner(h, c)
	}
	return corners
}
