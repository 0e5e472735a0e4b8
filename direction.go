package hexgrid

import "fmt"

// EdgeDirection identifies one of the six hexes sharing an edge
// with a given hex.
// Values are indices 0 through 5 in counter-clockwise order,
// starting from the positive X axis.
// Arithmetic on directions wraps mod 6.
type EdgeDirection uint8

// Edge directions in counter-clockwise order.
// For a flat-top orientation these are the
// right, top-right, top-left, left, bottom-left, and bottom-right edges.
const (
	EdgeRight EdgeDirection = iota
	EdgeTopRight
	EdgeTopLeft
	EdgeLeft
	EdgeBottomLeft
	EdgeBottomRight
)

var edgeOffsets = [6]Hex{
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, 0},
	{-1, 1},
	{0, 1},
}

// Hex returns the unit coordinate offset for the direction.
func (d EdgeDirection) Hex() Hex {
	return edgeOffsets[d%6]
}

// CCW returns the direction rotated n 60-degree steps counter-clockwise.
func (d EdgeDirection) CCW(n uint8) EdgeDirection {
	return (d + EdgeDirection(n)) % 6
}

// CW returns the direction rotated n 60-degree steps clockwise.
func (d EdgeDirection) CW(n uint8) EdgeDirection {
	return (d + 6 - EdgeDirection(n)%6) % 6
}

// LeftVertex returns the vertex direction
// one 30-degree step counter-clockwise from d.
func (d EdgeDirection) LeftVertex() VertexDirection {
	return VertexDirection(d % 6)
}

// RightVertex returns the vertex direction
// one 30-degree step clockwise from d.
func (d EdgeDirection) RightVertex() VertexDirection {
	return VertexDirection(d % 6).CW(1)
}

func (d EdgeDirection) String() string {
	switch d % 6 {
	case EdgeRight:
		return "right"
	case EdgeTopRight:
		return "top-right"
	case EdgeTopLeft:
		return "top-left"
	case EdgeLeft:
		return "left"
	case EdgeBottomLeft:
		return "bottom-left"
	case EdgeBottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("EdgeDirection(%d)", uint8(d))
}

// VertexDirection identifies one of the six diagonal neighbors
// of a hex, the hexes sharing only a vertex with it.
// Values are indices 0 through 5 in counter-clockwise order;
// vertex direction d lies between edge directions d and d+1.
type VertexDirection uint8

// Vertex directions in counter-clockwise order.
const (
	VertexTopRight VertexDirection = iota
	VertexTop
	VertexTopLeft
	VertexBottomLeft
	VertexBottom
	VertexBottomRight
)

var vertexOffsets = [6]Hex{
	{2, -1},
	{1, -2},
	{-1, -1},
	{-2, 1},
	{-1, 2},
	{1, 1},
}

// Hex returns the coordinate offset for the direction.
// Diagonal neighbors are two hexes away,
// so the offset has length 2.
func (d VertexDirection) Hex() Hex {
	return vertexOffsets[d%6]
}

// CCW returns the direction rotated n 60-degree steps counter-clockwise.
func (d VertexDirection) CCW(n uint8) VertexDirection {
	return (d + VertexDirection(n)) % 6
}

// CW returns the direction rotated n 60-degree steps clockwise.
func (d VertexDirection) CW(n uint8) VertexDirection {
	return (d + 6 - VertexDirection(n)%6) % 6
}

// LeftEdge returns the edge direction
// one 30-degree step counter-clockwise from d.
func (d VertexDirection) LeftEdge() EdgeDirection {
	return EdgeDirection(d % 6).CCW(1)
}

// RightEdge returns the edge direction
// one 30-degree step clockwise from d.
func (d VertexDirection) RightEdge() EdgeDirection {
	return EdgeDirection(d % 6)
}

func (d VertexDirection) String() string {
	switch d % 6 {
	case VertexTopRight:
		return "top-right"
	case VertexTop:
		return "top"
	case VertexTopLeft:
		return "top-left"
	case VertexBottomLeft:
		return "bottom-left"
	case VertexBottom:
		return "bottom"
	case VertexBottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("VertexDirection(%d)", uint8(d))
}
