package hexmap

import (
	"github.com/Travis-Britz/hexgrid"
)

// Outline generates a list of world coordinates that define a polygon
// shaped like the outside of a region of hexes.
//
// coords must be an edge-connected set; holes inside the region are
// ignored because only the outer boundary is walked. The final point
// does not return to the start, matching the self-closing <polygon>
// SVG element.
func Outline(l Layout, coords []hexgrid.Hex) []Point {
	if len(coords) == 0 {
		return nil
	}
	region := make(map[hexgrid.Hex]bool, len(coords))
	var leftmost hexgrid.Hex
	minX := 0.0
	// build up a set of hexes in the region to quickly check whether a
	// hex is part of the region, keeping track of the hex whose center
	// is leftmost in world space
	for i, h := range coords {
		region[h] = true
		if x := l.Center(h).X; i == 0 || x < minX {
			minX = x
			leftmost = h
		}
	}

	// To get the outline of a region we walk along the outside edges,
	// treating it much like a graph structure where the nodes are the "Y"
	// intersection of three hexagon corners,
	// and the edges of the graph are the flat hexagon edges between the corners.
	// Our starting point needs to be an outer corner of the region.
	// Corner 3 of the leftmost hex points left in both orientations,
	// so both hexes sharing it have centers strictly further left
	// and cannot be part of the region.
	// From there we simply walk around the outside of the region.
	start := corner{Hex: leftmost, index: 3}
	path := []Point{l.Corner(start.Hex, start.index)}
	for current := l.step(start, region); current != start; current = l.step(current, region) {
		path = append(path, l.Corner(current.Hex, current.index))
	}
	return path
}

// corner is a node on the boundary graph represented by a hex grid tile
// and corner offset. Three different hex corners may share the same
// world position.
type corner struct {
	hexgrid.Hex
	index int
}

// step advances one edge along the boundary.
//
// Every corner is the intersection of three edges.
// While walking along the outer path there are three possible directions
// at each corner: turn right, turn left, or turn back.
// Turning back is never correct for tracing an outline,
// so we try turning right first.
// A right turn crosses onto a neighboring hex tile;
// we take it only when that neighbor is part of the region.
// Otherwise we turn left and stay on the current hex tile.
// This has the convenient property that the last move always ends on the
// starting corner.
//
// Each corner can be represented three different ways,
// one per hex sharing the point.
// Because a right turn re-homes the corner onto the neighbor tile,
// duplicate representations are never produced along a single walk.
func (l Layout) step(current corner, region map[hexgrid.Hex]bool) corner {
	right := corner{
		Hex:   current.Hex.Neighbor(l.Orientation.cornerEdge[current.index]),
		index: (current.index + 1) % 6,
	}
	if region[right.Hex] {
		return right
	}
	return corner{
		Hex:   current.Hex,
		index: (current.index + 5) % 6,
	}
}
