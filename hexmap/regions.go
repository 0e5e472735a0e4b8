package hexmap

import (
	"github.com/Travis-Britz/hexgrid"
	"github.com/Travis-Britz/structures/stack"
)

// FloodFill returns the edge-connected set of coordinates reachable
// from start without crossing any coordinate for which blocked returns
// true. start itself is included unless it is blocked.
//
// limit caps the number of returned coordinates;
// a negative limit means unbounded.
// On an unbounded grid a fill with no blocking coordinates never
// terminates, so pass a limit or make blocked act as the boundary.
func FloodFill(start hexgrid.Hex, blocked func(hexgrid.Hex) bool, limit int) []hexgrid.Hex {
	if limit == 0 || blocked(start) {
		return nil
	}
	frontier := &stack.Stack[hexgrid.Hex]{}
	visited := map[hexgrid.Hex]bool{start: true}
	filled := []hexgrid.Hex{start}

	for current, more := start, true; more; current, more = frontier.Pop() {
		if limit >= 0 && len(filled) >= limit {
			break
		}
		for _, next := range current.AllNeighbors() {
			if visited[next] {
				continue
			}
			visited[next] = true
			if blocked(next) {
				continue
			}
			frontier.Push(next)
			filled = append(filled, next)
			if limit >= 0 && len(filled) >= limit {
				return filled
			}
		}
	}
	return filled
}

// FieldOfMovement computes the set of coordinates reachable from start
// with a movement budget.
//
// cost returns the cost of moving through a tile.
// Tiles that cannot be moved through return ok=false.
// Each step costs the tile's cost plus one,
// so a zero-cost tile still consumes one point of budget per step.
// start is not included in the result.
func FieldOfMovement(start hexgrid.Hex, budget uint32, cost func(hexgrid.Hex) (uint32, bool)) []hexgrid.Hex {
	computed := map[hexgrid.Hex]uint32{start: 0}
	var field []hexgrid.Hex
	for i := uint32(1); i <= budget; i++ {
		for _, coord := range hexgrid.Ring(start, i) {
			c, ok := cost(coord)
			if !ok {
				continue
			}

			// the cheapest already-reached neighbor is the way in
			neighborCost, reached := uint32(0), false
			for _, n := range coord.AllNeighbors() {
				if nc, ok := computed[n]; ok && (!reached || nc < neighborCost) {
					neighborCost = nc
					reached = true
				}
			}
			if !reached {
				continue
			}

			total := c + 1 + neighborCost
			if total > budget {
				continue
			}
			computed[coord] = total
			field = append(field, coord)
		}
	}
	return field
}
