package hexgrid

import "container/heap"

// AStar finds a cheapest path from start to goal over the hex grid.
//
// The cost function returns the cost of stepping from a to an
// adjacent hex b, or false when b cannot be entered at all.
// Hex distance to the goal serves as the heuristic;
// it never overestimates, so the returned path cost is optimal.
//
// The returned path includes both endpoints, start first.
// AStar returns nil when no path exists or when the goal itself
// cannot be entered.
func AStar(start, goal Hex, cost func(a, b Hex) (uint32, bool)) []Hex {
	if _, ok := cost(goal, goal); !ok {
		return nil
	}
	startCost, ok := cost(start, start)
	if !ok {
		return nil
	}

	open := &nodeQueue{{coord: start, score: startCost + uint32(start.DistanceTo(goal))}}
	costs := map[Hex]uint32{start: 0}
	cameFrom := map[Hex]Hex{}

	for open.Len() > 0 {
		current := heap.Pop(open).(pathNode).coord
		if current == goal {
			return reconstructPath(cameFrom, start, goal)
		}
		currentCost := costs[current]
		for _, neighbor := range current.AllNeighbors() {
			stepCost, ok := cost(current, neighbor)
			if !ok {
				continue
			}
			neighborCost := currentCost + stepCost
			if known, seen := costs[neighbor]; seen && known <= neighborCost {
				continue
			}
			cameFrom[neighbor] = current
			costs[neighbor] = neighborCost
			heap.Push(open, pathNode{
				coord: neighbor,
				score: neighborCost + uint32(neighbor.DistanceTo(goal)),
			})
		}
	}
	return nil
}

func reconstructPath(cameFrom map[Hex]Hex, start, end Hex) []Hex {
	path := []Hex{end}
	for end != start {
		prev, ok := cameFrom[end]
		if !ok {
			break
		}
		path = append(path, prev)
		end = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pathNode struct {
	coord Hex
	score uint32
}

type nodeQueue []pathNode

func (q nodeQueue) Len() int           { return len(q) }
func (q nodeQueue) Less(i, j int) bool { return q[i].score < q[j].score }
func (q nodeQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)        { *q = append(*q, x.(pathNode)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
