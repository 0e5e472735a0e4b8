package hexgrid_test

import (
	"testing"

	"github.com/Travis-Britz/hexgrid"
)

func uniformCost(_, _ hexgrid.Hex) (uint32, bool) { return 1, true }

func TestAStarOpenField(t *testing.T) {
	start := hexgrid.Hex{X: -2, Y: 1}
	goal := hexgrid.Hex{X: 3, Y: -2}
	path := hexgrid.AStar(start, goal, uniformCost)
	if path == nil {
		t.Fatal("expected a path")
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Fatalf("expected a path from %v to %v; got %v", start, goal, path)
	}
	// on an open field the path length matches hex distance
	if expected := int(start.DistanceTo(goal)) + 1; len(path) != expected {
		t.Errorf("expected %d hexes; got %d", expected, len(path))
	}
	for i := 1; i < len(path); i++ {
		if path[i-1].DistanceTo(path[i]) != 1 {
			t.Errorf("hexes %v and %v are not adjacent", path[i-1], path[i])
		}
	}
}

func TestAStarTrivial(t *testing.T) {
	h := hexgrid.Hex{X: 5, Y: -5}
	path := hexgrid.AStar(h, h, uniformCost)
	if len(path) != 1 || path[0] != h {
		t.Errorf("expected [%v]; got %v", h, path)
	}
}

func TestAStarRoutesAroundWalls(t *testing.T) {
	// a wall on the x axis with a single gap at (4,0)
	cost := func(_, b hexgrid.Hex) (uint32, bool) {
		if b.Y == 0 && b.X != 4 && b.X != 0 && b.X != 8 {
			return 0, false
		}
		return 1, true
	}
	start := hexgrid.Hex{X: 0, Y: -2}
	goal := hexgrid.Hex{X: 0, Y: 2}
	path := hexgrid.AStar(start, goal, cost)
	if path == nil {
		t.Fatal("expected a path")
	}
	through := false
	for _, h := range path {
		if h.Y == 0 && h.X != 0 && h.X != 4 && h.X != 8 {
			t.Errorf("path crossed the wall at %v", h)
		}
		if h == (hexgrid.Hex{X: 4, Y: 0}) || h == (hexgrid.Hex{X: 0, Y: 0}) || h == (hexgrid.Hex{X: 8, Y: 0}) {
			through = true
		}
	}
	if !through {
		t.Errorf("path never crossed the wall line: %v", path)
	}
}

func TestAStarNoPath(t *testing.T) {
	// the goal is sealed behind an impassable ring inside a bounded
	// arena; without the arena bound the search would expand forever
	goal := hexgrid.Hex{X: 10, Y: 0}
	cost := func(_, b hexgrid.Hex) (uint32, bool) {
		if b.DistanceTo(goal) == 1 || b.Length() > 15 {
			return 0, false
		}
		return 1, true
	}
	if path := hexgrid.AStar(hexgrid.Hex{}, goal, cost); path != nil {
		t.Errorf("expected no path; got %v", path)
	}
}

func TestAStarBlockedEndpoints(t *testing.T) {
	blockGoal := func(_, b hexgrid.Hex) (uint32, bool) {
		return 1, b != hexgrid.Hex{X: 1, Y: 1}
	}
	if path := hexgrid.AStar(hexgrid.Hex{}, hexgrid.Hex{X: 1, Y: 1}, blockGoal); path != nil {
		t.Errorf("expected no path to a blocked goal; got %v", path)
	}
	blockStart := func(_, b hexgrid.Hex) (uint32, bool) {
		return 1, b != hexgrid.Hex{}
	}
	if path := hexgrid.AStar(hexgrid.Hex{}, hexgrid.Hex{X: 1, Y: 1}, blockStart); path != nil {
		t.Errorf("expected no path from a blocked start; got %v", path)
	}
}

func TestAStarPrefersCheapTerrain(t *testing.T) {
	// stepping onto y=0 costs 10, anywhere else costs 1.
	// the route has to cross the expensive line but should only pay
	// for it once
	cost := func(_, b hexgrid.Hex) (uint32, bool) {
		if b.Y == 0 {
			return 10, true
		}
		return 1, true
	}
	start := hexgrid.Hex{X: 0, Y: -1}
	goal := hexgrid.Hex{X: 4, Y: 1}
	path := hexgrid.AStar(start, goal, cost)
	if path == nil {
		t.Fatal("expected a path")
	}
	expensive := 0
	for _, h := range path {
		if h.Y == 0 {
			expensive++
		}
	}
	if expensive != 1 {
		t.Errorf("expected exactly one expensive crossing; got %d: %v", expensive, path)
	}
}
