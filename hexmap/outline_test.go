package hexmap_test

import (
	"math"
	"testing"

	"github.com/Travis-Britz/hexgrid"
	"github.com/Travis-Britz/hexgrid/hexmap"
)

func TestOutlineSingleHex(t *testing.T) {
	l := hexmap.Layout{Orientation: hexmap.Pointy, Size: hexmap.Point{X: 10, Y: 10}}
	outline := hexmap.Outline(l, []hexgrid.Hex{{}})
	expected := [][2]float64{
		{-9, -5},
		{-9, 5},
		{0, 10},
		{9, 5},
		{9, -5},
		{0, -10},
	}
	if len(outline) != len(expected) {
		t.Fatalf("expected %d points; got %d", len(expected), len(outline))
	}
	for i, p := range outline {
		x, y := math.Round(p.X), math.Round(p.Y)
		if x != expected[i][0] || y != expected[i][1] {
			t.Errorf("point %d: expected (%v,%v); got (%v,%v)", i, expected[i][0], expected[i][1], x, y)
		}
	}
}

func TestOutlineHexagonPerimeter(t *testing.T) {
	// a filled hexagon of radius r has 6*(2r+1) boundary edges
	orientations := map[string]hexmap.Orientation{
		"pointy": hexmap.Pointy,
		"flat":   hexmap.Flat,
	}
	for name, o := range orientations {
		l := hexmap.Layout{Orientation: o, Size: hexmap.Point{X: 1, Y: 1}}
		for r := uint32(0); r <= 3; r++ {
			region := hexgrid.Range(hexgrid.Hex{X: -1, Y: 2}, r)
			outline := hexmap.Outline(l, region)
			if expected := 6 * (2*int(r) + 1); len(outline) != expected {
				t.Errorf("%s radius %d: expected %d points; got %d", name, r, expected, len(outline))
			}
			assertClosedUnitRing(t, name, outline)
		}
	}
}

func TestOutlineIrregularRegion(t *testing.T) {
	// an L-shaped region
	region := []hexgrid.Hex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	for name, o := range map[string]hexmap.Orientation{"pointy": hexmap.Pointy, "flat": hexmap.Flat} {
		l := hexmap.Layout{Orientation: o, Size: hexmap.Point{X: 1, Y: 1}}
		outline := hexmap.Outline(l, region)
		// 5 hexes contribute 30 edges; 5 internal edges are counted
		// twice, leaving 20 on the boundary
		if len(outline) != 20 {
			t.Errorf("%s: expected 20 points; got %d", name, len(outline))
		}
		assertClosedUnitRing(t, name, outline)
	}
}

func TestOutlineEmpty(t *testing.T) {
	l := hexmap.Layout{Orientation: hexmap.Pointy, Size: hexmap.Point{X: 1, Y: 1}}
	if outline := hexmap.Outline(l, nil); outline != nil {
		t.Errorf("expected nil outline; got %v", outline)
	}
}

// assertClosedUnitRing checks that consecutive points (including the
// wrap from last back to first) are exactly one hex edge apart for a
// unit-size layout, and that no point repeats.
func assertClosedUnitRing(t *testing.T, name string, outline []hexmap.Point) {
	t.Helper()
	seen := make(map[[2]float64]bool)
	for i, p := range outline {
		key := [2]float64{math.Round(p.X * 1e6), math.Round(p.Y * 1e6)}
		if seen[key] {
			t.Errorf("%s: point %d repeats: %v", name, i, p)
		}
		seen[key] = true

		next := outline[(i+1)%len(outline)]
		d := math.Hypot(next.X-p.X, next.Y-p.Y)
		if math.Abs(d-1) > 1e-9 {
			t.Errorf("%s: points %d and %d are %v apart; expected 1", name, i, (i+1)%len(outline), d)
		}
	}
}
