package hexmap_test

import (
	"math"
	"testing"

	"github.com/Travis-Britz/hexgrid"
	"github.com/Travis-Britz/hexgrid/hexmap"
)

func TestCorners(t *testing.T) {
	tt := map[string]struct {
		Layout  hexmap.Layout
		Hex     hexgrid.Hex
		Corners [6][2]float64
	}{
		"flat origin": {
			Layout: hexmap.Layout{Orientation: hexmap.Flat, Size: hexmap.Point{X: 10, Y: 10}},
			Hex:    hexgrid.Hex{},
			Corners: [6][2]float64{
				{10, 0},
				{5, 9},
				{-5, 9},
				{-10, 0},
				{-5, -9},
				{5, -9},
			},
		},
		"pointy origin": {
			Layout: hexmap.Layout{Orientation: hexmap.Pointy, Size: hexmap.Point{X: 10, Y: 10}},
			Hex:    hexgrid.Hex{},
			Corners: [6][2]float64{
				{9, 5},
				{0, 10},
				{-9, 5},
				{-9, -5},
				{0, -10},
				{9, -5},
			},
		},
	}
	for name, expected := range tt {
		corners := expected.Layout.Corners(expected.Hex)
		for i, c := range corners {
			x := math.Round(c.X)
			y := math.Round(c.Y)
			if x != expected.Corners[i][0] || y != expected.Corners[i][1] {
				t.Errorf("%s: corner %d: expected (%v,%v); got (%v,%v)",
					name, i, expected.Corners[i][0], expected.Corners[i][1], x, y)
			}
		}
	}
}

func TestCenterRoundTrip(t *testing.T) {
	layouts := map[string]hexmap.Layout{
		"pointy":        {Orientation: hexmap.Pointy, Size: hexmap.Point{X: 1, Y: 1}},
		"flat":          {Orientation: hexmap.Flat, Size: hexmap.Point{X: 1, Y: 1}},
		"offset origin": {Orientation: hexmap.Pointy, Origin: hexmap.Point{X: 31.5, Y: -7.25}, Size: hexmap.Point{X: 16, Y: 16}},
		"squashed":      {Orientation: hexmap.Flat, Size: hexmap.Point{X: 12, Y: 7}},
	}
	for name, l := range layouts {
		for _, h := range hexgrid.Range(hexgrid.Hex{X: 2, Y: -5}, 6) {
			if got := l.HexAt(l.Center(h)); got != h {
				t.Errorf("%s: expected %v; got %v", name, h, got)
			}
		}
	}
}

func TestHexAtNearCorners(t *testing.T) {
	// points pulled slightly from a corner toward the center must
	// resolve to that hex
	l := hexmap.Layout{Orientation: hexmap.Pointy, Size: hexmap.Point{X: 10, Y: 10}}
	for _, h := range hexgrid.Range(hexgrid.Hex{}, 3) {
		center := l.Center(h)
		for c := 0; c < 6; c++ {
			p := l.Corner(h, c)
			p.X += (center.X - p.X) * 0.05
			p.Y += (center.Y - p.Y) * 0.05
			if got := l.HexAt(p); got != h {
				t.Errorf("hex %v corner %d: expected %v; got %v", h, c, h, got)
			}
		}
	}
}
