package hexmap_test

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/Travis-Britz/hexgrid"
	"github.com/Travis-Britz/hexgrid/hexmap"
)

func TestDraw(t *testing.T) {
	coords := hexgrid.Range(hexgrid.Hex{}, 2)
	l := hexmap.FitLayout(hexmap.Pointy, coords, 64, 64, 4)
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))

	red := color.RGBA{R: 0xff, A: 0xff}
	err := hexmap.Draw(img, l, []hexmap.Region{{Hexes: coords, Fill: red}})
	if err != nil {
		t.Fatal(err)
	}

	// the image center sits deep inside the filled region
	if got := img.RGBAAt(32, 32); got != red {
		t.Errorf("expected %v at the center; got %v", red, got)
	}
	// corners stay untouched
	if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("expected the corner to stay transparent; got %v", got)
	}
}

func TestDrawBadImage(t *testing.T) {
	l := hexmap.Layout{Orientation: hexmap.Pointy, Size: hexmap.Point{X: 1, Y: 1}}
	regions := []hexmap.Region{{Hexes: []hexgrid.Hex{{}}}}
	if err := hexmap.Draw(image.NewRGBA(image.Rectangle{}), l, regions); err == nil {
		t.Error("expected an error for an empty image")
	}
	if err := hexmap.Draw(image.NewRGBA(image.Rect(8, 8, 16, 16)), l, regions); err == nil {
		t.Error("expected an error for shifted image bounds")
	}
}

func TestFitLayout(t *testing.T) {
	coords := hexgrid.Range(hexgrid.Hex{X: 4, Y: -7}, 3)
	for name, o := range map[string]hexmap.Orientation{"pointy": hexmap.Pointy, "flat": hexmap.Flat} {
		l := hexmap.FitLayout(o, coords, 200, 100, 10)
		for _, h := range coords {
			for c := 0; c < 6; c++ {
				p := l.Corner(h, c)
				if p.X < 10-1e-9 || p.X > 190+1e-9 || p.Y < 10-1e-9 || p.Y > 90+1e-9 {
					t.Errorf("%s: corner %d of %v lands outside the viewport: %v", name, c, h, p)
				}
			}
		}
	}
}

func TestSVG(t *testing.T) {
	coords := hexgrid.Range(hexgrid.Hex{}, 1)
	l := hexmap.FitLayout(hexmap.Flat, coords, 256, 256, 8)
	regions := []hexmap.Region{
		{Name: "middle", Hexes: coords, Fill: color.RGBA{R: 0xff, A: 0xff}},
		{Hexes: []hexgrid.Hex{{X: 4, Y: 4}}, Fill: color.RGBA{G: 0x80, A: 0xff}},
	}

	var buf bytes.Buffer
	n, err := hexmap.SVG(l, regions, 256, 256, "").WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("expected a write count of %d; got %d", buf.Len(), n)
	}

	out := buf.String()
	if !strings.Contains(out, `viewBox="0 0 256 256"`) {
		t.Errorf("missing viewBox: %s", out)
	}
	if got := strings.Count(out, "<polygon"); got != 2 {
		t.Errorf("expected 2 polygons; got %d", got)
	}
	if !strings.Contains(out, `id="middle"`) {
		t.Errorf("missing region id: %s", out)
	}
	if !strings.Contains(out, `fill="#ff0000"`) {
		t.Errorf("missing fill color: %s", out)
	}
	if strings.Contains(out, "<image") {
		t.Errorf("unexpected background image element: %s", out)
	}
}

func TestSVGBackground(t *testing.T) {
	l := hexmap.Layout{Orientation: hexmap.Pointy, Size: hexmap.Point{X: 1, Y: 1}}
	var buf bytes.Buffer
	if _, err := hexmap.SVG(l, nil, 64, 64, "terrain.webp").WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `href="terrain.webp"`) {
		t.Errorf("missing background href: %s", buf.String())
	}
}
