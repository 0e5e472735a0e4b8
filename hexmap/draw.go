package hexmap

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/Travis-Britz/hexgrid"
	"github.com/llgcode/draw2d/draw2dimg"
)

// Region pairs a set of hex coordinates with drawing style.
// The coordinates must be edge-connected so that a single outline
// polygon describes the region.
type Region struct {
	// Name is used as the element id when rendering to SVG.
	Name  string
	Hexes []hexgrid.Hex

	// Fill is the interior color. A nil Fill is treated as transparent.
	Fill color.Color

	// Stroke is the outline color. A nil Stroke skips the outline.
	Stroke color.Color

	// LineWidth is the outline stroke width in pixels.
	// Zero or negative selects a default of 2.
	LineWidth float64
}

// Draw renders regions onto img using the projection described by l.
// The layout's Origin and Size control placement and scale,
// so pass a layout sized for the image dimensions.
func Draw(img draw.Image, l Layout, regions []Region) error {
	if img.Bounds().Empty() {
		return errors.New("hexmap.Draw: image cannot be empty")
	}
	if (img.Bounds().Min != image.Point{}) {
		// The draw2dimg package behaves in unexpected ways when img does
		// not start at 0,0.
		// Rather than confound users of this function,
		// return an error instead.
		return errors.New("hexmap.Draw: image bounds must start at 0,0")
	}

	gc := draw2dimg.NewGraphicContext(img)
	for _, region := range regions {
		outline := Outline(l, region.Hexes)
		if len(outline) == 0 {
			continue
		}

		fill := region.Fill
		if fill == nil {
			fill = color.Transparent
		}
		stroke := region.Stroke
		if stroke == nil {
			stroke = color.Transparent
		}
		width := region.LineWidth
		if width <= 0 {
			width = 2
		}
		gc.SetFillColor(fill)
		gc.SetStrokeColor(stroke)
		gc.SetLineWidth(width)

		// Draw a closed shape
		gc.BeginPath()
		for i, point := range outline {
			if i == 0 {
				gc.MoveTo(point.X, point.Y)
			} else {
				gc.LineTo(point.X, point.Y)
			}
		}
		gc.Close()
		gc.FillStroke()
	}
	return nil
}

// FitLayout returns a layout that projects every coordinate in coords
// into a width-by-height pixel viewport with the given margin on all
// sides, preserving the hexagon aspect ratio.
func FitLayout(o Orientation, coords []hexgrid.Hex, width, height, margin int) Layout {
	if len(coords) == 0 {
		return Layout{Orientation: o, Size: Point{X: 1, Y: 1}}
	}

	// measure the extent of the region with a unit layout
	unit := Layout{Orientation: o, Size: Point{X: 1, Y: 1}}
	var minX, minY, maxX, maxY float64
	for i, h := range coords {
		for c := 0; c < 6; c++ {
			p := unit.Corner(h, c)
			if i == 0 && c == 0 {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				continue
			}
			minX = min(minX, p.X)
			maxX = max(maxX, p.X)
			minY = min(minY, p.Y)
			maxY = max(maxY, p.Y)
		}
	}

	spanX := maxX - minX
	spanY := maxY - minY
	innerW := float64(width - 2*margin)
	innerH := float64(height - 2*margin)
	scale := min(innerW/spanX, innerH/spanY)

	// center the region inside the viewport
	return Layout{
		Orientation: o,
		Size:        Point{X: scale, Y: scale},
		Origin: Point{
			X: float64(width)/2 - scale*(minX+spanX/2),
			Y: float64(height)/2 - scale*(minY+spanY/2),
		},
	}
}
