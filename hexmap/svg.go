package hexmap

import (
	"fmt"
	"image/color"
	"io"
	"text/template"
)

const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 {{.Width}} {{.Height}}">
<style>
polygon {
	transition: 0.4s;
	stroke-width: 2px;
	stroke: white;
}
polygon:hover {
	filter: brightness(1.5);
}
</style>
{{- if ne .BackgroundURL ""}}
<image x="0" y="0" width="{{.Width}}" height="{{.Height}}" href="{{.BackgroundURL}}"/>
{{- end}}
{{- range .Regions}}
<g{{if ne .ID ""}} id="{{.ID}}"{{end}}>
<polygon points="{{range .Points}}{{.X}},{{.Y}} {{end}}" fill="{{.Fill}}"/>
</g>
{{- end}}
</svg>
`

var svgTmpl = template.Must(template.New("hexmapsvg").Parse(svgTemplate))

// SVG builds an SVG document outlining regions in a width-by-height
// viewport using the projection described by l.
// backgroundURL optionally names an image to place behind the polygons;
// pass "" for none.
//
// The returned value writes the document when its WriteTo method is
// called, so layout math happens up front and template execution is
// deferred until output.
func SVG(l Layout, regions []Region, width, height int, backgroundURL string) io.WriterTo {
	doc := &svgDocument{
		Width:         width,
		Height:        height,
		BackgroundURL: backgroundURL,
	}
	for _, region := range regions {
		poly := svgPolygon{
			ID:   region.Name,
			Fill: cssColor(region.Fill),
		}
		for _, p := range Outline(l, region.Hexes) {
			poly.Points = append(poly.Points, svgPoint{X: int64(p.X), Y: int64(p.Y)})
		}
		doc.Regions = append(doc.Regions, poly)
	}
	return doc
}

func (doc *svgDocument) WriteTo(w io.Writer) (int64, error) {
	counter := &counter{w: w}
	err := svgTmpl.Execute(counter, doc)
	return int64(counter.n), err
}

type svgDocument struct {
	Width         int
	Height        int
	BackgroundURL string
	Regions       []svgPolygon
}

type svgPolygon struct {
	ID     string
	Fill   string
	Points []svgPoint
}

type svgPoint struct {
	X int64
	Y int64
}

type counter struct {
	n int
	w io.Writer
}

func (c *counter) Write(p []byte) (n int, err error) {
	n, err = c.w.Write(p)
	c.n += n
	return
}

// cssColor formats c as a CSS hex color. A nil color is transparent.
func cssColor(c color.Color) string {
	if c == nil {
		return "transparent"
	}
	r, g, b, a := c.RGBA()
	if a == 0xffff {
		return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
}
