// Command hexmapgen renders procedurally generated hexagonal maps.
//
// By default it writes a single rendered map to the output path given
// as the first argument ("-" for stdout). With -serve it runs as a
// small HTTP server that renders maps on demand.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"sync"
	"time"

	_ "golang.org/x/image/webp"

	"github.com/Travis-Britz/hexgrid"
	"github.com/Travis-Britz/hexgrid/hexmap"
	"github.com/Travis-Britz/hexgrid/hexstore"
	"github.com/anthonynsimon/bild/transform"
	"github.com/google/uuid"
	opensimplex "github.com/ojrac/opensimplex-go"
)

var config = struct {
	Bind         string
	VerboseLog   bool
	Seed         int64
	Radius       uint
	Size         int
	Orientation  string
	Background   string
	Output       string
	OutputFormat string
	Mode         mode
}{
	Seed:        1,
	Radius:      24,
	Size:        512,
	Orientation: "pointy",
}

type renderable struct {
	fn        renderingFn
	extension string
	mimetype  string
}

var formats = map[string]renderable{
	"image": {
		RenderMapPNG,
		".png",
		"image/png",
	},
	"thumbnail": {
		RenderMapThumbnailPNG,
		".png",
		"image/png",
	},
	"svg": {
		RenderMapSVG,
		".svg",
		"image/svg+xml",
	},
	"json": {
		RenderMapJSON,
		".json",
		"application/json",
	},
}

type mode uint8

func (m mode) String() string {
	switch m {
	case SingleFile:
		return "SingleFile"
	case HTTPServer:
		return "HTTPServer"
	default:
		return fmt.Sprintf("%d", m)
	}
}

const (
	SingleFile mode = iota
	HTTPServer
)

func main() {
	flag.StringVar(&config.Bind, "serve", config.Bind, "Serve will start the process as a small HTTP server bound to the given network interface such as \"localhost:8080\".")
	flag.BoolVar(&config.VerboseLog, "v", config.VerboseLog, "Enable writing verbose logging information to stderr.")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "Noise seed for terrain generation.")
	flag.UintVar(&config.Radius, "radius", config.Radius, "Map radius in hexes.")
	flag.IntVar(&config.Size, "size", config.Size, "Rendered image width and height in pixels.")
	flag.StringVar(&config.Orientation, "orientation", config.Orientation, "Hexagon orientation (pointy, flat).")
	flag.StringVar(&config.Background, "bg", config.Background, "Optional background image file (PNG or WebP).")
	flag.StringVar(&config.OutputFormat, "format", "image", "The output format for a map (image, thumbnail, svg, json).")
	flag.Parse()

	config.Output = flag.Arg(0)

	var logLevel = slog.LevelInfo
	if config.VerboseLog {
		logLevel = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(logLevel)
	baseLogger := slog.New(&contextHandler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}),
	})
	slog.SetDefault(baseLogger)

	if config.Bind != "" {
		config.Mode = HTTPServer
	}

	ctx, shutdown := context.WithCancelCause(context.Background())
	go func() {
		defer slog.Debug("received interrupt")
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		<-stop
		shutdown(errGracefulShutdown)
	}()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			err = context.Cause(ctx)
		}
		if errors.Is(err, errGracefulShutdown) {
			return
		}
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	format, found := formats[config.OutputFormat]
	if !found {
		return fmt.Errorf("invalid output format %q: valid options for -format are \"image\", \"thumbnail\", \"svg\", \"json\"", config.OutputFormat)
	}
	orientation, err := parseOrientation(config.Orientation)
	if err != nil {
		return err
	}

	switch config.Mode {
	case HTTPServer:
		slog.Info("starting", "mode", config.Mode, "bind", config.Bind, "radius", config.Radius, "size", config.Size)
		return runHTTPServerMode(ctx, config.Bind)
	default:
		slog.Info("starting", "mode", config.Mode, "seed", config.Seed, "radius", config.Radius, "renderer", config.OutputFormat)
		world := generate(config.Seed, uint32(config.Radius), orientation)
		rc := format.fn(world)
		defer rc.Close()
		return writeToOutput(rc, config.Output)
	}
}

func writeToOutput(r io.Reader, output string) error {
	if output == "" {
		return fmt.Errorf("no output destination given")
	}

	var w io.Writer
	if output == "-" {
		slog.Debug("writing to stdout")
		w = os.Stdout
	} else {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		slog.Debug("writing to file", "filename", f.Name())
		w = f
	}
	n, err := io.Copy(w, r)
	if err != nil {
		return fmt.Errorf("failed to write output: %w (%d bytes written)", err, n)
	}
	slog.Debug(fmt.Sprintf("finished with %d bytes written", n))
	return nil
}

func parseOrientation(s string) (hexmap.Orientation, error) {
	switch s {
	case "pointy":
		return hexmap.Pointy, nil
	case "flat":
		return hexmap.Flat, nil
	default:
		return hexmap.Orientation{}, fmt.Errorf("invalid orientation %q: valid options for -orientation are \"pointy\", \"flat\"", s)
	}
}

type terrain uint8

const (
	water terrain = iota
	shore
	plains
	forest
	hills
	mountains
)

func (t terrain) String() string {
	switch t {
	case water:
		return "water"
	case shore:
		return "shore"
	case plains:
		return "plains"
	case forest:
		return "forest"
	case hills:
		return "hills"
	case mountains:
		return "mountains"
	default:
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
}

var terrainColors = [...]color.RGBA{
	water:     {0x1d, 0x45, 0x7f, 0xff},
	shore:     {0xd8, 0xc5, 0x96, 0xff},
	plains:    {0x6a, 0xa8, 0x4f, 0xff},
	forest:    {0x2f, 0x6e, 0x3b, 0xff},
	hills:     {0x8a, 0x7f, 0x68, 0xff},
	mountains: {0xd0, 0xd0, 0xd8, 0xff},
}

type worldMap struct {
	seed        int64
	orientation hexmap.Orientation
	cells       *hexstore.HexagonalMap[terrain]
}

// generate fills a hexagonal map with noise-derived terrain.
// Elevation is sampled at each hex center in world space so that
// neighboring hexes get correlated values regardless of orientation.
func generate(seed int64, radius uint32, orientation hexmap.Orientation) worldMap {
	noise := opensimplex.NewNormalized(seed)
	l := hexmap.Layout{Orientation: orientation, Size: hexmap.Point{X: 1, Y: 1}}
	const frequency = 0.06
	cells := hexstore.NewHexagonalParallel(hexgrid.Hex{}, radius, runtime.NumCPU(), func(h hexgrid.Hex) terrain {
		p := l.Center(h)
		// two octaves: broad landmasses with some local roughness
		e := 0.75*noise.Eval2(p.X*frequency, p.Y*frequency) +
			0.25*noise.Eval2(p.X*frequency*4, p.Y*frequency*4)
		switch {
		case e < 0.35:
			return water
		case e < 0.4:
			return shore
		case e < 0.55:
			return plains
		case e < 0.7:
			return forest
		case e < 0.8:
			return hills
		default:
			return mountains
		}
	})
	return worldMap{
		seed:        seed,
		orientation: orientation,
		cells:       cells,
	}
}

func (m worldMap) coords() []hexgrid.Hex {
	coords := make([]hexgrid.Hex, 0, m.cells.Len())
	for h := range m.cells.All() {
		coords = append(coords, h)
	}
	return coords
}

// regions groups contiguous same-terrain cells into drawable regions.
func (m worldMap) regions() []hexmap.Region {
	visited := make(map[hexgrid.Hex]bool, m.cells.Len())
	var regions []hexmap.Region
	for h, t := range m.cells.All() {
		if visited[h] {
			continue
		}
		kind := *t
		hexes := hexmap.FloodFill(h, func(n hexgrid.Hex) bool {
			got, ok := m.cells.Get(n)
			return !ok || got != kind
		}, -1)
		for _, filled := range hexes {
			visited[filled] = true
		}
		regions = append(regions, hexmap.Region{
			Name:      fmt.Sprintf("%s-%d", kind, len(regions)),
			Hexes:     hexes,
			Fill:      terrainColors[kind],
			Stroke:    color.White,
			LineWidth: 1,
		})
	}
	return regions
}

func (m worldMap) render(size int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if config.Background != "" {
		bg, err := loadBackground(config.Background, size)
		if err != nil {
			return nil, err
		}
		draw.Draw(img, img.Bounds(), bg, bg.Bounds().Min, draw.Src)
	}
	l := hexmap.FitLayout(m.orientation, m.coords(), size, size, size/32)
	if err := hexmap.Draw(img, l, m.regions()); err != nil {
		return nil, fmt.Errorf("unable to draw map: %w", err)
	}
	return img, nil
}

// loadBackground decodes a background image and scales it to fit.
// WebP decoding is registered through the blank image format import.
func loadBackground(filename string, size int) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open background image: %w", err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode background image %q: %w", filename, err)
	}
	slog.Debug("decoded background image", "file", filename, "format", format, "bounds", img.Bounds())
	if img.Bounds().Dx() == size && img.Bounds().Dy() == size {
		return img, nil
	}
	return transform.Resize(img, size, size, transform.Linear), nil
}

// renderingFn is a function that takes a generated map and returns an
// io.ReadCloser. The reader returns a byte stream such as a PNG, SVG,
// or json file.
type renderingFn func(worldMap) io.ReadCloser

// RenderMapPNG is a renderingFn that renders a PNG image of the map.
func RenderMapPNG(m worldMap) io.ReadCloser {
	r, w := io.Pipe()
	img, err := m.render(config.Size)
	if err != nil {
		w.CloseWithError(err)
		return r
	}
	go func() {
		w.CloseWithError(png.Encode(w, img))
	}()
	return r
}

// RenderMapThumbnailPNG is a renderingFn that renders a 128x128 PNG
// preview, downsampled from a full-size render to keep the hex edges
// smooth.
func RenderMapThumbnailPNG(m worldMap) io.ReadCloser {
	r, w := io.Pipe()
	img, err := m.render(config.Size)
	if err != nil {
		w.CloseWithError(err)
		return r
	}
	thumb := transform.Resize(img, 128, 128, transform.Linear)
	go func() {
		w.CloseWithError(png.Encode(w, thumb))
	}()
	return r
}

// RenderMapSVG is a renderingFn that renders the map as an SVG document.
func RenderMapSVG(m worldMap) io.ReadCloser {
	r, w := io.Pipe()
	l := hexmap.FitLayout(m.orientation, m.coords(), config.Size, config.Size, config.Size/32)
	svg := hexmap.SVG(l, m.regions(), config.Size, config.Size, config.Background)
	go func() {
		_, err := svg.WriteTo(w)
		w.CloseWithError(err)
	}()
	return r
}

// RenderMapJSON is a renderingFn that renders the generated terrain as
// json.
func RenderMapJSON(m worldMap) io.ReadCloser {
	type cell struct {
		Hex     hexgrid.Hex `json:"hex"`
		Terrain string      `json:"terrain"`
	}
	out := struct {
		Seed   int64  `json:"seed"`
		Radius uint32 `json:"radius"`
		Cells  []cell `json:"cells"`
	}{
		Seed:   m.seed,
		Radius: m.cells.Bounds().Radius,
		Cells:  make([]cell, 0, m.cells.Len()),
	}
	for h, t := range m.cells.All() {
		out.Cells = append(out.Cells, cell{Hex: h, Terrain: t.String()})
	}

	r, w := io.Pipe()
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	go func() {
		w.CloseWithError(encoder.Encode(out))
	}()
	return r
}

type contextHandler struct {
	slog.Handler
}

var correlationID = contextKey("correlation_id")

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if uuid, ok := ctx.Value(correlationID).(uuid.UUID); ok {
		r.AddAttrs(slog.String(string(correlationID), uuid.String()))
	}
	return h.Handler.Handle(ctx, r)
}

type contextKey string

func injectCorrelationID(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = context.WithValue(ctx, correlationID, uuid.New())
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func runHTTPServerMode(ctx context.Context, bind string) error {
	ctx, shutdown := context.WithCancelCause(ctx)
	defer shutdown(nil)

	logRequest := func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			slog.InfoContext(r.Context(), "incoming http request",
				"request", fmt.Sprintf("%s %s %s", r.Method, r.RequestURI, r.Proto),
			)
			next.ServeHTTP(w, r)
		}
	}

	router := http.NewServeMux()
	for name := range formats {
		router.HandleFunc("GET /"+name, serveMap(name))
	}

	var h http.Handler = router
	h = logRequest(h)
	h = injectCorrelationID(h)

	srv := http.Server{
		Addr:    bind,
		Handler: h,
	}

	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("starting http service", "bind", config.Bind)
		defer slog.Info("stopped http service")
		shutdown(srv.ListenAndServe())
	}()

	wg.Add(1)
	go func() {
		// this goroutine waits for a cancelled context and then tries
		// to gracefully shut down the http server
		defer wg.Done()
		<-ctx.Done()
		wait := 5 * time.Second
		waitctx, cancel := context.WithTimeout(context.Background(), wait)
		defer cancel()
		if err := srv.Shutdown(waitctx); err != nil {
			slog.Info("error while stopping http server", "error", err, "wait", wait)
		}
	}()
	wg.Wait()
	<-ctx.Done()
	return context.Cause(ctx)
}

// serveMap renders a map per request. seed and radius may be overridden
// with query parameters, e.g. /image?seed=42&radius=16.
func serveMap(formatName string) http.HandlerFunc {
	format := formats[formatName]
	return func(w http.ResponseWriter, r *http.Request) {
		seed := config.Seed
		if s := r.URL.Query().Get("seed"); s != "" {
			parsed, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				http.Error(w, "invalid seed", http.StatusBadRequest)
				return
			}
			seed = parsed
		}
		radius := uint32(config.Radius)
		if s := r.URL.Query().Get("radius"); s != "" {
			parsed, err := strconv.ParseUint(s, 10, 32)
			if err != nil || parsed > 512 {
				http.Error(w, "invalid radius", http.StatusBadRequest)
				return
			}
			radius = uint32(parsed)
		}
		orientation, err := parseOrientation(config.Orientation)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		slog.DebugContext(r.Context(), "rendering map", "format", formatName, "seed", seed, "radius", radius)
		world := generate(seed, radius, orientation)
		rc := format.fn(world)
		defer rc.Close()

		w.Header().Set("Content-Type", format.mimetype)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if _, err := io.Copy(w, rc); err != nil {
			slog.InfoContext(r.Context(), "error while writing response", "error", err)
		}
	}
}

var errGracefulShutdown = errors.New("received shutdown signal")
