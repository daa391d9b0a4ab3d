// Command polyclip clips the subject polygon of a scene file against its
// clip region, prints the result and optionally renders it to an image.
//
// Usage:
//
//	polyclip -scene scene.toml [-output clip.png] [-format text|json] [-v]
//
// Use -output - to write the image to a pipe on stdout.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/gogpu/polyclip"
	"github.com/gogpu/polyclip/internal/scenefile"
	"github.com/gogpu/polyclip/raster"
	"github.com/gogpu/polyclip/render"
)

// pipeName is the output name that selects stdout.
const pipeName = "-"

const (
	defaultWidth  = 800
	defaultHeight = 600
)

type config struct {
	scene       string
	output      string
	format      string
	imageFormat string
	width       int
	height      int
	verbose     bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.scene, "scene", "", "scene file (.toml, .yaml, .json)")
	flag.StringVar(&cfg.output, "output", "", "image file, or - for stdout (overrides the scene)")
	flag.StringVar(&cfg.format, "format", "text", "result format: text or json")
	flag.StringVar(&cfg.imageFormat, "image-format", "png", "image format when writing to stdout")
	flag.IntVar(&cfg.width, "width", 0, "image width (overrides the scene)")
	flag.IntVar(&cfg.height, "height", 0, "image height (overrides the scene)")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	if cfg.scene == "" {
		flag.Usage()
		os.Exit(2)
	}
	if cfg.verbose {
		polyclip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("polyclip: %v", err)
	}
}

// result is the JSON form of a clip result.
type result struct {
	Vertices [][2]float64 `json:"vertices"`
	Area     float64      `json:"area"`
	Pixels   int          `json:"pixels,omitempty"`
}

func run(cfg config, stdout, stderr io.Writer) error {
	if cfg.format != "text" && cfg.format != "json" {
		return fmt.Errorf("unknown format %q", cfg.format)
	}
	s, err := scenefile.Load(cfg.scene)
	if err != nil {
		return err
	}
	region, err := s.ClipRegion()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.scene, err)
	}
	subject := s.SubjectPolygon()
	clipped, err := polyclip.Clip(subject, region)
	if err != nil {
		return err
	}
	var pixels []image.Point
	if s.Circle != nil {
		pixels = raster.Circle(image.Pt(s.Circle.X, s.Circle.Y), s.Circle.R)
	}

	output := s.Output
	if cfg.output != "" {
		output = cfg.output
	}

	// The image owns stdout when piped; the result goes to stderr.
	report := stdout
	if output == pipeName {
		report = stderr
	}
	if err := printResult(report, cfg.format, clipped, len(pixels)); err != nil {
		return err
	}
	if output == "" {
		return nil
	}

	frame := render.Frame{
		Width:   pick(cfg.width, s.Width, defaultWidth),
		Height:  pick(cfg.height, s.Height, defaultHeight),
		Region:  region,
		Subject: subject,
		Clipped: clipped,
		Pixels:  pixels,
		Label:   fmt.Sprintf("%d vertices", len(clipped)),
	}
	if s.Space == "pixel" {
		frame.Space = render.SpacePixel
	}
	img, err := render.Render(frame)
	if err != nil {
		return err
	}

	if output == pipeName {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return render.Encode(stdout, img, cfg.imageFormat)
	}
	if err := render.Save(img, output); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "saved %s (%dx%d)\n", output, frame.Width, frame.Height)
	return nil
}

func printResult(w io.Writer, format string, clipped polyclip.Polygon, pixels int) error {
	if format == "json" {
		r := result{Vertices: make([][2]float64, len(clipped)), Area: clipped.Area(), Pixels: pixels}
		for i, p := range clipped {
			r.Vertices[i] = [2]float64{p.X, p.Y}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if _, err := fmt.Fprintf(w, "%d vertices, area %g\n", len(clipped), clipped.Area()); err != nil {
		return err
	}
	for _, p := range clipped {
		if _, err := fmt.Fprintf(w, "%g %g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	if pixels > 0 {
		_, err := fmt.Fprintf(w, "%d circle pixels\n", pixels)
		return err
	}
	return nil
}

// pick returns the first positive value.
func pick(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
