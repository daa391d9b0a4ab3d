// Package scenefile loads clip scenes for the polyclip command.
//
// A scene names the clip region, the subject polygon and optionally a
// circle to rasterize. The same fields are accepted in TOML, YAML and JSON:
//
//	width = 800
//	height = 600
//	rect = [[-0.5, -0.5], [0.5, 0.5]]
//	subject = [[0, 0], [1, 0], [1, 1], [0, 1]]
//	output = "clip.png"
package scenefile

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/polyclip"
	"github.com/gogpu/polyclip/raster"
)

var (
	// ErrUnknownFormat is returned for a file extension or format name
	// with no decoder.
	ErrUnknownFormat = errors.New("scenefile: unknown format")

	// ErrInvalidScene is returned when a scene fails validation.
	ErrInvalidScene = errors.New("scenefile: invalid scene")
)

// Vertex is a point written as a two-element array.
type Vertex [2]float64

// Point converts v to a polyclip point.
func (v Vertex) Point() polyclip.Point {
	return polyclip.Pt(v[0], v[1])
}

// Circle is a midpoint circle rasterized on the integer grid.
type Circle struct {
	X int `toml:"x" yaml:"x" json:"x"`
	Y int `toml:"y" yaml:"y" json:"y"`
	R int `toml:"r" yaml:"r" json:"r"`

	// Subject makes the circle outline the clip subject, in place of the
	// subject list.
	Subject bool `toml:"subject" yaml:"subject" json:"subject"`
}

// Scene is one clip problem.
type Scene struct {
	Width  int `toml:"width" yaml:"width" json:"width"`
	Height int `toml:"height" yaml:"height" json:"height"`

	// Space is "ndc" (default) or "pixel".
	Space string `toml:"space" yaml:"space" json:"space"`

	// Rect holds two opposite corners. Exactly one of Rect and Region is set.
	Rect []Vertex `toml:"rect" yaml:"rect" json:"rect"`
	// Region holds the vertices of a convex clip polygon in either winding.
	Region []Vertex `toml:"region" yaml:"region" json:"region"`

	Subject []Vertex `toml:"subject" yaml:"subject" json:"subject"`
	Circle  *Circle  `toml:"circle" yaml:"circle" json:"circle"`
	Output  string   `toml:"output" yaml:"output" json:"output"`
}

// Decoder is implemented by the toml, yaml and json decoders.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc adapts a typed decoder constructor to a DecoderFunc.
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

var decoders = map[string]DecoderFunc{
	"toml": NewDecoderFunc(toml.NewDecoder),
	"yaml": NewDecoderFunc(yaml.NewDecoder),
	"yml":  NewDecoderFunc(yaml.NewDecoder),
	"json": NewDecoderFunc(json.NewDecoder),
}

// FormatOf returns the format name for a file path, based on its extension.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := decoders[ext]; !ok {
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	return ext, nil
}

// Load reads and validates the scene at path.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(bufio.NewReader(f), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a scene in the named format ("toml", "yaml", "yml" or
// "json") and validates it.
func Decode(r io.Reader, format string) (*Scene, error) {
	newDecoder, ok := decoders[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	var s Scene
	if err := newDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("scenefile: decode %s: %w", format, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scene for structural errors. Geometric errors in the
// region are reported by ClipRegion.
func (s *Scene) Validate() error {
	switch {
	case s.Width < 0 || s.Height < 0:
		return fmt.Errorf("size %dx%d: %w", s.Width, s.Height, ErrInvalidScene)
	case len(s.Rect) == 0 && len(s.Region) == 0:
		return fmt.Errorf("no rect or region: %w", ErrInvalidScene)
	case len(s.Rect) > 0 && len(s.Region) > 0:
		return fmt.Errorf("both rect and region: %w", ErrInvalidScene)
	case len(s.Rect) > 0 && len(s.Rect) != 2:
		return fmt.Errorf("rect has %d corners, want 2: %w", len(s.Rect), ErrInvalidScene)
	case s.Circle != nil && s.Circle.R < 0:
		return fmt.Errorf("circle radius %d: %w", s.Circle.R, ErrInvalidScene)
	case s.Circle != nil && s.Circle.Subject && len(s.Subject) > 0:
		return fmt.Errorf("both subject and circle subject: %w", ErrInvalidScene)
	}
	switch s.Space {
	case "", "ndc", "pixel":
	default:
		return fmt.Errorf("space %q: %w", s.Space, ErrInvalidScene)
	}
	return nil
}

// ClipRegion builds the clip region named by the scene.
func (s *Scene) ClipRegion(opts ...polyclip.Option) (polyclip.Region, error) {
	if len(s.Rect) == 2 {
		return polyclip.RectRegion(s.Rect[0].Point(), s.Rect[1].Point())
	}
	return polyclip.ConvexRegion(Polygon(s.Region), opts...)
}

// SubjectPolygon returns the subject as a polygon. A circle marked as
// subject yields its rasterized outline ordered by angle.
func (s *Scene) SubjectPolygon() polyclip.Polygon {
	if c := s.Circle; c != nil && c.Subject {
		px := raster.CirclePolygon(image.Pt(c.X, c.Y), c.R)
		p := make(polyclip.Polygon, len(px))
		for i, q := range px {
			p[i] = polyclip.Pt(float64(q.X), float64(q.Y))
		}
		return p
	}
	return Polygon(s.Subject)
}

// Polygon converts vertices to a polygon. It returns nil for no vertices.
func Polygon(vs []Vertex) polyclip.Polygon {
	if len(vs) == 0 {
		return nil
	}
	p := make(polyclip.Polygon, len(vs))
	for i, v := range vs {
		p[i] = v.Point()
	}
	return p
}
