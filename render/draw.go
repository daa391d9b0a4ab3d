// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/polyclip"
)

// ErrSizeMismatch is returned by Draw when the frame size differs from the
// target size.
var ErrSizeMismatch = errors.New("render: frame size does not match target")

// Render draws f into a new image of the frame's size.
func Render(f Frame) (*image.RGBA, error) {
	t := NewPixmapTarget(f.Width, f.Height)
	if err := Draw(t, f); err != nil {
		return nil, err
	}
	return t.Image(), nil
}

// Draw paints f into t in this order: background, region outline, subject
// outline, clipped polygon, pixels, label.
func Draw(t *PixmapTarget, f Frame) error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("render: frame size %dx%d: %w", f.Width, f.Height, polyclip.ErrInvalidViewport)
	}
	if t.Width() != f.Width || t.Height() != f.Height {
		return fmt.Errorf("target %dx%d, frame %dx%d: %w",
			t.Width(), t.Height(), f.Width, f.Height, ErrSizeMismatch)
	}
	style := DefaultStyle()
	if f.Style != nil {
		style = *f.Style
	}
	toPixel, err := pixelMapper(f)
	if err != nil {
		return err
	}

	p := &painter{img: t.Image(), toPixel: toPixel, style: style}
	t.Clear(style.Background)

	if f.Region.Len() > 0 {
		p.outline(f.Region.Vertices(), style.Region)
	}
	if len(f.Subject) > 0 {
		p.outline(f.Subject, style.Subject)
	}
	switch n := len(f.Clipped); {
	case n >= 3:
		p.fill(f.Clipped, style.Clipped)
	case n > 0:
		// Degenerate result: a dot or a segment.
		p.outline(f.Clipped, style.Clipped)
	}
	for _, px := range f.Pixels {
		t.SetPixel(px.X, px.Y, style.Pixels)
	}
	if f.Label != "" {
		p.label(f.Label, style.Label)
	}

	polyclip.Logger().Debug("render: frame drawn",
		slog.Int("width", f.Width),
		slog.Int("height", f.Height),
		slog.Int("clipped", len(f.Clipped)),
		slog.Int("pixels", len(f.Pixels)))
	return nil
}

// pixelMapper returns the coordinate mapping for the frame's space.
func pixelMapper(f Frame) (func(polyclip.Point) polyclip.Point, error) {
	if f.Space == SpacePixel {
		return func(p polyclip.Point) polyclip.Point { return p }, nil
	}
	vp, err := polyclip.NewViewport(f.Width, f.Height)
	if err != nil {
		return nil, err
	}
	return vp.ToPixel, nil
}

type painter struct {
	img     *image.RGBA
	toPixel func(polyclip.Point) polyclip.Point
	style   Style
}

func (p *painter) rasterizer() *vector.Rasterizer {
	b := p.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

func (p *painter) paint(z *vector.Rasterizer, c image.Image) {
	z.Draw(p.img, p.img.Bounds(), c, image.Point{})
}

// fill paints the interior of a closed polygon.
func (p *painter) fill(poly polyclip.Polygon, c color.RGBA) {
	z := p.rasterizer()
	for i, v := range poly {
		q := p.toPixel(v)
		if i == 0 {
			z.MoveTo(float32(q.X), float32(q.Y))
		} else {
			z.LineTo(float32(q.X), float32(q.Y))
		}
	}
	z.ClosePath()
	p.paint(z, image.NewUniform(c))
}

// outline strokes a closed loop. One vertex draws a dot, two draw a
// single segment.
func (p *painter) outline(poly polyclip.Polygon, c color.RGBA) {
	z := p.rasterizer()
	n := len(poly)
	switch n {
	case 0:
		return
	case 1:
		p.dot(z, p.toPixel(poly[0]))
	case 2:
		p.segment(z, p.toPixel(poly[0]), p.toPixel(poly[1]))
	default:
		for i := range n {
			p.segment(z, p.toPixel(poly[i]), p.toPixel(poly[(i+1)%n]))
		}
	}
	p.paint(z, image.NewUniform(c))
}

// segment adds a quad of the style's line width around a->b.
func (p *painter) segment(z *vector.Rasterizer, a, b polyclip.Point) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || math.IsNaN(l) {
		p.dot(z, a)
		return
	}
	half := float64(p.style.LineWidth) / 2
	n := polyclip.Pt(-d.Y/l*half, d.X/l*half)
	quad(z, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// dot adds a square of the style's dot size centered on c.
func (p *painter) dot(z *vector.Rasterizer, c polyclip.Point) {
	h := float64(p.style.DotSize) / 2
	quad(z,
		polyclip.Pt(c.X-h, c.Y-h), polyclip.Pt(c.X+h, c.Y-h),
		polyclip.Pt(c.X+h, c.Y+h), polyclip.Pt(c.X-h, c.Y+h))
}

func quad(z *vector.Rasterizer, a, b, c, d polyclip.Point) {
	z.MoveTo(float32(a.X), float32(a.Y))
	z.LineTo(float32(b.X), float32(b.Y))
	z.LineTo(float32(c.X), float32(c.Y))
	z.LineTo(float32(d.X), float32(d.Y))
	z.ClosePath()
}

// label draws s in the top-left corner.
func (p *painter) label(s string, c color.RGBA) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(4, 4+face.Ascent),
	}
	d.DrawString(s)
}
