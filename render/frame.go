// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/polyclip"
)

// Space selects how frame coordinates map to pixels.
type Space int

const (
	// SpaceNDC treats coordinates as normalized device coordinates:
	// (-1, 1) is the top-left corner and (1, -1) the bottom-right.
	SpaceNDC Space = iota
	// SpacePixel treats coordinates as pixel positions.
	SpacePixel
)

// Style holds the colors and sizes used to draw a frame.
type Style struct {
	Background color.RGBA
	Region     color.RGBA
	Subject    color.RGBA
	Clipped    color.RGBA
	Pixels     color.RGBA
	Label      color.RGBA
	LineWidth  float32
	DotSize    float32
}

// DefaultStyle mirrors the classic demo colors: a light background, a blue
// clip rectangle, the subject in green and the clipped result in red.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 230, G: 230, B: 230, A: 255},
		Region:     color.RGBA{B: 255, A: 255},
		Subject:    color.RGBA{G: 160, A: 255},
		Clipped:    color.RGBA{R: 220, A: 255},
		Pixels:     color.RGBA{R: 40, G: 40, B: 40, A: 255},
		Label:      color.RGBA{A: 255},
		LineWidth:  2,
		DotSize:    4,
	}
}

// Frame is everything drawn in one picture. Zero fields are skipped.
type Frame struct {
	Width, Height int
	Space         Space

	Region  polyclip.Region
	Subject polyclip.Polygon
	Clipped polyclip.Polygon

	// Pixels are always in pixel space, e.g. the output of raster.Circle.
	Pixels []image.Point

	Label string

	// Style defaults to DefaultStyle when nil.
	Style *Style
}
