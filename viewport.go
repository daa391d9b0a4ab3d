package polyclip

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Viewport maps window pixel coordinates (origin top-left, y down) to
// normalized device coordinates (origin at the center, y up, both axes in
// [-1, 1]).
type Viewport struct {
	width, height int
	toNDC         mgl64.Mat3
	toPixel       mgl64.Mat3
}

// NewViewport returns a viewport for a window of the given size.
func NewViewport(width, height int) (Viewport, error) {
	var v Viewport
	if err := v.Resize(width, height); err != nil {
		return Viewport{}, err
	}
	return v, nil
}

// Resize recomputes the mapping for a new window size. On error the
// viewport is left unchanged.
func (v *Viewport) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidViewport)
	}
	w, h := float64(width), float64(height)
	m := mgl64.Translate2D(-1, 1).Mul3(mgl64.Scale2D(2/w, -2/h))
	v.width, v.height = width, height
	v.toNDC = m
	v.toPixel = m.Inv()
	return nil
}

// Size returns the window size in pixels.
func (v Viewport) Size() (width, height int) {
	return v.width, v.height
}

// ToNDC maps a pixel position to normalized device coordinates.
// Pixel (0, 0) maps to (-1, 1) and (width, height) to (1, -1).
func (v Viewport) ToNDC(x, y int) Point {
	return v.MapToNDC(Pt(float64(x), float64(y)))
}

// MapToNDC is ToNDC for fractional pixel positions.
func (v Viewport) MapToNDC(p Point) Point {
	r := v.toNDC.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return Pt(r.X(), r.Y())
}

// ToPixel maps normalized device coordinates back to pixel coordinates.
func (v Viewport) ToPixel(p Point) Point {
	r := v.toPixel.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return Pt(r.X(), r.Y())
}
