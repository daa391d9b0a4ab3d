package polyclip

import "math"

// Polygon is an ordered list of vertices forming a closed loop: the last
// vertex implicitly connects back to the first.
//
// A polygon needs at least 3 vertices to enclose an area. Shorter lists are
// degenerate (a point or a segment) but still valid input and output for
// [Clip].
type Polygon []Point

// Clone returns a copy of the polygon that shares no memory with p.
// Cloning a nil polygon returns nil.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// IsDegenerate reports whether the polygon has fewer than 3 vertices.
func (p Polygon) IsDegenerate() bool {
	return len(p) < 3
}

// SignedArea returns the signed area of the polygon using the shoelace
// formula. The result is positive for counter-clockwise vertex order in a
// y-up coordinate system and negative for clockwise order.
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var sum float64
	prev := p[n-1]
	for _, cur := range p {
		sum += prev.Cross(cur)
		prev = cur
	}
	return sum / 2
}

// Area returns the absolute area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsCCW reports whether the polygon winds counter-clockwise (positive
// signed area).
func (p Polygon) IsCCW() bool {
	return p.SignedArea() > 0
}

// Reversed returns a copy of the polygon with the vertex order reversed.
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty polygon has a zero Rect.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		r.Min = r.Min.Min(v)
		r.Max = r.Max.Max(v)
	}
	return r
}

// IsConvex reports whether every turn of the polygon has the same
// direction and the boundary winds around exactly once. Collinear
// vertices (turns within eps) are allowed. Degenerate polygons are not
// convex.
func (p Polygon) IsConvex(eps float64) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	sign := 0
	var winding float64
	for i := range n {
		a := p[i]
		b := p[(i+1)%n]
		c := p[(i+2)%n]
		d1 := b.Sub(a)
		d2 := c.Sub(b)
		cross := d1.Cross(d2)
		switch {
		case cross > eps:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < -eps:
			if sign > 0 {
				return false
			}
			sign = -1
		}
		winding += math.Atan2(cross, d1.Dot(d2))
	}
	if sign == 0 {
		return false
	}
	// A star polygon turns one way at every vertex but winds twice.
	return math.Abs(math.Abs(winding)-2*math.Pi) < 1e-6
}
