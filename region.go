package polyclip

import (
	"fmt"
	"math"
)

// Edge is a directed clip boundary from P1 to P2.
//
// A point is inside the edge when it lies on or to the left of the line
// through P1 and P2, i.e. when [Edge.Side] is non-negative. With y pointing
// up, the edges of a region must therefore run counter-clockwise.
type Edge struct {
	P1, P2 Point
}

// Direction returns the vector from P1 to P2.
func (e Edge) Direction() Point {
	return e.P2.Sub(e.P1)
}

// Length returns the length of the edge.
func (e Edge) Length() float64 {
	return e.Direction().Length()
}

// Side returns the cross product
//
//	(p2.x-p1.x)*(v.y-p1.y) - (p2.y-p1.y)*(v.x-p1.x)
//
// which is positive left of the edge, zero on the line and negative right
// of it. Its magnitude is the distance to the line times the edge length.
func (e Edge) Side(v Point) float64 {
	return e.Direction().Cross(v.Sub(e.P1))
}

// Inside reports whether v is on or left of the edge, allowing v to be up
// to eps to the right of the line.
func (e Edge) Inside(v Point, eps float64) bool {
	return e.Side(v) >= -eps*e.Length()
}

// Region is a validated convex clip region: an ordered, closed loop of
// counter-clockwise edges. The zero Region has no edges and is rejected
// by [Clip].
//
// Build one with [RectRegion], [ConvexRegion] or [NewRegion].
type Region struct {
	edges  []Edge
	rect   Rect
	isRect bool
}

// RectRegion returns the axis-aligned rectangle spanned by two opposite
// corners, given in any order. Its edges run bottom, right, top, left,
// which reproduces x >= xmin, x <= xmax, y >= ymin and y <= ymax.
//
// A rectangle with zero width or height is allowed; it clips everything to
// a segment or a point. Sides of zero length keep their direction so each
// half-plane stays defined.
func RectRegion(a, b Point) (Region, error) {
	if !a.IsFinite() || !b.IsFinite() {
		return Region{}, fmt.Errorf("rect corners %v, %v: %w", a, b, ErrDegenerateRegion)
	}
	r := NewRect(a, b)
	bl := r.Min
	br := Pt(r.Max.X, r.Min.Y)
	tr := r.Max
	tl := Pt(r.Min.X, r.Max.Y)
	return Region{
		edges: []Edge{
			rectSide(bl, br, Pt(1, 0)),  // bottom: y >= ymin
			rectSide(br, tr, Pt(0, 1)),  // right: x <= xmax
			rectSide(tr, tl, Pt(-1, 0)), // top: y <= ymax
			rectSide(tl, bl, Pt(0, -1)), // left: x >= xmin
		},
		rect:   r,
		isRect: true,
	}, nil
}

// rectSide returns the edge from p1 to p2, or a unit edge along dir when
// the two corners coincide.
func rectSide(p1, p2, dir Point) Edge {
	if p1 == p2 {
		return Edge{P1: p1, P2: p1.Add(dir)}
	}
	return Edge{P1: p1, P2: p2}
}

// ConvexRegion builds a region from the vertices of a convex polygon in
// either winding order. Clockwise input is reversed.
func ConvexRegion(vertices Polygon, opts ...Option) (Region, error) {
	if len(vertices) < 3 {
		return Region{}, fmt.Errorf("%d vertices: %w", len(vertices), ErrTooFewEdges)
	}
	if vertices.SignedArea() < 0 {
		vertices = vertices.Reversed()
	}
	edges := make([]Edge, len(vertices))
	for i, v := range vertices {
		edges[i] = Edge{P1: v, P2: vertices[(i+1)%len(vertices)]}
	}
	return NewRegion(edges, opts...)
}

// NewRegion validates an explicit edge list. The edges must form a closed
// loop (each edge starts where the previous one ends), run
// counter-clockwise and bound a convex area of non-zero size.
//
// The edge slice is copied; later changes by the caller do not affect the
// region.
func NewRegion(edges []Edge, opts ...Option) (Region, error) {
	o := applyOptions(opts)
	if err := validateEdges(edges, o.tolerance); err != nil {
		return Region{}, err
	}
	cp := make([]Edge, len(edges))
	copy(cp, edges)
	return Region{edges: cp}, nil
}

// validateEdges implements the NewRegion preconditions.
func validateEdges(edges []Edge, eps float64) error {
	n := len(edges)
	if n == 0 {
		return ErrEmptyRegion
	}
	if n < 3 {
		return fmt.Errorf("%d edges: %w", n, ErrTooFewEdges)
	}
	for i, e := range edges {
		if !e.P1.IsFinite() || !e.P2.IsFinite() {
			return fmt.Errorf("edge %d has non-finite coordinates: %w", i, ErrDegenerateRegion)
		}
		if e.Length() <= eps {
			return fmt.Errorf("edge %d has zero length: %w", i, ErrDegenerateRegion)
		}
	}
	for i, e := range edges {
		next := edges[(i+1)%n]
		if !e.P2.Near(next.P1, eps) {
			return fmt.Errorf("edge %d ends at %v but edge %d starts at %v: %w",
				i, e.P2, (i+1)%n, next.P1, ErrOpenRegion)
		}
	}

	loop := make(Polygon, n)
	for i, e := range edges {
		loop[i] = e.P1
	}
	area := loop.SignedArea()
	if math.Abs(area) <= eps {
		return fmt.Errorf("region area is zero: %w", ErrDegenerateRegion)
	}
	if !loop.IsConvex(eps) {
		return ErrNonConvexRegion
	}
	if area < 0 {
		return ErrClockwiseRegion
	}
	return nil
}

// Len returns the number of edges.
func (r Region) Len() int {
	return len(r.edges)
}

// Edges returns a copy of the region's edges in clip order.
func (r Region) Edges() []Edge {
	out := make([]Edge, len(r.edges))
	copy(out, r.edges)
	return out
}

// Vertices returns the start point of every edge, i.e. the region outline.
// For a rectangle this is its four corners even when it is degenerate.
func (r Region) Vertices() Polygon {
	if r.isRect {
		return Polygon{
			r.rect.Min,
			Pt(r.rect.Max.X, r.rect.Min.Y),
			r.rect.Max,
			Pt(r.rect.Min.X, r.rect.Max.Y),
		}
	}
	out := make(Polygon, len(r.edges))
	for i, e := range r.edges {
		out[i] = e.P1
	}
	return out
}

// Rect returns the rectangle and true when the region was built by
// [RectRegion].
func (r Region) Rect() (Rect, bool) {
	return r.rect, r.isRect
}

// Bounds returns the bounding box of the region outline.
func (r Region) Bounds() Rect {
	if r.isRect {
		return r.rect
	}
	return r.Vertices().Bounds()
}

// Contains reports whether p is inside every edge, allowing p to lie up to
// eps outside. A region without edges contains nothing.
func (r Region) Contains(p Point, eps float64) bool {
	if len(r.edges) == 0 {
		return false
	}
	for _, e := range r.edges {
		if !e.Inside(p, eps) {
			return false
		}
	}
	return true
}
