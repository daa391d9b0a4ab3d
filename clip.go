package polyclip

import (
	"fmt"
	"log/slog"
)

// Clip returns the part of subject that lies inside region, computed with
// the Sutherland-Hodgman algorithm.
//
// The subject is clipped against each edge of the region in order; the
// output of one edge is the input of the next. The result keeps the
// subject's winding and may contain new vertices where the subject crosses
// region edges. It is empty when the subject lies entirely outside, and may
// have fewer than 3 vertices when the overlap is a point or a segment.
// Subject vertices inside the region are kept exactly as given, repeats
// included. A computed crossing point is not added when it equals the
// vertex next to it.
//
// Subjects with fewer than 3 vertices are clipped as degenerate loops. The
// subject is never modified. Clip returns ErrEmptyRegion for the zero
// Region; every other Region has already been validated.
func Clip(subject Polygon, region Region, opts ...Option) (Polygon, error) {
	if len(region.edges) == 0 {
		return nil, ErrEmptyRegion
	}
	o := applyOptions(opts)
	return clipPolygon(subject, region.edges, o), nil
}

// ClipEdges validates edges as [NewRegion] does and clips subject against
// them.
func ClipEdges(subject Polygon, edges []Edge, opts ...Option) (Polygon, error) {
	region, err := NewRegion(edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("clip: %w", err)
	}
	return Clip(subject, region, opts...)
}

// ClipRect clips subject against the axis-aligned rectangle spanned by two
// opposite corners, given in any order.
func ClipRect(subject Polygon, a, b Point, opts ...Option) (Polygon, error) {
	region, err := RectRegion(a, b)
	if err != nil {
		return nil, fmt.Errorf("clip: %w", err)
	}
	return Clip(subject, region, opts...)
}

// clipPolygon runs one Sutherland-Hodgman pass per edge.
func clipPolygon(subject Polygon, edges []Edge, o options) Polygon {
	log := o.log()
	if len(subject) == 0 {
		return nil
	}

	out := subject
	for i, e := range edges {
		out = clipAgainstEdge(out, e, o.tolerance)
		if len(out) == 0 {
			log.Debug("polyclip: subject clipped away",
				slog.Int("vertices", len(subject)),
				slog.Int("edge", i))
			return nil
		}
	}
	log.Debug("polyclip: clipped",
		slog.Int("vertices", len(subject)),
		slog.Int("edges", len(edges)),
		slog.Int("result", len(out)))
	return out
}

// clipAgainstEdge keeps the part of in that is inside e. It walks the
// vertices as (prev, cur) pairs, starting with the wrap-around pair
// (last, first), and always returns a new slice.
func clipAgainstEdge(in Polygon, e Edge, eps float64) Polygon {
	n := len(in)
	if n == 0 {
		return nil
	}
	out := vertexList{pts: make(Polygon, 0, n+2)}
	tol := eps * e.Length()

	prev := in[n-1]
	cpPrev := e.Side(prev)
	for _, cur := range in {
		cpCur := e.Side(cur)
		prevIn := cpPrev >= -tol
		curIn := cpCur >= -tol

		switch {
		case prevIn && curIn:
			out.add(cur, false)
		case !prevIn && curIn:
			// Entering: crossing point, then cur.
			if p, ok := intersect(prev, cur, cpPrev, cpCur); ok {
				out.add(p, true)
			}
			out.add(cur, false)
		case prevIn && !curIn:
			// Leaving: crossing point only.
			if p, ok := intersect(prev, cur, cpPrev, cpCur); ok {
				out.add(p, true)
			}
		}

		prev, cpPrev = cur, cpCur
	}
	return out.closed()
}

// vertexList collects the output of one pass. Only computed crossing
// points are merged with an equal neighbor; subject vertices always stay.
type vertexList struct {
	pts           Polygon
	firstCrossing bool
	lastCrossing  bool
}

func (l *vertexList) add(p Point, crossing bool) {
	if k := len(l.pts); k > 0 && l.pts[k-1] == p && (crossing || l.lastCrossing) {
		// A subject vertex wins over the crossing point it coincides with.
		l.lastCrossing = l.lastCrossing && crossing
		if k == 1 {
			l.firstCrossing = l.lastCrossing
		}
		return
	}
	if len(l.pts) == 0 {
		l.firstCrossing = crossing
	}
	l.pts = append(l.pts, p)
	l.lastCrossing = crossing
}

// closed merges the wrap-around pair the same way add merges neighbors.
func (l *vertexList) closed() Polygon {
	k := len(l.pts)
	if k < 2 || l.pts[k-1] != l.pts[0] {
		return l.pts
	}
	switch {
	case l.lastCrossing:
		return l.pts[:k-1]
	case l.firstCrossing:
		return l.pts[1:]
	}
	return l.pts
}

// intersect returns the point where segment prev->cur crosses the edge
// line, given the Side values of both endpoints. It reports false when the
// two values are equal, i.e. the segment is parallel to the edge and there
// is no single crossing point.
func intersect(prev, cur Point, cpPrev, cpCur float64) (Point, bool) {
	den := cpPrev - cpCur
	if den == 0 {
		return Point{}, false
	}
	t := cpPrev / den
	// Tolerance in the inside test can push t just outside [0, 1].
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return prev.Lerp(cur, t), true
}
