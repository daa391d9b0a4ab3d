// Package polyclip clips polygons against convex regions with the
// Sutherland-Hodgman algorithm.
//
// # Quick Start
//
//	import "github.com/gogpu/polyclip"
//
//	square := polyclip.Polygon{
//	    polyclip.Pt(0, 0), polyclip.Pt(1, 0), polyclip.Pt(1, 1), polyclip.Pt(0, 1),
//	}
//	out, err := polyclip.ClipRect(square, polyclip.Pt(0.5, 0.5), polyclip.Pt(1.5, 1.5))
//	// out is the square (0.5,0.5)-(1,1)
//
// # Regions
//
// A [Region] is a closed, convex loop of directed [Edge] values. A point is
// inside an edge when it lies on or left of the line through it, so with y
// pointing up the edges run counter-clockwise. Build regions with
// [RectRegion] (two corners in any order), [ConvexRegion] (convex vertices
// in either winding) or [NewRegion] (explicit edges, validated).
//
// # Results
//
// [Clip] never modifies its input. The result may be empty (no overlap) or
// have fewer than 3 vertices (the overlap is a point or a segment); neither
// is an error. Invalid regions are rejected when they are built.
//
// [ClipAll] clips many subjects against one region on a pool of
// goroutines and returns the results in subject order.
//
// # Interactive input
//
// [Session] replaces the global state of a click-driven demo: two clicks
// define the clip rectangle, further clicks add polygon vertices and
// [Session.Finish] clips. [Viewport] maps window pixels to normalized
// device coordinates.
//
// # Coordinate System
//
// The algorithm is coordinate-system agnostic. The sign convention assumes
// y up; in a y-down space the same edge list simply appears clockwise.
package polyclip
