package polyclip

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

const testEps = 1e-9

func assertPointNear(t *testing.T, got, want Point) {
	t.Helper()
	if !got.Near(want, testEps) {
		t.Errorf("point = %v, want %v", got, want)
	}
}

// assertSameVertices checks that got and want hold the same vertices,
// ignoring where the loop starts.
func assertSameVertices(t *testing.T, got, want Polygon) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d vertices %v, want %d %v", len(got), got, len(want), want)
	}
	start := -1
	for i, p := range got {
		if p.Near(want[0], testEps) {
			start = i
			break
		}
	}
	if start < 0 {
		t.Fatalf("vertex %v missing from %v", want[0], got)
	}
	for i, w := range want {
		g := got[(start+i)%len(got)]
		if !g.Near(w, testEps) {
			t.Fatalf("got %v, want %v (same loop, any start)", got, want)
		}
	}
}

func sortedVertices(p Polygon) Polygon {
	out := p.Clone()
	slices.SortFunc(out, func(a, b Point) int {
		if math.Abs(a.X-b.X) > testEps {
			if a.X < b.X {
				return -1
			}
			return 1
		}
		switch {
		case a.Y < b.Y-testEps:
			return -1
		case a.Y > b.Y+testEps:
			return 1
		}
		return 0
	})
	return out
}

func mustRect(t *testing.T, a, b Point) Region {
	t.Helper()
	r, err := RectRegion(a, b)
	if err != nil {
		t.Fatalf("RectRegion(%v, %v): %v", a, b, err)
	}
	return r
}

func unitSquare() Polygon {
	return Polygon{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
}

func TestClip_FullyInside(t *testing.T) {
	region := mustRect(t, Pt(-1, -1), Pt(2, 2))
	tests := []struct {
		name    string
		subject Polygon
	}{
		{"square", unitSquare()},
		{"triangle", Polygon{Pt(0, 0), Pt(1, 0), Pt(0.5, 1)}},
		{"clockwise", unitSquare().Reversed()},
		{"touching border", Polygon{Pt(-1, -1), Pt(2, -1), Pt(2, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clip(tt.subject, region)
			if err != nil {
				t.Fatalf("Clip: %v", err)
			}
			if len(got) != len(tt.subject) {
				t.Fatalf("got %v, want %v", got, tt.subject)
			}
			for i := range got {
				assertPointNear(t, got[i], tt.subject[i])
			}
		})
	}
}

func TestClip_FullyOutside(t *testing.T) {
	region := mustRect(t, Pt(0, 0), Pt(1, 1))
	tests := []struct {
		name    string
		subject Polygon
	}{
		{"left", Polygon{Pt(-3, 0), Pt(-2, 0), Pt(-2, 1)}},
		{"right", Polygon{Pt(2, 0), Pt(3, 0), Pt(3, 1)}},
		{"above", Polygon{Pt(0, 2), Pt(1, 2), Pt(1, 3)}},
		{"below", Polygon{Pt(0, -2), Pt(1, -2), Pt(1, -1)}},
		{"bounds overlap corner", Polygon{Pt(1.6, 0.6), Pt(1.6, 1.6), Pt(0.6, 1.6)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clip(tt.subject, region)
			if err != nil {
				t.Fatalf("Clip: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("expected empty result, got %v", got)
			}
		})
	}
}

func TestClip_SquareCorner(t *testing.T) {
	got, err := ClipRect(unitSquare(), Pt(0.5, 0.5), Pt(1.5, 1.5))
	if err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	assertSameVertices(t, got, Polygon{Pt(0.5, 0.5), Pt(1, 0.5), Pt(1, 1), Pt(0.5, 1)})
	if a := got.Area(); math.Abs(a-0.25) > testEps {
		t.Errorf("area = %v, want 0.25", a)
	}
}

func TestClip_SquareHalf(t *testing.T) {
	got, err := ClipRect(unitSquare(), Pt(0.5, -0.5), Pt(1.5, 1.5))
	if err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	assertSameVertices(t, got, Polygon{Pt(0.5, 0), Pt(1, 0), Pt(1, 1), Pt(0.5, 1)})
	if a := got.Area(); math.Abs(a-0.5) > testEps {
		t.Errorf("area = %v, want 0.5", a)
	}
}

func TestClip_TriangleAgainstSquare(t *testing.T) {
	tri := Polygon{Pt(-1, -1), Pt(1, -1), Pt(0, 1)}

	got, err := ClipRect(tri, Pt(-0.5, -0.5), Pt(0.5, 0.5))
	if err != nil {
		t.Fatalf("ClipRect: %v", err)
	}

	// Both upper corners of the square are cut off by the triangle sides.
	want := Polygon{
		Pt(-0.25, 0.5), Pt(-0.5, 0), Pt(-0.5, -0.5),
		Pt(0.5, -0.5), Pt(0.5, 0), Pt(0.25, 0.5),
	}
	assertSameVertices(t, got, want)
	if a := got.Area(); math.Abs(a-0.875) > testEps {
		t.Errorf("area = %v, want 0.875", a)
	}
	if !got.IsCCW() {
		t.Error("result should keep the counter-clockwise winding of the subject")
	}
}

func TestClip_PreservesClockwiseWinding(t *testing.T) {
	tri := Polygon{Pt(0, 1), Pt(1, -1), Pt(-1, -1)}

	got, err := ClipRect(tri, Pt(-0.5, -0.5), Pt(0.5, 0.5))
	if err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	if got.SignedArea() >= 0 {
		t.Errorf("signed area = %v, want negative", got.SignedArea())
	}
}

func TestClip_ConcaveSubject(t *testing.T) {
	// U shape with a 1x2 notch cut from the top.
	u := Polygon{
		Pt(0, 0), Pt(3, 0), Pt(3, 3), Pt(2, 3),
		Pt(2, 1), Pt(1, 1), Pt(1, 3), Pt(0, 3),
	}

	got, err := ClipRect(u, Pt(0, 0), Pt(3, 2))
	if err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	if a := got.Area(); math.Abs(a-5) > testEps {
		t.Errorf("area = %v, want 5", a)
	}
}

func TestClip_ConvexRegion(t *testing.T) {
	// Triangle region, given clockwise; ConvexRegion fixes the winding.
	region, err := ConvexRegion(Polygon{Pt(0, 0), Pt(0, 2), Pt(2, 0)})
	if err != nil {
		t.Fatalf("ConvexRegion: %v", err)
	}

	got, err := Clip(unitSquare(), region)
	if err != nil {
		t.Fatalf("Clip: %v", err)
	}
	// x + y <= 2 does not cut the unit square.
	assertSameVertices(t, got, unitSquare())

	big := Polygon{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}
	got, err = Clip(big, region)
	if err != nil {
		t.Fatalf("Clip: %v", err)
	}
	if a := got.Area(); math.Abs(a-2) > testEps {
		t.Errorf("area = %v, want 2", a)
	}
}

func TestClip_DegenerateSubjects(t *testing.T) {
	region := mustRect(t, Pt(-0.5, -0.5), Pt(0.5, 0.5))

	t.Run("empty", func(t *testing.T) {
		got, err := Clip(nil, region)
		if err != nil {
			t.Fatalf("Clip: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	})

	t.Run("point inside", func(t *testing.T) {
		got, err := Clip(Polygon{Pt(0.1, 0.2)}, region)
		if err != nil {
			t.Fatalf("Clip: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("got %v, want one point", got)
		}
		assertPointNear(t, got[0], Pt(0.1, 0.2))
	})

	t.Run("point outside", func(t *testing.T) {
		got, err := Clip(Polygon{Pt(3, 3)}, region)
		if err != nil {
			t.Fatalf("Clip: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	})

	t.Run("segment crossing", func(t *testing.T) {
		got, err := Clip(Polygon{Pt(-1, 0), Pt(1, 0)}, region)
		if err != nil {
			t.Fatalf("Clip: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %v, want 2 points", got)
		}
		s := sortedVertices(got)
		assertPointNear(t, s[0], Pt(-0.5, 0))
		assertPointNear(t, s[1], Pt(0.5, 0))
	})
}

func TestClip_ZeroRegion(t *testing.T) {
	_, err := Clip(unitSquare(), Region{})
	if !errors.Is(err, ErrEmptyRegion) {
		t.Errorf("Clip with zero Region: err = %v, want ErrEmptyRegion", err)
	}
}

func TestClip_DoesNotModifyInput(t *testing.T) {
	subject := Polygon{Pt(-1, -1), Pt(1, -1), Pt(0, 1)}
	orig := subject.Clone()

	got, err := ClipRect(subject, Pt(-0.5, -0.5), Pt(0.5, 0.5))
	if err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	if !slices.Equal(subject, orig) {
		t.Errorf("subject modified: %v, want %v", subject, orig)
	}
	if len(got) == 0 {
		t.Fatal("expected a non-empty result")
	}

	// The result must not alias the subject.
	inside, err := ClipRect(subject, Pt(-5, -5), Pt(5, 5))
	if err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	inside[0] = Pt(42, 42)
	if subject[0] != orig[0] {
		t.Error("result aliases subject")
	}
}

func TestClip_Idempotent(t *testing.T) {
	region := mustRect(t, Pt(-0.5, -0.5), Pt(0.5, 0.5))
	subjects := []Polygon{
		{Pt(-1, -1), Pt(1, -1), Pt(0, 1)},
		unitSquare(),
		{Pt(0, -2), Pt(2, 0), Pt(0, 2), Pt(-2, 0)},
	}

	for _, s := range subjects {
		once, err := Clip(s, region)
		if err != nil {
			t.Fatalf("Clip: %v", err)
		}
		twice, err := Clip(once, region)
		if err != nil {
			t.Fatalf("Clip: %v", err)
		}
		if len(once) != len(twice) {
			t.Fatalf("second clip changed vertex count: %v -> %v", once, twice)
		}
		for i := range once {
			assertPointNear(t, twice[i], once[i])
		}
	}
}

func TestClip_EdgeOrderIndependence(t *testing.T) {
	region := mustRect(t, Pt(-0.5, -0.5), Pt(0.5, 0.5))
	edges := region.Edges()
	subject := Polygon{Pt(-1, -1), Pt(1, -1), Pt(0, 1)}

	want := sortedVertices(clipPolygon(subject, edges, defaultOptions()))
	wantArea := clipPolygon(subject, edges, defaultOptions()).Area()

	perms := [][]int{
		{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}, {3, 0, 1, 2},
	}
	for _, perm := range perms {
		ordered := make([]Edge, len(perm))
		for i, j := range perm {
			ordered[i] = edges[j]
		}
		got := clipPolygon(subject, ordered, defaultOptions())
		if math.Abs(got.Area()-wantArea) > testEps {
			t.Errorf("order %v: area = %v, want %v", perm, got.Area(), wantArea)
		}
		s := sortedVertices(got)
		if len(s) != len(want) {
			t.Fatalf("order %v: got %v, want %v", perm, s, want)
		}
		for i := range s {
			assertPointNear(t, s[i], want[i])
		}
	}
}

func TestClip_ZeroWidthRect(t *testing.T) {
	region := mustRect(t, Pt(0.5, -1), Pt(0.5, 2))

	got, err := Clip(unitSquare(), region)
	if err != nil {
		t.Fatalf("Clip: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %v, want a vertical segment", got)
	}
	for _, p := range got {
		if math.Abs(p.X-0.5) > testEps {
			t.Errorf("point %v not on x = 0.5", p)
		}
	}
	if got.Area() > testEps {
		t.Errorf("area = %v, want 0", got.Area())
	}

	// Disjoint from the segment entirely.
	got, err = Clip(Polygon{Pt(2, 0), Pt(3, 0), Pt(3, 1)}, region)
	if err != nil {
		t.Fatalf("Clip: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestClip_PointRect(t *testing.T) {
	p := Pt(0.5, 0.5)
	got, err := ClipRect(unitSquare(), p, p)
	if err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected the rectangle point to survive")
	}
	for _, v := range got {
		assertPointNear(t, v, p)
	}
}

func testRegions(t *testing.T) map[string]Region {
	t.Helper()
	hexagon := make(Polygon, 6)
	for i := range hexagon {
		a := float64(i) * math.Pi / 3
		hexagon[i] = Pt(0.8*math.Cos(a), 0.8*math.Sin(a))
	}
	hex, err := ConvexRegion(hexagon)
	if err != nil {
		t.Fatalf("ConvexRegion: %v", err)
	}
	return map[string]Region{
		"rect":    mustRect(t, Pt(-0.6, -0.4), Pt(0.7, 0.5)),
		"hexagon": hex,
	}
}

func TestClip_ResultInsideRegion(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for name, region := range testRegions(t) {
		t.Run(name, func(t *testing.T) {
			for range 200 {
				subject := randomStarPolygon(rng, 3+rng.IntN(10))
				got, err := Clip(subject, region)
				if err != nil {
					t.Fatalf("Clip: %v", err)
				}
				for _, p := range got {
					if !region.Contains(p, 1e-5) {
						t.Fatalf("point %v of %v is outside the region", p, got)
					}
				}
				if got.Area() > subject.Area()+1e-9 {
					t.Fatalf("clipped area %v exceeds subject area %v", got.Area(), subject.Area())
				}
			}
		})
	}
}

func TestClip_AreaMatchesSampling(t *testing.T) {
	const (
		grid = 200
		tol  = 0.02
	)
	rng := rand.New(rand.NewPCG(7, 8))

	for name, region := range testRegions(t) {
		t.Run(name, func(t *testing.T) {
			b := region.Bounds()
			dx, dy := b.Width()/grid, b.Height()/grid
			for range 40 {
				subject := randomStarPolygon(rng, 3+rng.IntN(10))
				got, err := Clip(subject, region)
				if err != nil {
					t.Fatalf("Clip: %v", err)
				}

				hits := 0
				for i := range grid {
					for j := range grid {
						p := Pt(b.Min.X+(float64(i)+0.5)*dx, b.Min.Y+(float64(j)+0.5)*dy)
						if region.Contains(p, 0) && containsEvenOdd(subject, p) {
							hits++
						}
					}
				}
				sampled := float64(hits) * dx * dy
				if math.Abs(got.Area()-sampled) > tol {
					t.Fatalf("clipped area %v, sampled area %v, subject %v", got.Area(), sampled, subject)
				}
			}
		})
	}
}

// containsEvenOdd is a ray-casting point-in-polygon test.
func containsEvenOdd(poly Polygon, p Point) bool {
	in := false
	j := len(poly) - 1
	for i, a := range poly {
		b := poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

// randomStarPolygon returns a simple polygon that is star-shaped around a
// random center. The angles are evenly spaced with a jitter of at most a
// fifth of the spacing, so no angular gap reaches pi and the outline never
// crosses itself.
func randomStarPolygon(rng *rand.Rand, n int) Polygon {
	cx, cy := rng.Float64()*2-1, rng.Float64()*2-1
	step := 2 * math.Pi / float64(n)
	offset := rng.Float64() * 2 * math.Pi
	p := make(Polygon, n)
	for i := range p {
		a := offset + (float64(i)+0.2*(rng.Float64()*2-1))*step
		r := 0.1 + rng.Float64()*1.2
		p[i] = Pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return p
}

func TestClip_KeepsSmallSubject(t *testing.T) {
	// Far below the default tolerance, but entirely inside.
	subject := Polygon{Pt(0, 0), Pt(1e-10, 0), Pt(1e-10, 1e-10), Pt(0, 1e-10)}
	got, err := ClipRect(subject, Pt(-1, -1), Pt(1, 1))
	if err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	if !slices.Equal(got, subject) {
		t.Errorf("got %v, want %v unchanged", got, subject)
	}
}

func TestClip_KeepsRepeatedVertices(t *testing.T) {
	tests := []struct {
		name    string
		subject Polygon
	}{
		{"repeated corner", Polygon{Pt(0, 0), Pt(1, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}},
		{"closing vertex", Polygon{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1), Pt(0, 0)}},
		{"near repeat", Polygon{Pt(0, 0), Pt(1, 0), Pt(1, 1e-12), Pt(1, 1), Pt(0, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClipRect(tt.subject, Pt(-1, -1), Pt(2, 2))
			if err != nil {
				t.Fatalf("ClipRect: %v", err)
			}
			if !slices.Equal(got, tt.subject) {
				t.Errorf("got %v, want %v unchanged", got, tt.subject)
			}
		})
	}
}

func TestClip_MergesCrossingWithVertex(t *testing.T) {
	// The edge from (0,2) to (2,0) crosses the top and right sides exactly
	// at the corner (1,1); the corner is reported once.
	got, err := ClipRect(Polygon{Pt(0, 2), Pt(2, 0), Pt(3, 3)}, Pt(0, 0), Pt(1, 1))
	if err != nil {
		t.Fatalf("ClipRect: %v", err)
	}
	if len(got) != 1 || got[0] != Pt(1, 1) {
		t.Errorf("got %v, want [(1,1)]", got)
	}
}

func TestClipEdges_InvalidRegion(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge
		want  error
	}{
		{"nil", nil, ErrEmptyRegion},
		{"two edges", []Edge{{Pt(0, 0), Pt(1, 0)}, {Pt(1, 0), Pt(0, 0)}}, ErrTooFewEdges},
		{"open", []Edge{{Pt(0, 0), Pt(1, 0)}, {Pt(1, 0), Pt(1, 1)}, {Pt(0, 1), Pt(0, 0)}}, ErrOpenRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ClipEdges(unitSquare(), tt.edges)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClipEdges_Valid(t *testing.T) {
	edges := []Edge{
		{Pt(0.5, 0.5), Pt(1.5, 0.5)},
		{Pt(1.5, 0.5), Pt(1.5, 1.5)},
		{Pt(1.5, 1.5), Pt(0.5, 1.5)},
		{Pt(0.5, 1.5), Pt(0.5, 0.5)},
	}
	got, err := ClipEdges(unitSquare(), edges)
	if err != nil {
		t.Fatalf("ClipEdges: %v", err)
	}
	if a := got.Area(); math.Abs(a-0.25) > testEps {
		t.Errorf("area = %v, want 0.25", a)
	}
}

func TestClipRect_NonFinite(t *testing.T) {
	_, err := ClipRect(unitSquare(), Pt(math.NaN(), 0), Pt(1, 1))
	if !errors.Is(err, ErrDegenerateRegion) {
		t.Errorf("err = %v, want ErrDegenerateRegion", err)
	}
}

func TestIntersect_ParallelSegment(t *testing.T) {
	// Equal side values mean the segment is parallel to the edge.
	if _, ok := intersect(Pt(0, 1), Pt(1, 1), 0.5, 0.5); ok {
		t.Error("intersect should report no crossing for a parallel segment")
	}

	p, ok := intersect(Pt(0, -1), Pt(0, 1), -1, 1)
	if !ok {
		t.Fatal("intersect should report a crossing")
	}
	assertPointNear(t, p, Pt(0, 0))
}

func TestClipAgainstEdge_SegmentOnEdgeLine(t *testing.T) {
	e := Edge{P1: Pt(0, 0), P2: Pt(1, 0)}
	// The bottom side of the square lies on the edge line.
	got := clipAgainstEdge(unitSquare(), e, 0)
	assertSameVertices(t, got, unitSquare())

	// Square below the line, touching it along its top side.
	below := Polygon{Pt(0, -1), Pt(1, -1), Pt(1, 0), Pt(0, 0)}
	got = clipAgainstEdge(below, e, 0)
	for _, p := range got {
		if p.Y != 0 {
			t.Errorf("point %v should lie on the edge line", p)
		}
	}
	if got.Area() != 0 {
		t.Errorf("area = %v, want 0", got.Area())
	}
}

func TestClip_ExactTolerance(t *testing.T) {
	// A vertex a hair outside the edge is kept with the default tolerance
	// and cut with WithTolerance(0).
	subject := Polygon{Pt(0.2, 0.2), Pt(0.8, 0.2), Pt(0.5, 1+1e-12)}
	region := mustRect(t, Pt(0, 0), Pt(1, 1))

	got, err := Clip(subject, region)
	if err != nil {
		t.Fatalf("Clip: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("default tolerance: got %v, want 3 vertices", got)
	}

	got, err = Clip(subject, region, WithTolerance(0))
	if err != nil {
		t.Fatalf("Clip: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("zero tolerance: got %v, want 4 vertices", got)
	}
}
