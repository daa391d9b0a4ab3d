package polyclip

import (
	"fmt"
	"log/slog"
)

// Stage is the input stage of a [Session].
type Stage int

const (
	// StageRect waits for the two corners of the clip rectangle.
	StageRect Stage = iota
	// StagePolygon collects subject vertices until Finish.
	StagePolygon
	// StageClipped holds the clip result.
	StageClipped
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageRect:
		return "rect"
	case StagePolygon:
		return "polygon"
	case StageClipped:
		return "clipped"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// SessionOption configures a Session during creation.
type SessionOption func(*Session)

// WithViewport sets the viewport used by ClickPixel.
func WithViewport(v Viewport) SessionOption {
	return func(s *Session) {
		s.viewport = v
		s.hasViewport = true
	}
}

// WithClipOptions sets the options passed to Clip when the session
// finishes a polygon.
func WithClipOptions(opts ...Option) SessionOption {
	return func(s *Session) {
		s.clipOpts = append(s.clipOpts, opts...)
	}
}

// Session collects a clip rectangle and a polygon from successive clicks
// and clips the polygon when it is finished:
//
//	StageRect     two clicks define the rectangle corners
//	StagePolygon  each click adds a vertex; Finish clips
//	StageClipped  the result is available; the next click clears it
//
// A Session is owned by a single caller and is not safe for concurrent use.
type Session struct {
	stage     Stage
	corner    Point
	hasCorner bool
	region    Region
	subject   Polygon
	result    Polygon

	viewport    Viewport
	hasViewport bool
	clipOpts    []Option
}

// NewSession returns a session waiting for the first rectangle corner.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{stage: StageRect}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stage returns the current stage.
func (s *Session) Stage() Stage {
	return s.stage
}

// Corner returns the first rectangle corner while the second is pending.
func (s *Session) Corner() (Point, bool) {
	return s.corner, s.hasCorner
}

// Region returns the clip rectangle once both corners are known.
func (s *Session) Region() (Region, bool) {
	return s.region, s.stage != StageRect
}

// Subject returns a copy of the vertices collected so far.
func (s *Session) Subject() Polygon {
	return s.subject.Clone()
}

// Result returns a copy of the clip result. It is nil before StageClipped
// and may be empty when the polygon was clipped away.
func (s *Session) Result() Polygon {
	return s.result.Clone()
}

// Click feeds one input point to the session.
//
// In StageRect the first click records a corner and the second builds the
// rectangle. In StagePolygon the point becomes a new vertex. In
// StageClipped the click only clears the session, which then waits for
// the first corner of a new rectangle; the point itself is not used.
func (s *Session) Click(p Point) error {
	switch s.stage {
	case StageClipped:
		s.Reset()
		return nil

	case StageRect:
		if !s.hasCorner {
			if !p.IsFinite() {
				return fmt.Errorf("corner %v: %w", p, ErrDegenerateRegion)
			}
			s.corner, s.hasCorner = p, true
			return nil
		}
		region, err := RectRegion(s.corner, p)
		if err != nil {
			return err
		}
		s.region = region
		s.hasCorner = false
		s.setStage(StagePolygon)
		return nil

	case StagePolygon:
		s.subject = append(s.subject, p)
		return nil
	}
	return fmt.Errorf("click in %v: %w", s.stage, ErrWrongStage)
}

// ClickPixel maps a window pixel through the session viewport and calls
// Click. Without a viewport the pixel coordinates are used as they are.
func (s *Session) ClickPixel(x, y int) error {
	if s.hasViewport {
		return s.Click(s.viewport.ToNDC(x, y))
	}
	return s.Click(Pt(float64(x), float64(y)))
}

// Finish clips the collected polygon against the rectangle and moves to
// StageClipped. It returns ErrTooFewVertices, leaving the session
// unchanged, when fewer than 3 vertices were collected.
func (s *Session) Finish() (Polygon, error) {
	if s.stage != StagePolygon {
		return nil, fmt.Errorf("finish in %v: %w", s.stage, ErrWrongStage)
	}
	if len(s.subject) < 3 {
		return nil, fmt.Errorf("%d vertices: %w", len(s.subject), ErrTooFewVertices)
	}
	result, err := Clip(s.subject, s.region, s.clipOpts...)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = Polygon{}
	}
	if n := len(result); n > 0 && n < 3 {
		Logger().Warn("polyclip: clipped polygon is degenerate", slog.Int("vertices", n))
	}
	s.result = result
	s.setStage(StageClipped)
	return result.Clone(), nil
}

// Reset discards all input and returns to StageRect.
func (s *Session) Reset() {
	s.corner, s.hasCorner = Point{}, false
	s.region = Region{}
	s.subject = nil
	s.result = nil
	s.setStage(StageRect)
}

func (s *Session) setStage(st Stage) {
	if s.stage != st {
		Logger().Info("polyclip: session stage", slog.String("from", s.stage.String()), slog.String("to", st.String()))
	}
	s.stage = st
}
