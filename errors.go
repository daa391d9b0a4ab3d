package polyclip

import "errors"

// Errors returned by region construction and clipping. They are wrapped
// with context, so match them with errors.Is.
var (
	// ErrEmptyRegion is returned when a clip region has no edges.
	ErrEmptyRegion = errors.New("polyclip: clip region has no edges")

	// ErrTooFewEdges is returned when a clip region has fewer than 3 edges
	// and so cannot bound a closed area.
	ErrTooFewEdges = errors.New("polyclip: clip region needs at least 3 edges")

	// ErrOpenRegion is returned when consecutive edges do not share endpoints.
	ErrOpenRegion = errors.New("polyclip: clip region edges do not form a closed loop")

	// ErrNonConvexRegion is returned when the edges turn in both directions
	// or wind around more than once.
	ErrNonConvexRegion = errors.New("polyclip: clip region is not convex")

	// ErrClockwiseRegion is returned by NewRegion when the edges run
	// clockwise, which would make the inside test select the outside.
	ErrClockwiseRegion = errors.New("polyclip: clip region edges are not counter-clockwise")

	// ErrDegenerateRegion is returned for zero-length edges, zero-area
	// regions and non-finite coordinates.
	ErrDegenerateRegion = errors.New("polyclip: clip region is degenerate")

	// ErrTooFewVertices is returned by Session.Finish when the polygon being
	// collected has fewer than 3 vertices.
	ErrTooFewVertices = errors.New("polyclip: polygon needs at least 3 vertices")

	// ErrWrongStage is returned when a Session operation is not valid in the
	// current stage.
	ErrWrongStage = errors.New("polyclip: operation not valid in current stage")

	// ErrInvalidViewport is returned for viewports with a non-positive size.
	ErrInvalidViewport = errors.New("polyclip: viewport size must be positive")
)
