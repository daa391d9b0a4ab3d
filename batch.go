package polyclip

import (
	"log/slog"

	"github.com/gogpu/polyclip/internal/parallel"
)

// ClipAll clips every subject against the same region and returns the
// results in subject order. Subjects are clipped in parallel; see
// [WithWorkers]. The subjects are not modified.
func ClipAll(subjects []Polygon, region Region, opts ...Option) ([]Polygon, error) {
	if len(region.edges) == 0 {
		return nil, ErrEmptyRegion
	}
	o := applyOptions(opts)
	out := make([]Polygon, len(subjects))

	if len(subjects) < 2 || o.workers == 1 {
		for i, s := range subjects {
			out[i] = clipPolygon(s, region.edges, o)
		}
		return out, nil
	}

	pool := parallel.NewPool(min(o.workers, len(subjects)))
	defer pool.Close()
	pool.Run(len(subjects), func(i int) {
		out[i] = clipPolygon(subjects[i], region.edges, o)
	})

	o.log().Debug("polyclip: batch clipped",
		slog.Int("subjects", len(subjects)),
		slog.Int("workers", pool.Workers()))
	return out, nil
}
