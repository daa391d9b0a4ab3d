package polyclip

import "log/slog"

// DefaultTolerance is the distance within which a point counts as lying on
// a clip edge, and within which edge endpoints count as shared.
const DefaultTolerance = 1e-9

// Option configures region construction and clipping.
// Use functional options to customize behavior.
//
// Example:
//
//	// Exact sign test, no tolerance
//	out, err := polyclip.Clip(subject, region, polyclip.WithTolerance(0))
type Option func(*options)

// options holds optional configuration for region construction and clipping.
type options struct {
	tolerance float64
	logger    *slog.Logger
	workers   int
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		tolerance: DefaultTolerance,
		logger:    nil, // Falls back to the package logger
	}
}

// applyOptions folds opts over the defaults.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithTolerance sets the distance tolerance used by the inside test and by
// region validation. Negative values are treated as zero, which gives the
// exact cross-product sign test.
func WithTolerance(eps float64) Option {
	return func(o *options) {
		if eps < 0 {
			eps = 0
		}
		o.tolerance = eps
	}
}

// WithLogger overrides the package logger for a single call.
// Passing nil keeps the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithWorkers sets the number of goroutines ClipAll uses. Zero or a
// negative count means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// log returns the logger for this call.
func (o options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}
