package polyclip

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so slog does
// not even build the attributes of a disabled call.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func silentLogger() *slog.Logger { return slog.New(discardHandler{}) }

// current holds the logger shared by this package and render.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silentLogger())
}

// SetLogger routes polyclip diagnostics to l. Until it is called nothing
// is logged, and SetLogger(nil) goes back to that state. It may be called
// while other goroutines are clipping.
//
// What gets logged:
//   - [slog.LevelDebug]: vertex and edge counts of each clip, batch sizes,
//     drawn frames
//   - [slog.LevelInfo]: Session stage transitions
//   - [slog.LevelWarn]: a Session result that is only a point or a segment
//
// For example, to see everything on stderr:
//
//	polyclip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	current.Store(l)
}

// Logger returns the logger set with SetLogger, or a silent one. It never
// returns nil.
func Logger() *slog.Logger {
	return current.Load()
}
