package reveal

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for reveal and its sub-packages.
// By default, reveal produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by reveal:
//   - [slog.LevelDebug]: assembly details (decomposed placements, primitive ids)
//   - [slog.LevelInfo]: reveal lifecycle (glyph fade started, finished)
//   - [slog.LevelWarn]: degenerate transforms normalized to zero placement
//
// Example:
//
//	reveal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by reveal.
// The surface and recording packages call this to share
// the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
