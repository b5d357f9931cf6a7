package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/nao1215/confreport/internal/model"
)

// DedupHandler wraps an slog.Handler and drops warning records identical to
// one already handled. Records below slog.LevelWarn always pass through.
//
// The scope added with WithAttrs is part of a record's identity, so callers
// that log one snapshot at a time through logger.With("source", ...) never
// lose a warning raised by another snapshot.
type DedupHandler struct {
	// handler is the underlying slog handler that receives unique records.
	handler slog.Handler

	// scope identifies attributes and groups added with WithAttrs/WithGroup.
	scope string

	// seen is shared between a handler and the handlers derived from it.
	seen *seenSet
}

type seenSet struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// firstTime records key and reports whether it was new.
func (s *seenSet) firstTime(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keys[key]; ok {
		return false
	}
	s.keys[key] = struct{}{}
	return true
}

// NewDedupHandler creates a new DedupHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewDedupHandler(handler slog.Handler) *DedupHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &DedupHandler{
		handler: handler,
		seen:    &seenSet{keys: make(map[string]struct{})},
	}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *DedupHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle passes the record on unless an identical warning was already handled.
func (h *DedupHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn && !h.seen.firstTime(h.recordKey(r)) {
		return nil
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *DedupHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(h.scope)
	for _, a := range attrs {
		sb.WriteString(" ")
		sb.WriteString(a.String())
	}
	return &DedupHandler{
		handler: h.handler.WithAttrs(attrs),
		scope:   sb.String(),
		seen:    h.seen,
	}
}

// WithGroup returns a new handler with the given group name.
func (h *DedupHandler) WithGroup(name string) slog.Handler {
	return &DedupHandler{
		handler: h.handler.WithGroup(name),
		scope:   h.scope + " [" + name + "]",
		seen:    h.seen,
	}
}

// recordKey identifies a record by level, message, scope and attributes.
// The timestamp is not part of the key.
func (h *DedupHandler) recordKey(r slog.Record) string {
	var sb strings.Builder
	sb.WriteString(r.Level.String())
	sb.WriteString("|")
	sb.WriteString(h.scope)
	sb.WriteString("|")
	sb.WriteString(r.Message)
	r.Attrs(func(a slog.Attr) bool {
		sb.WriteString("|")
		sb.WriteString(a.String())
		return true
	})
	return sb.String()
}

// NewLogger creates a new slog.Logger writing text records to w.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewDedupHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger creates a new slog.Logger that outputs JSON format.
// Useful for structured log aggregation in CI.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewDedupHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}

// Dispatch emits every diagnostic as one warning record.
// A nil logger falls back to slog.Default().
func Dispatch(logger *slog.Logger, diagnostics []model.Diagnostic) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, d := range diagnostics {
		logger.Warn(d.Message,
			"kind", string(d.Kind),
			"project", d.Project,
			"projectName", d.ProjectName,
			"configuration", d.Configuration,
		)
	}
}
