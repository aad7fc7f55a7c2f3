package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type conditionalSourceHandler struct {
	handler          slog.Handler
	showSourceLevels map[slog.Level]bool
}

// NewConditionalSourceHandler wraps a handler to show source location only
// for the given levels. The wrapped handler must have AddSource disabled;
// this wrapper adds the source attribute itself where wanted.
func NewConditionalSourceHandler(handler slog.Handler, showSourceForLevels ...slog.Level) slog.Handler {
	levelMap := make(map[slog.Level]bool)
	for _, level := range showSourceForLevels {
		levelMap[level] = true
	}
	return &conditionalSourceHandler{
		handler:          handler,
		showSourceLevels: levelMap,
	}
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.showSourceLevels[r.Level] {
		// Skip this frame plus the slog internal frame.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		fs := runtime.CallersFrames(pcs[:])
		f, _ := fs.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: f.Function,
				File:     f.File,
				Line:     f.Line,
			}),
		})
	}

	return h.handler.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{
		handler:          h.handler.WithAttrs(attrs),
		showSourceLevels: h.showSourceLevels,
	}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{
		handler:          h.handler.WithGroup(name),
		showSourceLevels: h.showSourceLevels,
	}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
