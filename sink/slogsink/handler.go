package slogsink

import (
	"context"
	"log/slog"

	"github.com/Philipp01105/kvlog/core"
	"github.com/Philipp01105/kvlog/sink"
)

// MessageKey is the field that carries the slog record message
const MessageKey = "message"

// Handler implements slog.Handler on top of a sink.Sink. Each record
// becomes one line: message first, then handler attributes, then record
// attributes. Groups are flattened into dotted keys.
type Handler struct {
	sink  sink.Sink
	level core.Level
	attrs []core.Field
	group string
}

// NewHandler creates a handler that emits records at or above level to s
func NewHandler(s sink.Sink, level core.Level) *Handler {
	if s == nil {
		s = sink.Nop
	}
	return &Handler{sink: s, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return CoreLevel(level) >= h.level
}

// Handle renders the record and passes it to the sink
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]core.Field, 0, 1+len(h.attrs)+record.NumAttrs())
	if record.Message != "" {
		fields = append(fields, core.NewField(MessageKey, "", record.Message))
	}
	fields = append(fields, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, h.group, a)
		return true
	})

	format, args := core.Render(fields, nil)
	return h.sink.Log(CoreLevel(record.Level), format, args...)
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := make([]core.Field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(next, h.attrs)
	for _, a := range attrs {
		next = appendAttr(next, h.group, a)
	}
	return &Handler{sink: h.sink, level: h.level, attrs: next, group: h.group}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{sink: h.sink, level: h.level, attrs: h.attrs, group: qualify(h.group, name)}
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

// appendAttr converts a into fields. Empty attributes are skipped and
// groups with an empty key are inlined.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = qualify(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, prefix, ga)
		}
		return fields
	}

	return append(fields, core.NewField(qualify(group, a.Key), "", a.Value.Any()))
}
