// Package handler adapts standard library log/slog records onto glog.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/willibrandon/glog/core"
	"github.com/willibrandon/glog/internal/caller"
)

// SlogHandler implements slog.Handler backed by a glog logger. Attrs
// and groups render as trailing " key=value" text, so output stays
// line oriented.
type SlogHandler struct {
	logger core.Logger
	attrs  []slog.Attr
	groups []string
}

var _ slog.Handler = (*SlogHandler)(nil)

// NewSlogHandler creates a slog.Handler that writes through the provided logger.
func NewSlogHandler(logger core.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// Enabled reports whether records at the given level would be emitted.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.IsEnabled(slogLevel(level))
}

// Handle renders the record and its attributes into a single line. The
// record's PC carries the user's call site, so the prefix attributes
// to their code rather than to slog internals.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)

	prefix := h.groupPrefix()
	for _, attr := range h.attrs {
		appendAttr(&b, prefix, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		appendAttr(&b, prefix, attr)
		return true
	})

	level := slogLevel(record.Level)
	if record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			h.logger.LogAt(caller.Basename(frame.File), frame.Line, level, b.String())
			return nil
		}
	}
	h.logger.Log(level, b.String())
	return nil
}

// WithAttrs returns a handler whose attributes are the receiver's
// attributes followed by attrs.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	return &SlogHandler{
		logger: h.logger,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

// WithGroup returns a handler with the given group appended to the
// receiver's existing groups.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name
	return &SlogHandler{
		logger: h.logger,
		attrs:  h.attrs,
		groups: newGroups,
	}
}

func (h *SlogHandler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func appendAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(attr.Key)
	b.WriteByte('=')
	fmt.Fprintf(b, "%v", attr.Value.Resolve().Any())
}

// slogLevel converts slog levels to glog severities.
func slogLevel(level slog.Level) core.Level {
	switch {
	case level <= slog.LevelDebug:
		return core.DebugLevel
	case level <= slog.LevelInfo:
		return core.InfoLevel
	case level <= slog.LevelWarn:
		return core.WarningLevel
	case level <= slog.LevelError:
		return core.ErrorLevel
	default:
		return core.CriticalLevel
	}
}

// LevelToSlog converts glog severities to slog levels. Ranks between
// the canonical severities map to the nearest level below.
func LevelToSlog(level core.Level) slog.Level {
	switch {
	case level < core.InfoLevel:
		return slog.LevelDebug
	case level < core.WarningLevel:
		return slog.LevelInfo
	case level < core.ErrorLevel:
		return slog.LevelWarn
	case level < core.CriticalLevel:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}
