package glog

import (
	"log/slog"

	"github.com/willibrandon/glog/internal/handler"
)

// NewSlogLogger creates a slog.Logger backed by a new glog logger.
func NewSlogLogger(options ...Option) *slog.Logger {
	return slog.New(handler.NewSlogHandler(New(options...)))
}

// AsSlogHandler returns this logger as an slog.Handler.
func (l *Logger) AsSlogHandler() slog.Handler {
	return handler.NewSlogHandler(l)
}
