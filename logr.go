package glog

import (
	"github.com/go-logr/logr"

	"github.com/willibrandon/glog/handler"
)

// NewLogrLogger creates a logr.Logger backed by a new glog logger.
func NewLogrLogger(options ...Option) logr.Logger {
	return logr.New(handler.NewLogrSink(New(options...)))
}

// AsLogrSink returns this logger as a logr.LogSink.
func (l *Logger) AsLogrSink() logr.LogSink {
	return handler.NewLogrSink(l)
}
