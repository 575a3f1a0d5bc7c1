// Package handler bridges go-logr loggers onto glog.
package handler

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/willibrandon/glog/core"
)

// LogrSink implements logr.LogSink on top of a glog logger. Key/value
// pairs render as trailing " key=value" text, so output stays line
// oriented.
type LogrSink struct {
	logger    core.Logger
	name      string
	values    []any
	callDepth int
}

var _ logr.LogSink = (*LogrSink)(nil)

// NewLogrSink creates a logr.LogSink that writes through the provided logger.
func NewLogrSink(logger core.Logger) *LogrSink {
	return &LogrSink{logger: logger}
}

// Init receives runtime information about the logr library.
func (s *LogrSink) Init(info logr.RuntimeInfo) {
	s.callDepth = info.CallDepth
}

// Enabled tests whether this sink accepts the given V-level.
func (s *LogrSink) Enabled(level int) bool {
	return s.logger.IsEnabled(logrLevel(level))
}

// Info logs a non-error message with the given key/value pairs.
func (s *LogrSink) Info(level int, msg string, keysAndValues ...any) {
	s.logger.LogDepth(s.callDepth+1, logrLevel(level), s.render(msg, keysAndValues))
}

// Error logs an error message. The error itself renders as a trailing
// error=... pair.
func (s *LogrSink) Error(err error, msg string, keysAndValues ...any) {
	text := s.render(msg, keysAndValues)
	if err != nil {
		text += " error=" + err.Error()
	}
	s.logger.LogDepth(s.callDepth+1, core.ErrorLevel, text)
}

// WithValues returns a sink carrying additional key/value pairs.
func (s *LogrSink) WithValues(keysAndValues ...any) logr.LogSink {
	combined := make([]any, 0, len(s.values)+len(keysAndValues))
	combined = append(combined, s.values...)
	combined = append(combined, keysAndValues...)

	clone := *s
	clone.values = combined
	return &clone
}

// WithName returns a sink with the given name element appended.
func (s *LogrSink) WithName(name string) logr.LogSink {
	clone := *s
	if s.name == "" {
		clone.name = name
	} else {
		clone.name = s.name + "." + name
	}
	return &clone
}

func (s *LogrSink) render(msg string, keysAndValues []any) string {
	var b strings.Builder
	b.WriteString(msg)
	if s.name != "" {
		b.WriteString(" logger=")
		b.WriteString(s.name)
	}
	appendPairs(&b, s.values)
	appendPairs(&b, keysAndValues)
	return b.String()
}

// appendPairs renders key/value pairs as " key=value" text. An odd
// trailing key gets a <nil> value, matching what logr tooling shows.
func appendPairs(b *strings.Builder, pairs []any) {
	for i := 0; i < len(pairs); i += 2 {
		b.WriteByte(' ')
		fmt.Fprintf(b, "%v=", pairs[i])
		if i+1 < len(pairs) {
			fmt.Fprintf(b, "%v", pairs[i+1])
		} else {
			b.WriteString("<nil>")
		}
	}
}

// logrLevel maps logr V-levels: V(0) is routine output, anything more
// verbose lands at debug.
func logrLevel(level int) core.Level {
	if level <= 0 {
		return core.InfoLevel
	}
	return core.DebugLevel
}
