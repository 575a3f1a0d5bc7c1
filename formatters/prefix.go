// Package formatters renders log events into the glog line layout.
package formatters

import (
	"strconv"

	"github.com/willibrandon/glog/core"
)

// PrefixFormatter renders events in the classic glog layout:
//
//	I0924 22:19:15.123456 19552 filename.go:87] Log message blah blah
//
// The prefix is the level letter, the local-time timestamp as
// MMDD HH:MM:SS.ffffff with microsecond precision, the process ID, and
// the source location, terminated by "] ". The body follows verbatim;
// embedded newlines are preserved.
type PrefixFormatter struct{}

// NewPrefixFormatter creates a formatter using the glog line layout.
func NewPrefixFormatter() *PrefixFormatter {
	return &PrefixFormatter{}
}

// Format renders the event as a single string.
func (f *PrefixFormatter) Format(event *core.LogEvent) string {
	buf := make([]byte, 0, 48+len(event.Message))
	buf = f.AppendFormat(buf, event)
	return string(buf)
}

// AppendFormat appends the rendered event to buf and returns the
// extended buffer.
func (f *PrefixFormatter) AppendFormat(buf []byte, event *core.LogEvent) []byte {
	buf = AppendPrefix(buf, event)
	buf = append(buf, event.Message...)
	return buf
}

// AppendPrefix appends the event's prefix, through the closing "] ", to
// buf and returns the extended buffer. It does not allocate beyond
// growing buf.
func AppendPrefix(buf []byte, event *core.LogEvent) []byte {
	buf = append(buf, event.Level.Char())
	buf = event.Timestamp.AppendFormat(buf, "0102 15:04:05.000000")
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(event.PID), 10)
	buf = append(buf, ' ')
	if event.File == "" {
		buf = append(buf, "???"...)
	} else {
		buf = append(buf, event.File...)
	}
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(event.Line), 10)
	buf = append(buf, ']', ' ')
	return buf
}
