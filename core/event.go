package core

import "time"

// LogEvent represents a single log event with its prefix fields and body.
type LogEvent struct {
	// Timestamp is when the event occurred, in local time.
	Timestamp time.Time

	// Level is the severity of the event.
	Level Level

	// PID is the ID of the emitting process.
	PID int

	// File is the base name of the source file that produced the event,
	// or "???" when the call site could not be resolved.
	File string

	// Line is the source line that produced the event, or 0 when the
	// call site could not be resolved.
	Line int

	// Message is the fully rendered body. It is emitted verbatim;
	// embedded newlines are preserved.
	Message string
}
