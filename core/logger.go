// Package core provides the fundamental interfaces and types for glog.
package core

// Logger is the main logging interface providing leveled logging methods.
//
// The f-variants format their arguments with fmt.Sprintf; the plain
// variants format with fmt.Sprint. Formatting only happens once the
// event has passed the level gate.
type Logger interface {
	// Debug writes a debug-level log event.
	Debug(args ...any)

	// Debugf writes a formatted debug-level log event.
	Debugf(format string, args ...any)

	// Info writes an info-level log event.
	Info(args ...any)

	// Infof writes a formatted info-level log event.
	Infof(format string, args ...any)

	// Warning writes a warning-level log event.
	Warning(args ...any)

	// Warningf writes a formatted warning-level log event.
	Warningf(format string, args ...any)

	// Error writes an error-level log event.
	Error(args ...any)

	// Errorf writes a formatted error-level log event.
	Errorf(format string, args ...any)

	// Critical writes a critical-level log event.
	Critical(args ...any)

	// Criticalf writes a formatted critical-level log event.
	Criticalf(format string, args ...any)

	// Log writes a log event at the specified level.
	Log(level Level, args ...any)

	// Logf writes a formatted log event at the specified level.
	Logf(level Level, format string, args ...any)

	// LogDepth writes a log event at the specified level, attributing the
	// call site to the caller depth frames above the caller of LogDepth.
	LogDepth(depth int, level Level, args ...any)

	// LogDepthf is the formatted variant of LogDepth.
	LogDepthf(depth int, level Level, format string, args ...any)

	// LogAt writes a log event attributed to an already-resolved call
	// site. Bridges that carry their own caller information use this
	// instead of the depth-based variants.
	LogAt(file string, line int, level Level, args ...any)

	// IsEnabled reports whether events at the specified level would be emitted.
	IsEnabled(level Level) bool

	// Aliases matching the classic glog surface.

	// Warn writes a warning-level log event (alias for Warning).
	Warn(args ...any)

	// Warnf writes a formatted warning-level log event (alias for Warningf).
	Warnf(format string, args ...any)

	// Fatal writes a critical-level log event (alias for Critical).
	Fatal(args ...any)

	// Fatalf writes a formatted critical-level log event (alias for Criticalf).
	Fatalf(format string, args ...any)
}
