package glog

import (
	"fmt"
	"time"

	"github.com/willibrandon/glog/core"
	"github.com/willibrandon/glog/internal/caller"
	"github.com/willibrandon/glog/selflog"
	"github.com/willibrandon/glog/sinks"
)

// Logger emits leveled log events in the glog line format. Loggers are
// immutable once built aside from their level switch; methods are safe
// for concurrent use.
type Logger struct {
	levelSwitch *LevelSwitch
	sinks       []core.LogEventSink
	pid         int
	callerSkip  int
	exitOnFatal bool
	exitFunc    func(int)
}

// New creates a logger from the given options. Without options it logs
// to stderr at InfoLevel, matching the classic glog defaults. Option
// errors are reported through selflog and construction continues with
// whatever remains usable.
func New(options ...Option) *Logger {
	cfg := defaultConfig()
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.err != nil && selflog.IsEnabled() {
		selflog.Printf("[config] invalid logger option: %v", cfg.err)
	}

	if len(cfg.sinks) == 0 {
		cfg.sinks = append(cfg.sinks, sinks.NewConsoleSink())
	}

	levelSwitch := cfg.levelSwitch
	if levelSwitch == nil {
		levelSwitch = NewLevelSwitch(cfg.level)
	}

	return &Logger{
		levelSwitch: levelSwitch,
		sinks:       cfg.sinks,
		pid:         cfg.pid,
		callerSkip:  cfg.callerSkip,
		exitOnFatal: cfg.exitOnFatal,
		exitFunc:    cfg.exitFunc,
	}
}

// IsEnabled reports whether events at the specified level would be emitted.
func (l *Logger) IsEnabled(level core.Level) bool {
	return l.levelSwitch.IsEnabled(level)
}

// Level returns the current minimum level.
func (l *Logger) Level() core.Level {
	return l.levelSwitch.Level()
}

// LevelSwitch returns the switch gating this logger, for external control.
func (l *Logger) LevelSwitch() *LevelSwitch {
	return l.levelSwitch
}

// SetLevel updates the minimum level and notes the change with a debug
// event, so a raised threshold leaves a trace of who raised it.
func (l *Logger) SetLevel(level core.Level) {
	l.setLevel(1, level)
}

// SetLevelNamed updates the minimum level from a severity name,
// accepting the WARN and FATAL aliases. Unknown names leave the level
// unchanged and fail with *core.UnknownLevelError.
func (l *Logger) SetLevelNamed(name string) error {
	level, err := core.ParseLevel(name)
	if err != nil {
		return err
	}
	l.setLevel(1, level)
	return nil
}

func (l *Logger) setLevel(depth int, level core.Level) {
	l.levelSwitch.SetLevel(level)
	l.logDepth(depth+1, core.DebugLevel, []any{"Log level set to ", level})
}

// Debug writes a debug-level log event.
func (l *Logger) Debug(args ...any) {
	l.logDepth(1, core.DebugLevel, args)
}

// Debugf writes a formatted debug-level log event.
func (l *Logger) Debugf(format string, args ...any) {
	l.logDepthf(1, core.DebugLevel, format, args)
}

// Info writes an info-level log event.
func (l *Logger) Info(args ...any) {
	l.logDepth(1, core.InfoLevel, args)
}

// Infof writes a formatted info-level log event.
func (l *Logger) Infof(format string, args ...any) {
	l.logDepthf(1, core.InfoLevel, format, args)
}

// Warning writes a warning-level log event.
func (l *Logger) Warning(args ...any) {
	l.logDepth(1, core.WarningLevel, args)
}

// Warningf writes a formatted warning-level log event.
func (l *Logger) Warningf(format string, args ...any) {
	l.logDepthf(1, core.WarningLevel, format, args)
}

// Warn writes a warning-level log event (alias for Warning).
func (l *Logger) Warn(args ...any) {
	l.logDepth(1, core.WarningLevel, args)
}

// Warnf writes a formatted warning-level log event (alias for Warningf).
func (l *Logger) Warnf(format string, args ...any) {
	l.logDepthf(1, core.WarningLevel, format, args)
}

// Error writes an error-level log event.
func (l *Logger) Error(args ...any) {
	l.logDepth(1, core.ErrorLevel, args)
}

// Errorf writes a formatted error-level log event.
func (l *Logger) Errorf(format string, args ...any) {
	l.logDepthf(1, core.ErrorLevel, format, args)
}

// Critical writes a critical-level log event.
func (l *Logger) Critical(args ...any) {
	l.logDepth(1, core.CriticalLevel, args)
}

// Criticalf writes a formatted critical-level log event.
func (l *Logger) Criticalf(format string, args ...any) {
	l.logDepthf(1, core.CriticalLevel, format, args)
}

// Fatal writes a critical-level log event (alias for Critical). The
// process only exits when the logger was built WithExitOnFatal.
func (l *Logger) Fatal(args ...any) {
	l.logDepth(1, core.CriticalLevel, args)
}

// Fatalf writes a formatted critical-level log event (alias for Criticalf).
func (l *Logger) Fatalf(format string, args ...any) {
	l.logDepthf(1, core.CriticalLevel, format, args)
}

// Log writes a log event at the specified level.
func (l *Logger) Log(level core.Level, args ...any) {
	l.logDepth(1, level, args)
}

// Logf writes a formatted log event at the specified level.
func (l *Logger) Logf(level core.Level, format string, args ...any) {
	l.logDepthf(1, level, format, args)
}

// LogDepth writes a log event at the specified level, attributing the
// call site to the caller depth frames above the caller of LogDepth.
// depth 0 reports the immediate caller.
func (l *Logger) LogDepth(depth int, level core.Level, args ...any) {
	l.logDepth(depth+1, level, args)
}

// LogDepthf is the formatted variant of LogDepth.
func (l *Logger) LogDepthf(depth int, level core.Level, format string, args ...any) {
	l.logDepthf(depth+1, level, format, args)
}

// LogAt writes a log event attributed to an already-resolved call site.
// Bridges that carry their own caller information use this instead of
// the depth-based variants.
func (l *Logger) LogAt(file string, line int, level core.Level, args ...any) {
	if !l.IsEnabled(level) {
		return
	}
	l.writeAt(file, line, level, fmt.Sprint(args...))
	l.maybeExit(level)
}

// logDepth renders args with fmt.Sprint and emits, attributing the call
// site depth frames above logDepth's caller. Rendering only happens
// once the level gate has passed.
func (l *Logger) logDepth(depth int, level core.Level, args []any) {
	if !l.IsEnabled(level) {
		return
	}
	l.write(depth+1, level, fmt.Sprint(args...))
	l.maybeExit(level)
}

// logDepthf is the fmt.Sprintf variant of logDepth.
func (l *Logger) logDepthf(depth int, level core.Level, format string, args []any) {
	if !l.IsEnabled(level) {
		return
	}
	l.write(depth+1, level, fmt.Sprintf(format, args...))
	l.maybeExit(level)
}

// write builds the event and hands it to every sink. depth counts
// frames above write's caller to the call site being attributed.
func (l *Logger) write(depth int, level core.Level, message string) {
	file, line := caller.Lookup(depth + 1 + l.callerSkip)
	l.writeAt(file, line, level, message)
}

// writeAt emits an event for an already-resolved call site.
func (l *Logger) writeAt(file string, line int, level core.Level, message string) {
	event := &core.LogEvent{
		Timestamp: time.Now(),
		Level:     level,
		PID:       l.pid,
		File:      file,
		Line:      line,
		Message:   message,
	}
	for _, sink := range l.sinks {
		sink.Emit(event)
	}
}

func (l *Logger) maybeExit(level core.Level) {
	if l.exitOnFatal && level >= core.CriticalLevel {
		l.exitFunc(1)
	}
}

// Close closes every sink, returning the first error encountered.
func (l *Logger) Close() error {
	var firstErr error
	for _, sink := range l.sinks {
		if err := sink.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
