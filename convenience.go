package glog

import (
	"sync/atomic"

	"github.com/willibrandon/glog/core"
)

// The package-level functions log through a process-wide default
// logger, so small programs can use glog without wiring anything:
//
//	glog.Info("starting up")
//	glog.Warningf("%d retries left", n)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// Default returns the process-wide default logger.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide default logger. A nil logger is
// ignored.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// SetLevel updates the default logger's minimum level.
func SetLevel(level core.Level) {
	Default().setLevel(1, level)
}

// SetLevelNamed updates the default logger's minimum level from a
// severity name, accepting the WARN and FATAL aliases.
func SetLevelNamed(name string) error {
	level, err := core.ParseLevel(name)
	if err != nil {
		return err
	}
	Default().setLevel(1, level)
	return nil
}

// GetLevel returns the default logger's minimum level.
func GetLevel() core.Level {
	return Default().Level()
}

// IsEnabled reports whether the default logger would emit events at the
// specified level.
func IsEnabled(level core.Level) bool {
	return Default().IsEnabled(level)
}

// Debug writes a debug-level log event to the default logger.
func Debug(args ...any) {
	Default().logDepth(1, core.DebugLevel, args)
}

// Debugf writes a formatted debug-level log event to the default logger.
func Debugf(format string, args ...any) {
	Default().logDepthf(1, core.DebugLevel, format, args)
}

// Info writes an info-level log event to the default logger.
func Info(args ...any) {
	Default().logDepth(1, core.InfoLevel, args)
}

// Infof writes a formatted info-level log event to the default logger.
func Infof(format string, args ...any) {
	Default().logDepthf(1, core.InfoLevel, format, args)
}

// Warning writes a warning-level log event to the default logger.
func Warning(args ...any) {
	Default().logDepth(1, core.WarningLevel, args)
}

// Warningf writes a formatted warning-level log event to the default logger.
func Warningf(format string, args ...any) {
	Default().logDepthf(1, core.WarningLevel, format, args)
}

// Warn writes a warning-level log event (alias for Warning).
func Warn(args ...any) {
	Default().logDepth(1, core.WarningLevel, args)
}

// Warnf writes a formatted warning-level log event (alias for Warningf).
func Warnf(format string, args ...any) {
	Default().logDepthf(1, core.WarningLevel, format, args)
}

// Error writes an error-level log event to the default logger.
func Error(args ...any) {
	Default().logDepth(1, core.ErrorLevel, args)
}

// Errorf writes a formatted error-level log event to the default logger.
func Errorf(format string, args ...any) {
	Default().logDepthf(1, core.ErrorLevel, format, args)
}

// Critical writes a critical-level log event to the default logger.
func Critical(args ...any) {
	Default().logDepth(1, core.CriticalLevel, args)
}

// Criticalf writes a formatted critical-level log event to the default logger.
func Criticalf(format string, args ...any) {
	Default().logDepthf(1, core.CriticalLevel, format, args)
}

// Fatal writes a critical-level log event (alias for Critical). The
// process only exits when the default logger was built WithExitOnFatal.
func Fatal(args ...any) {
	Default().logDepth(1, core.CriticalLevel, args)
}

// Fatalf writes a formatted critical-level log event (alias for Criticalf).
func Fatalf(format string, args ...any) {
	Default().logDepthf(1, core.CriticalLevel, format, args)
}

// Log writes a log event at the specified level to the default logger.
func Log(level core.Level, args ...any) {
	Default().logDepth(1, level, args)
}

// Logf writes a formatted log event at the specified level to the
// default logger.
func Logf(level core.Level, format string, args ...any) {
	Default().logDepthf(1, level, format, args)
}
