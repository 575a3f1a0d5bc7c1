package glog

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/willibrandon/glog/core"
	"github.com/willibrandon/glog/sinks"
)

// config holds the configuration for building a logger.
type config struct {
	level       core.Level
	levelSwitch *LevelSwitch
	sinks       []core.LogEventSink
	pid         int
	callerSkip  int
	exitOnFatal bool
	exitFunc    func(int)
	err         error // First error encountered during configuration
}

func defaultConfig() *config {
	return &config{
		level:    core.InfoLevel,
		pid:      os.Getpid(),
		exitFunc: os.Exit,
	}
}

// Option is a functional option for configuring a logger.
type Option func(*config)

// WithLevel sets the minimum log level. Any integer rank works, so
// thresholds between the canonical levels are accepted.
func WithLevel(level core.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithLevelNamed sets the minimum log level from a severity name. The
// WARN and FATAL aliases work; an unknown name fails logger
// construction with *core.UnknownLevelError.
func WithLevelNamed(name string) Option {
	return func(c *config) {
		if c.err != nil {
			return // Don't process if already errored
		}
		level, err := core.ParseLevel(name)
		if err != nil {
			c.err = errors.Wrapf(err, "WithLevelNamed(%q)", name)
			return
		}
		c.level = level
	}
}

// WithLevelSwitch enables dynamic level control using the specified level switch.
// When a level switch is provided, it takes precedence over the static
// minimum level.
func WithLevelSwitch(levelSwitch *LevelSwitch) Option {
	return func(c *config) {
		c.levelSwitch = levelSwitch
	}
}

// WithSink adds a sink to the logger.
func WithSink(sink core.LogEventSink) Option {
	return func(c *config) {
		c.sinks = append(c.sinks, sink)
	}
}

// WithConsole adds a console sink writing to stderr. This is also the
// default when no sink is configured.
func WithConsole() Option {
	return WithSink(sinks.NewConsoleSink())
}

// WithConsoleTheme adds a console sink with a custom theme.
func WithConsoleTheme(theme *sinks.ConsoleTheme) Option {
	return WithSink(sinks.NewConsoleSinkWithTheme(theme))
}

// WithWriter adds a console sink that writes to w instead of stderr.
func WithWriter(w io.Writer) Option {
	return WithSink(sinks.NewConsoleSinkWithWriter(w))
}

// WithProcessID overrides the process ID stamped into each prefix.
// The default is os.Getpid(), captured once at construction.
func WithProcessID(pid int) Option {
	return func(c *config) {
		c.pid = pid
	}
}

// WithCallerSkip adds extra stack frames to skip when resolving call
// sites. Wrapper packages that forward to this logger use it so lines
// attribute to their own callers.
func WithCallerSkip(skip int) Option {
	return func(c *config) {
		c.callerSkip = skip
	}
}

// WithExitOnFatal makes the logger terminate the process with exit
// status 1 after emitting an event at CriticalLevel or above. Check
// failures are exempt: they panic with a *CheckError instead.
func WithExitOnFatal() Option {
	return func(c *config) {
		c.exitOnFatal = true
	}
}

// WithExitFunc replaces the function called by WithExitOnFatal.
// Intended for tests.
func WithExitFunc(fn func(int)) Option {
	return func(c *config) {
		if fn != nil {
			c.exitFunc = fn
		}
	}
}
