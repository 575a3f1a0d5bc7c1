package sinks

import (
	"io"
	"os"
	"sync"

	"github.com/willibrandon/glog/core"
	"github.com/willibrandon/glog/formatters"
	"github.com/willibrandon/glog/selflog"
)

// ConsoleSink writes rendered log lines to a terminal or other writer.
// Events are rendered in the glog prefix layout and written with a
// single Write call each, so concurrent loggers cannot interleave
// partial lines.
type ConsoleSink struct {
	output   io.Writer
	mu       sync.Mutex
	theme    *ConsoleTheme
	useColor bool
	buf      []byte
}

// NewConsoleSink creates a console sink that writes to stderr, the
// traditional glog destination.
func NewConsoleSink() *ConsoleSink {
	// Enable VT processing on Windows for ANSI colors
	enableWindowsVTProcessing()

	return &ConsoleSink{
		output:   os.Stderr,
		theme:    DefaultTheme(),
		useColor: shouldUseColor(os.Stderr),
	}
}

// NewConsoleSinkWithWriter creates a console sink with a custom writer.
// Color is only used when the writer is a terminal.
func NewConsoleSinkWithWriter(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		output:   w,
		theme:    DefaultTheme(),
		useColor: shouldUseColor(w),
	}
}

// NewConsoleSinkWithTheme creates a console sink with a custom theme,
// writing to stderr.
func NewConsoleSinkWithTheme(theme *ConsoleTheme) *ConsoleSink {
	// Enable VT processing on Windows for ANSI colors
	enableWindowsVTProcessing()

	return &ConsoleSink{
		output:   os.Stderr,
		theme:    theme,
		useColor: shouldUseColor(os.Stderr),
	}
}

// SetOutput redirects the sink to a different writer. Color detection
// is rerun for the new destination.
func (cs *ConsoleSink) SetOutput(w io.Writer) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.output = w
	cs.useColor = shouldUseColor(w)
}

// SetTheme updates the console theme.
func (cs *ConsoleSink) SetTheme(theme *ConsoleTheme) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.theme = theme
}

// SetUseColor enables or disables color output.
func (cs *ConsoleSink) SetUseColor(useColor bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.useColor = useColor
}

// Emit writes the log event to the console. The whole line takes the
// level's color. A trailing newline is added only when the body does
// not already end with one.
func (cs *ConsoleSink) Emit(event *core.LogEvent) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	buf := cs.buf[:0]

	color := Color("")
	if cs.useColor && cs.theme != nil {
		color = cs.theme.GetLevelColor(event.Level)
	}

	// The color reset goes before the terminating newline so a colored
	// line never bleeds into the next.
	body := event.Message
	if n := len(body); n > 0 && body[n-1] == '\n' {
		body = body[:n-1]
	}

	if color != "" {
		buf = append(buf, string(color)...)
	}
	buf = formatters.AppendPrefix(buf, event)
	buf = append(buf, body...)
	if color != "" {
		buf = append(buf, string(ColorReset)...)
	}
	buf = append(buf, '\n')
	cs.buf = buf

	if _, err := cs.output.Write(buf); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[console] write failed: %v", err)
		}
	}
}

// Close releases any resources held by the sink.
func (cs *ConsoleSink) Close() error {
	// Nothing to close for console sink
	return nil
}
