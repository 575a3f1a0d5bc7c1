package sinks

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/willibrandon/glog/core"
)

// Color represents an ANSI color code.
type Color string

const (
	// Basic colors
	ColorReset Color = "\033[0m"
	ColorBold  Color = "\033[1m"
	ColorDim   Color = "\033[2m"

	// Foreground colors
	ColorBlack   Color = "\033[30m"
	ColorRed     Color = "\033[31m"
	ColorGreen   Color = "\033[32m"
	ColorYellow  Color = "\033[33m"
	ColorBlue    Color = "\033[34m"
	ColorMagenta Color = "\033[35m"
	ColorCyan    Color = "\033[36m"
	ColorWhite   Color = "\033[37m"

	// Bright foreground colors
	ColorBrightBlack   Color = "\033[90m"
	ColorBrightRed     Color = "\033[91m"
	ColorBrightGreen   Color = "\033[92m"
	ColorBrightYellow  Color = "\033[93m"
	ColorBrightBlue    Color = "\033[94m"
	ColorBrightMagenta Color = "\033[95m"
	ColorBrightCyan    Color = "\033[96m"
	ColorBrightWhite   Color = "\033[97m"
)

// Ansi256Color creates an ANSI 256-color code.
func Ansi256Color(n int) Color {
	return Color(fmt.Sprintf("\033[38;5;%dm", n))
}

// ConsoleTheme defines the per-level line colors for console output.
type ConsoleTheme struct {
	DebugColor    Color
	InfoColor     Color
	WarningColor  Color
	ErrorColor    Color
	CriticalColor Color
}

// DefaultTheme returns the default console theme: info lines stay
// uncolored, problems stand out.
func DefaultTheme() *ConsoleTheme {
	return &ConsoleTheme{
		DebugColor:    ColorBrightBlack,
		InfoColor:     "",
		WarningColor:  ColorYellow,
		ErrorColor:    ColorRed,
		CriticalColor: ColorBrightRed + ColorBold,
	}
}

// DimDebugTheme returns a theme that dims debug chatter and otherwise
// matches the default.
func DimDebugTheme() *ConsoleTheme {
	return &ConsoleTheme{
		DebugColor:    ColorDim,
		InfoColor:     "",
		WarningColor:  ColorYellow,
		ErrorColor:    ColorRed,
		CriticalColor: ColorRed + ColorBold,
	}
}

// NoColorTheme returns a theme without any colors.
func NoColorTheme() *ConsoleTheme {
	return &ConsoleTheme{}
}

// GetLevelColor returns the color for a specific log level.
// Non-canonical ranks take the color of the highest canonical level at
// or below them, so promoted thresholds still color sensibly.
func (t *ConsoleTheme) GetLevelColor(level core.Level) Color {
	switch {
	case level >= core.CriticalLevel:
		return t.CriticalColor
	case level >= core.ErrorLevel:
		return t.ErrorColor
	case level >= core.WarningLevel:
		return t.WarningColor
	case level >= core.InfoLevel:
		return t.InfoColor
	default:
		return t.DebugColor
	}
}

// shouldUseColor determines if color output should be used.
func shouldUseColor(w io.Writer) bool {
	// Check GLOG_FORCE_COLOR first
	if forceColor := os.Getenv("GLOG_FORCE_COLOR"); forceColor != "" {
		switch strings.ToLower(forceColor) {
		case "none", "0", "false", "off":
			return false
		case "true", "1", "on":
			return true
		}
	}

	// Check if NO_COLOR env var is set
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	// Only real terminals get color
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	// On Windows, modern terminals handle ANSI; otherwise stay plain
	if runtime.GOOS == "windows" {
		if _, ok := os.LookupEnv("WT_SESSION"); ok {
			return true
		}
		if _, ok := os.LookupEnv("ConEmuPID"); ok {
			return true
		}
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
