package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Level specifies the severity of a log event.
//
// The canonical levels carry the ranks used by the classic Python
// logging scheme (10..50 in steps of 10). The gap between ranks leaves
// room for external verbosity schemes to slot custom ranks between the
// canonical ones; the gate accepts any integer rank as a threshold.
type Level int

const (
	// DebugLevel is detailed information of interest when diagnosing problems.
	DebugLevel Level = 10

	// InfoLevel is confirmation that things are working as expected.
	InfoLevel Level = 20

	// WarningLevel indicates something unexpected, or a problem in the near future.
	WarningLevel Level = 30

	// ErrorLevel indicates a failure of some function.
	ErrorLevel Level = 40

	// CriticalLevel indicates a serious failure. Check failures are
	// reported at this level.
	CriticalLevel Level = 50
)

// ParseLevel resolves a severity name to its canonical level. It accepts
// the five canonical names plus the aliases WARN (for WARNING) and FATAL
// (for CRITICAL), case-insensitively. Unknown names fail with
// *UnknownLevelError.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "critical", "fatal":
		return CriticalLevel, nil
	default:
		return 0, &UnknownLevelError{Name: name}
	}
}

// LevelName returns the canonical name for a level. Ranks outside the
// five canonical levels fail with *UnknownLevelError.
func LevelName(level Level) (string, error) {
	switch level {
	case DebugLevel:
		return "DEBUG", nil
	case InfoLevel:
		return "INFO", nil
	case WarningLevel:
		return "WARNING", nil
	case ErrorLevel:
		return "ERROR", nil
	case CriticalLevel:
		return "CRITICAL", nil
	default:
		return "", &UnknownLevelError{Rank: level}
	}
}

// String returns the canonical name, or "LEVEL(n)" for non-canonical ranks.
func (l Level) String() string {
	name, err := LevelName(l)
	if err != nil {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return name
}

// Char returns the single-letter prefix tag for the level: the first
// character of the canonical name (D, I, W, E, C), or '?' for ranks
// outside the canonical five.
func (l Level) Char() byte {
	switch l {
	case DebugLevel:
		return 'D'
	case InfoLevel:
		return 'I'
	case WarningLevel:
		return 'W'
	case ErrorLevel:
		return 'E'
	case CriticalLevel:
		return 'C'
	default:
		return '?'
	}
}

// Set implements flag.Value. It accepts a canonical name, an alias, or a
// raw integer rank. Integer ranks are stored without validation so that
// external verbosity schemes with intermediate ranks keep working.
func (l *Level) Set(value string) error {
	if rank, err := strconv.Atoi(value); err == nil {
		*l = Level(rank)
		return nil
	}
	parsed, err := ParseLevel(value)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Type implements pflag.Value for cobra-style flag sets.
func (l Level) Type() string {
	return "level"
}

// MarshalText implements encoding.TextMarshaler. Canonical levels render
// as their name; other ranks render as their decimal value so arbitrary
// thresholds round-trip.
func (l Level) MarshalText() ([]byte, error) {
	if name, err := LevelName(l); err == nil {
		return []byte(name), nil
	}
	return []byte(strconv.Itoa(int(l))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same rules
// as Set.
func (l *Level) UnmarshalText(text []byte) error {
	return l.Set(string(text))
}
