package formatters

import (
	"regexp"
	"strconv"

	"github.com/willibrandon/glog/core"
)

// PrefixPattern matches the prefix produced by PrefixFormatter at the
// start of a line. The severity class also accepts F, the letter older
// glog implementations used for their top severity, so their output
// parses too. Group order: severity, month, day, hour, minute, second,
// microsecond, process_id, filename, line.
const PrefixPattern = `^(?P<severity>[DIWECF])` +
	`(?P<month>\d\d)(?P<day>\d\d)\s` +
	`(?P<hour>\d\d):(?P<minute>\d\d):(?P<second>\d\d)` +
	`\.(?P<microsecond>\d{6})\s+` +
	`(?P<process_id>-?\d+)\s` +
	`(?P<filename>[a-zA-Z<][\w._<>-]+):(?P<line>\d+)` +
	`\]\s`

// PrefixRegex is the compiled form of PrefixPattern.
var PrefixRegex = regexp.MustCompile(PrefixPattern)

// PrefixFields holds the decoded prefix of a rendered log line. The
// timestamp stays in its component form because the prefix carries no
// year.
type PrefixFields struct {
	Level       core.Level
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Microsecond int
	PID         int
	File        string
	Line        int
}

// ParsePrefix decodes the prefix of a rendered log line. It returns the
// decoded fields, the body following the prefix, and whether the line
// matched. Lines whose prefix does not match, including lines tagged
// with the '?' letter for non-canonical ranks, report ok=false.
func ParsePrefix(line string) (fields PrefixFields, body string, ok bool) {
	m := PrefixRegex.FindStringSubmatch(line)
	if m == nil {
		return PrefixFields{}, "", false
	}

	// Submatch order follows the group order documented on PrefixPattern.
	level, ok := levelForChar(m[1][0])
	if !ok {
		return PrefixFields{}, "", false
	}

	fields = PrefixFields{
		Level:       level,
		Month:       atoi(m[2]),
		Day:         atoi(m[3]),
		Hour:        atoi(m[4]),
		Minute:      atoi(m[5]),
		Second:      atoi(m[6]),
		Microsecond: atoi(m[7]),
		PID:         atoi(m[8]),
		File:        m[9],
		Line:        atoi(m[10]),
	}
	return fields, line[len(m[0]):], true
}

func levelForChar(c byte) (core.Level, bool) {
	switch c {
	case 'D':
		return core.DebugLevel, true
	case 'I':
		return core.InfoLevel, true
	case 'W':
		return core.WarningLevel, true
	case 'E':
		return core.ErrorLevel, true
	case 'C', 'F':
		return core.CriticalLevel, true
	default:
		return 0, false
	}
}

// atoi converts a digit run already validated by PrefixRegex.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
