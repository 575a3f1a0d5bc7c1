// Package caller resolves log call sites to a base file name and line.
package caller

import (
	"runtime"
	"strings"
)

// Lookup returns the base file name and line of the caller skip frames
// above the caller of Lookup; skip=0 reports Lookup's own caller. When
// the stack cannot be resolved it returns "???" and line 0.
func Lookup(skip int) (file string, line int) {
	_, path, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???", 0
	}
	return Basename(path), line
}

// Basename strips the directory from a source path. It tolerates both
// separators so paths recorded on Windows builds resolve too.
func Basename(path string) string {
	if idx := strings.LastIndexAny(path, `/\`); idx >= 0 {
		path = path[idx+1:]
	}
	if path == "" {
		return "???"
	}
	return path
}
