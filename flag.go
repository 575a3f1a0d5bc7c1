package glog

import (
	"flag"

	"github.com/willibrandon/glog/core"
)

// verbosity backs the -verbosity and -v flags. core.Level implements
// flag.Value, so names, the WARN/FATAL aliases, and raw integer ranks
// all parse.
var verbosity = core.InfoLevel

// RegisterFlags defines the -verbosity flag and its -v shorthand on fs,
// or on flag.CommandLine when fs is nil. The parsed value takes effect
// when Init is called after flag parsing.
func RegisterFlags(fs *flag.FlagSet) {
	if fs == nil {
		fs = flag.CommandLine
	}
	fs.Var(&verbosity, "verbosity", "Logging verbosity.")
	fs.Var(&verbosity, "v", "Logging verbosity (shorthand).")
}

// Init applies the parsed -verbosity value to the default logger. Like
// SetLevel it leaves a "Log level set to ..." trace at debug.
func Init() {
	Default().setLevel(1, verbosity)
}
