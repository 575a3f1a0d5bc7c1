// Package configuration builds loggers from TOML files, so deployments
// can adjust verbosity and output without recompiling.
package configuration

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/willibrandon/glog"
	"github.com/willibrandon/glog/core"
	"github.com/willibrandon/glog/selflog"
	"github.com/willibrandon/glog/sinks"
)

// Config is the TOML configuration for a logger.
//
//	level = "warning"     # severity name, alias, or integer rank
//	color = "auto"        # auto, always, or never; console outputs only
//	output = "stderr"     # stderr, stdout, or a file path
//	exit_on_fatal = false
type Config struct {
	Level       string `toml:"level"`
	Color       string `toml:"color"`
	Output      string `toml:"output"`
	ExitOnFatal bool   `toml:"exit_on_fatal"`
}

// Load reads a Config from a TOML file.
func Load(path string) (*Config, error) {
	var config Config
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	warnUndecoded(md)
	return &config, nil
}

// LoadReader reads a Config from TOML data.
func LoadReader(r io.Reader) (*Config, error) {
	var config Config
	md, err := toml.NewDecoder(r).Decode(&config)
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	warnUndecoded(md)
	return &config, nil
}

func warnUndecoded(md toml.MetaData) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 && selflog.IsEnabled() {
		selflog.Printf("[configuration] unrecognized keys: %v", undecoded)
	}
}

// Options translates the configuration into logger options. An invalid
// level fails with the parse error; an unrecognized color mode falls
// back to auto-detection with a selflog warning.
func (c *Config) Options() ([]glog.Option, error) {
	var options []glog.Option

	if c.Level != "" {
		var level core.Level
		if err := level.Set(c.Level); err != nil {
			return nil, errors.Wrapf(err, "config level %q", c.Level)
		}
		options = append(options, glog.WithLevel(level))
	}

	sink, err := c.buildSink()
	if err != nil {
		return nil, err
	}
	options = append(options, glog.WithSink(sink))

	if c.ExitOnFatal {
		options = append(options, glog.WithExitOnFatal())
	}

	return options, nil
}

func (c *Config) buildSink() (core.LogEventSink, error) {
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		if selflog.IsEnabled() {
			selflog.Printf("[configuration] unknown color mode %q, using auto", c.Color)
		}
	}

	var sink *sinks.ConsoleSink
	switch c.Output {
	case "", "stderr":
		sink = sinks.NewConsoleSink()
	case "stdout":
		sink = sinks.NewConsoleSinkWithWriter(os.Stdout)
	default:
		// Anything else is a file path. The file sink owns the handle
		// and never writes color.
		fileSink, err := sinks.NewFileSink(c.Output)
		if err != nil {
			return nil, errors.Wrapf(err, "config output %q", c.Output)
		}
		if c.Color == "always" && selflog.IsEnabled() {
			selflog.Printf("[configuration] color ignored for file output %q", c.Output)
		}
		return fileSink, nil
	}

	switch c.Color {
	case "always":
		sink.SetUseColor(true)
	case "never":
		sink.SetUseColor(false)
	}

	return sink, nil
}

// CreateLogger loads a TOML file and builds a logger from it. This is
// the main entry point for configuration-based logger creation.
func CreateLogger(path string) (*glog.Logger, error) {
	config, err := Load(path)
	if err != nil {
		return nil, err
	}
	options, err := config.Options()
	if err != nil {
		return nil, err
	}
	return glog.New(options...), nil
}
