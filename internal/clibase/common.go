// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"

	"phagetools/internal/logging"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Common holds CLI fields shared by aragorn-query and prodigal-fetch.
type Common struct {
	ConfigFile string
	LogLevel   string
	Output     string
	Quiet      bool
	Version    bool
	Help       bool
	Examples   bool
}

// Register wires shared flags onto fs. defaultOutput seeds -o/--output.
func Register(fs *flag.FlagSet, c *Common, defaultOutput string) {
	fs.StringVar(&c.ConfigFile, "config", "", "YAML config file (default: ./phagetools.yaml if present)")
	fs.StringVar(&c.LogLevel, "log-level", "", "log level: debug | info | warn | error [info]")
	fs.StringVar(&c.Output, "output", defaultOutput, "output format")
	fs.StringVar(&c.Output, "o", defaultOutput, "alias of --output")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Help, "h", false, "show this help [false]")
	fs.BoolVar(&c.Help, "help", false, "show this help [false]")
	fs.BoolVar(&c.Examples, "examples", false, "show quickstart examples and exit [false]")
}

// Finish maps the help/examples switches onto the sentinel errors apps expect.
func Finish(c *Common) error {
	if c.Examples {
		return ErrPrintedAndExitOK
	}
	if c.Help {
		return flag.ErrHelp
	}
	return nil
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if c.LogLevel != "" {
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}
