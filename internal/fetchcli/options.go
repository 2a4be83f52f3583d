// internal/fetchcli/options.go
package fetchcli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"phagetools/internal/clibase"
	"phagetools/internal/cliutil"
	"phagetools/internal/output"
	"phagetools/internal/prodigal"
)

const Name = "prodigal-fetch"

// Options holds all prodigal-fetch flags.
type Options struct {
	clibase.Common

	Dir     string
	Systems []string // normalised, deduplicated

	// Overrides; zero values defer to config.
	BaseURL string
	Release string
	Timeout time.Duration
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "download Prodigal release binaries", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s --dir DIR [--os SYSTEM[,SYSTEM...]]\n", name)

		_, _ = fmt.Fprintln(out, "\nTarget:")
		_, _ = fmt.Fprintln(out, "  -d, --dir path              Existing directory to save binaries in (required)")
		_, _ = fmt.Fprintf(out, "      --os string             linux | osx | darwin | windows | host | all [%s]\n", def("os"))

		_, _ = fmt.Fprintln(out, "\nRelease:")
		_, _ = fmt.Fprintln(out, "      --release string        Release tag [config: v2.6.3]")
		_, _ = fmt.Fprintln(out, "      --base-url string       Download prefix [config: GitHub releases]")
		_, _ = fmt.Fprintln(out, "      --timeout duration      Per-download timeout, 0 = config [config: 5m]")

		_, _ = fmt.Fprintln(out, "\nOutput formats: text | json")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for prodigal-fetch.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, Name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Fetch Prodigal for this machine:")
		_, _ = fmt.Fprintln(w, "  prodigal-fetch --dir ./bin")
		_, _ = fmt.Fprintln(w, "\nFetch every platform and report as JSON:")
		_, _ = fmt.Fprintln(w, "  prodigal-fetch --dir ./bin --os all -o json")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
// A single positional argument is accepted in place of --dir.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common, output.FormatText)

	fs.StringVar(&o.Dir, "dir", "", "target directory")
	fs.StringVar(&o.Dir, "d", "", "alias of --dir")
	osList := "host"
	fs.StringVar(&osList, "os", osList, "target system(s), comma separated")
	fs.StringVar(&o.Release, "release", "", "release tag (empty = config)")
	fs.StringVar(&o.BaseURL, "base-url", "", "download prefix (empty = config)")
	fs.DurationVar(&o.Timeout, "timeout", 0, "per-download timeout (0 = config)")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if err := clibase.Finish(&o.Common); err != nil {
		return o, err
	}
	if o.Version {
		return o, nil
	}

	switch rest := append(fs.Args(), posArgs...); {
	case len(rest) > 1:
		return o, fmt.Errorf("expected at most one directory, got %d arguments", len(rest))
	case len(rest) == 1 && o.Dir != "":
		return o, fmt.Errorf("directory given both as --dir and as argument")
	case len(rest) == 1:
		o.Dir = rest[0]
	}

	systems, err := ParseSystems(osList)
	if err != nil {
		return o, err
	}
	o.Systems = systems
	return o, Validate(&o)
}

// ParseSystems expands a comma separated --os value. "all" selects every
// supported system; the result is normalised and free of duplicates.
func ParseSystems(list string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	add := func(s string) error {
		sys, err := prodigal.NormalizeSystem(s)
		if err != nil {
			return err
		}
		if !seen[sys] {
			seen[sys] = true
			out = append(out, sys)
		}
		return nil
	}
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.EqualFold(part, "all") {
			for _, s := range prodigal.SupportedSystems {
				if err := add(s); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := add(part); err != nil {
			return nil, err
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--os must name at least one system")
	}
	return out, nil
}

// Validate applies prodigal-fetch invariants. The directory itself is
// checked by the download so that the error carries ErrNotDirectory.
func Validate(o *Options) error {
	if err := clibase.Validate(&o.Common); err != nil {
		return err
	}
	if strings.TrimSpace(o.Dir) == "" {
		return fmt.Errorf("--dir is required")
	}
	if o.Timeout < 0 {
		return fmt.Errorf("--timeout must be ≥ 0")
	}
	switch o.Output {
	case output.FormatText, output.FormatJSON:
	default:
		return fmt.Errorf("invalid --output %q (want %s or %s)", o.Output, output.FormatText, output.FormatJSON)
	}
	return nil
}
