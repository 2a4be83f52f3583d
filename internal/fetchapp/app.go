// internal/fetchapp/app.go
package fetchapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"phagetools/internal/clibase"
	"phagetools/internal/config"
	"phagetools/internal/fetchcli"
	"phagetools/internal/jsonutil"
	"phagetools/internal/logging"
	"phagetools/internal/output"
	"phagetools/internal/prodigal"
	"phagetools/internal/version"
	"phagetools/internal/writers"
	"phagetools/pkg/api"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 4<<10)
	flush := func(code int) int {
		if err := writers.Flush(outw); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		return code
	}

	fs := fetchcli.NewFlagSet(fetchcli.Name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = fetchcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush(0)
	}

	opts, err := fetchcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			fetchcli.PrintExamples(outw)
			return flush(0)
		}
		fmt.Fprintln(stderr, "error:", err)
		fmt.Fprintf(stderr, "run '%s --help' for usage\n", fetchcli.Name)
		return 2
	}
	if opts.Version {
		fmt.Fprintf(outw, "%s version %s\n", fetchcli.Name, version.Version)
		return flush(0)
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	level := opts.LogLevel
	if level == "" {
		level = cfg.Log.Level
	}
	log, err := logging.New(stderr, level, opts.Quiet)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	rel, err := prodigal.NewRelease(
		prodigal.WithVersion(firstNonEmpty(opts.Release, cfg.Prodigal.Version)),
		prodigal.WithBaseURL(firstNonEmpty(opts.BaseURL, cfg.Prodigal.BaseURL)),
		prodigal.WithTimeout(firstPositive(opts.Timeout, cfg.Prodigal.Timeout)),
		prodigal.WithLogger(log),
	)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	var paths []string
	if len(opts.Systems) == 1 {
		var p string
		p, err = rel.GetBinary(ctx, opts.Systems[0], opts.Dir)
		paths = []string{p}
	} else {
		paths, err = rel.GetAll(ctx, opts.Dir, opts.Systems)
	}
	if err != nil {
		if ctx.Err() != nil {
			return 130
		}
		fmt.Fprintln(stderr, "error:", err)
		if errors.Is(err, prodigal.ErrNotDirectory) || errors.Is(err, prodigal.ErrUnsupportedSystem) {
			return 2
		}
		return 3
	}

	if err := writeResults(outw, opts.Output, rel.Version(), opts.Systems, paths); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, "error:", err)
		return 3
	}
	return flush(0)
}

func writeResults(w io.Writer, format, release string, systems, paths []string) error {
	if format == output.FormatJSON {
		res := make([]api.FetchResultV1, 0, len(paths))
		for i, p := range paths {
			res = append(res, api.FetchResultV1{System: systems[i], Version: release, Path: p})
		}
		return jsonutil.EncodePretty(w, res)
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstPositive(a, b time.Duration) time.Duration {
	if a > 0 {
		return a
	}
	return b
}
