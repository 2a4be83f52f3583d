// internal/trnaapp/app.go
package trnaapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"phagetools/internal/aragorn"
	"phagetools/internal/clibase"
	"phagetools/internal/config"
	"phagetools/internal/gene"
	"phagetools/internal/logging"
	"phagetools/internal/trnacli"
	"phagetools/internal/version"
	"phagetools/internal/writers"
)

// newRunner is swapped in tests.
var newRunner = func(path string, log logrus.FieldLogger) aragorn.Runner {
	return aragorn.NewExecRunner(path, log)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	flush := func(code int) int {
		if err := writers.Flush(outw); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		return code
	}

	fs := trnacli.NewFlagSet(trnacli.Name)
	fs.SetOutput(io.Discard) // silence default flag pkg

	// No args => register flags then print usage
	if len(argv) == 0 {
		_, _ = trnacli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush(0)
	}

	opts, err := trnacli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			trnacli.PrintExamples(outw)
			return flush(0)
		}
		fmt.Fprintln(stderr, "error:", err)
		fmt.Fprintf(stderr, "run '%s --help' for usage\n", trnacli.Name)
		return 2
	}
	if opts.Version {
		fmt.Fprintf(outw, "%s version %s\n", trnacli.Name, version.Version)
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

	bin := opts.AragornPath
	if bin == "" {
		bin = cfg.Aragorn.Path
	}
	res, err := aragorn.Query(ctx, newRunner(bin, log), opts.SeqFile, opts.QueryOptions(cfg.Aragorn.TranslationTable))
	if err != nil {
		return failure(ctx, stderr, err)
	}
	if res.MultiRecord {
		log.WithField("file", opts.SeqFile).Warnf("multiple records found; only %q was analysed", res.Record.ID)
	}

	a := gene.Annotation{
		SourceFile:     opts.SeqFile,
		SequenceID:     res.Record.ID,
		SequenceLength: res.Record.Len(),
		Genes:          aragorn.ToGenes(res.Predictions, res.Record.Len(), opts.Identity),
	}
	if writers.NeedSeq(opts.Output) {
		a.Sequence = res.Record.Seq
	}

	runID, err := uuid.NewV7()
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 3
	}
	log.WithFields(logrus.Fields{
		"run_id":   runID.String(),
		"sequence": a.SequenceID,
		"length":   a.SequenceLength,
		"genes":    len(a.Genes),
	}).Debug("annotation complete")

	err = writers.WriteAnnotation(opts.Output, outw, a, writers.Params{
		Header: opts.Header,
		Sort:   opts.Sort,
		RunID:  runID.String(),
	})
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, "error:", err)
		return 3
	}

	code := 0
	if len(a.Genes) == 0 {
		code = opts.NoMatchExitCode
	}
	return flush(code)
}

// failure maps a query error onto an exit code.
func failure(ctx context.Context, stderr io.Writer, err error) int {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return 130
	}
	fmt.Fprintln(stderr, "error:", err)
	if errors.Is(err, aragorn.ErrInvalidOption) {
		return 2
	}
	return 3
}
