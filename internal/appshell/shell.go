package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitCanceled is returned when the run was interrupted by a signal.
const ExitCanceled = 130

// RunFunc is the signature shared by the app packages.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs fn with a signal-aware context and exits the process.
func Main(fn RunFunc) {
	os.Exit(run(fn, os.Args[1:], os.Stdout, os.Stderr))
}

func run(fn RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := fn(ctx, argv, stdout, stderr)
	// A signal that arrived after the work finished still means the output
	// may be incomplete.
	if ctx.Err() != nil && code == 0 {
		code = ExitCanceled
	}
	return code
}
