// internal/aragorn/runner.go
package aragorn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrNotInstalled is returned when the ARAGORN executable cannot be located.
var ErrNotInstalled = errors.New("aragorn executable not found")

// Runner executes ARAGORN on a FASTA file and returns its standard output.
type Runner interface {
	Run(ctx context.Context, args []string, seqPath string) ([]byte, error)
}

// ExecRunner runs a local ARAGORN binary.
type ExecRunner struct {
	Path string // executable name (looked up in PATH) or absolute path
	Log  logrus.FieldLogger
}

func NewExecRunner(path string, log logrus.FieldLogger) *ExecRunner {
	return &ExecRunner{Path: path, Log: log}
}

func (r *ExecRunner) Run(ctx context.Context, args []string, seqPath string) ([]byte, error) {
	bin, err := exec.LookPath(r.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotInstalled, r.Path, err)
	}
	argv := append(append([]string(nil), args...), seqPath)
	if r.Log != nil {
		r.Log.WithFields(logrus.Fields{"bin": bin, "args": strings.Join(argv, " ")}).Debug("running aragorn")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, argv...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("aragorn failed: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("aragorn failed: %w", err)
	}
	return stdout.Bytes(), nil
}
