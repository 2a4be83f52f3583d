package aragorn

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phagetools/internal/logging"
)

func fakeAragorn(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in needs a POSIX shell")
	}
	fn := filepath.Join(t.TempDir(), "aragorn")
	require.NoError(t, os.WriteFile(fn, []byte("#!/bin/sh\n"+script), 0o755))
	return fn
}

func TestExecRunner_PassesArgsAndPath(t *testing.T) {
	bin := fakeAragorn(t, `echo "$@"`)
	r := NewExecRunner(bin, logging.Discard())

	out, err := r.Run(context.Background(), []string{"-w", "-gc11"}, "/tmp/in.fa")
	require.NoError(t, err)
	assert.Equal(t, "-w -gc11 /tmp/in.fa\n", string(out))
}

func TestExecRunner_NonZeroExitIncludesStderr(t *testing.T) {
	bin := fakeAragorn(t, "echo 'cannot open file' >&2\nexit 1\n")
	_, err := NewExecRunner(bin, nil).Run(context.Background(), nil, "x.fa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open file")
}

func TestExecRunner_NotInstalled(t *testing.T) {
	r := NewExecRunner(filepath.Join(t.TempDir(), "no-such-aragorn"), nil)
	_, err := r.Run(context.Background(), nil, "x.fa")
	require.ErrorIs(t, err, ErrNotInstalled)
}
