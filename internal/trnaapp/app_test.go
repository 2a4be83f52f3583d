package trnaapp

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phagetools/internal/aragorn"
	"phagetools/pkg/api"
)

const genome = ">phi1 test phage\nACGTACGTACGTACGTACGTACGTACGTACGTACGTACGT\n"

const listing = `>phi1
3 genes found
1   tRNA-Leu                [5,14]          35      (taa)
2   tmRNA                  c[20,31]         90,125  ANDENYALAA*
3   tRNA-Ile               c[1,4]           34      (gat)
`

type fakeRunner struct {
	out  string
	bin  string
	args []string
}

func (f *fakeRunner) Run(ctx context.Context, args []string, _ string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.args = args
	return []byte(f.out), nil
}

func useFake(t *testing.T, out string) *fakeRunner {
	t.Helper()
	f := &fakeRunner{out: out}
	prev := newRunner
	newRunner = func(path string, _ logrus.FieldLogger) aragorn.Runner {
		f.bin = path
		return f
	}
	t.Cleanup(func() { newRunner = prev })
	return f
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func run(args ...string) (int, string, string) {
	var out, errB bytes.Buffer
	code := Run(args, &out, &errB)
	return code, out.String(), errB.String()
}

func TestText_DefaultFiltersTRNA(t *testing.T) {
	f := useFake(t, listing)
	fa := writeFile(t, "phi1.fa", genome)

	code, out, errS := run(fa)
	require.Equal(t, 0, code, errS)
	assert.Equal(t, "aragorn", f.bin)
	assert.Contains(t, f.args, "-gc11")
	assert.Contains(t, f.args, "-t")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "sequence_id\tidentity\tstart\tstop\tdirection\ttype\tlength\ttotal_length", lines[0])
	assert.Equal(t, "phi1\t-\t5\t14\t+\ttRNA-Leu(taa)\t10\t40", lines[1])
	assert.Equal(t, "phi1\t-\t1\t4\t-\ttRNA-Ile(gat)\t4\t40", lines[2])
}

func TestText_SortAndNoHeader(t *testing.T) {
	useFake(t, listing)
	fa := writeFile(t, "phi1.fa", genome)

	code, out, _ := run("--sort", "--no-header", fa)
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "phi1\t-\t1\t4\t"))
}

func TestJSON_BothWithIdentity(t *testing.T) {
	f := useFake(t, listing)
	fa := writeFile(t, "phi1.fa", genome)

	code, out, errS := run("--rna-type", "both", "--id", "phi1-run", "--gc", "4", "-o", "json", fa)
	require.Equal(t, 0, code, errS)
	assert.Contains(t, f.args, "-gc4")
	assert.Contains(t, f.args, "-d")

	var doc api.AnnotationV1
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.NotEmpty(t, doc.RunID)
	assert.Equal(t, "phi1", doc.SequenceID)
	assert.Equal(t, 40, doc.SequenceLength)
	require.Len(t, doc.Genes, 3)
	assert.Equal(t, "tmRNA peptide:ANDENYALAA", doc.Genes[1].Type)
	assert.Equal(t, "-", doc.Genes[1].Direction)
	for _, g := range doc.Genes {
		assert.Equal(t, "phi1-run", g.Identity)
		assert.Equal(t, 40, g.TotalLength)
	}
}

func TestTmRNAOnly(t *testing.T) {
	useFake(t, listing)
	fa := writeFile(t, "phi1.fa", genome)

	code, out, _ := run("--rna-type", "tmRNA", "--no-header", fa)
	require.Equal(t, 0, code)
	assert.Equal(t, "phi1\t-\t20\t31\t-\ttmRNA peptide:ANDENYALAA\t12\t40\n", out)
}

func TestFASTAOutput(t *testing.T) {
	useFake(t, listing)
	fa := writeFile(t, "phi1.fa", genome)

	code, out, _ := run("-o", "fasta", fa)
	require.Equal(t, 0, code)
	assert.Contains(t, out, ">phi1_1 type=tRNA-Leu(taa)")
	assert.Contains(t, out, "\nACGTACGTAC\n")
}

func TestNoGenes_ExitCode(t *testing.T) {
	useFake(t, ">phi1\n0 genes found\n")
	fa := writeFile(t, "phi1.fa", genome)

	code, out, _ := run(fa)
	assert.Equal(t, 1, code)
	assert.Equal(t, "sequence_id\tidentity\tstart\tstop\tdirection\ttype\tlength\ttotal_length\n", out)

	code, _, _ = run("--no-match-exit-code", "0", fa)
	assert.Equal(t, 0, code)
}

func TestMultiRecord_WarnsAndUsesFirst(t *testing.T) {
	useFake(t, listing)
	fa := writeFile(t, "multi.fa", genome+">phi2\nTTTT\n")

	code, out, errS := run("--no-header", fa)
	require.Equal(t, 0, code)
	assert.Contains(t, errS, "multiple records")
	assert.Contains(t, out, "phi1\t")
	assert.NotContains(t, out, "phi2")
}

func TestMultiRecord_EmptyFirstIsNoMatch(t *testing.T) {
	f := useFake(t, listing)
	fa := writeFile(t, "gap.fa", ">first\n>second\nACGTACGT\n")

	code, out, errS := run("--no-header", fa)
	assert.Equal(t, 1, code, errS)
	assert.Empty(t, out)
	assert.Nil(t, f.args)
}

func TestMultiRecord_QuietSuppressesWarning(t *testing.T) {
	useFake(t, listing)
	fa := writeFile(t, "multi.fa", genome+">phi2\nTTTT\n")

	code, _, errS := run("-q", fa)
	require.Equal(t, 0, code)
	assert.Empty(t, errS)
}

func TestConfigFromEnv(t *testing.T) {
	f := useFake(t, listing)
	fa := writeFile(t, "phi1.fa", genome)
	t.Setenv("PHAGETOOLS_ARAGORN_PATH", "/opt/aragorn/bin/aragorn")
	t.Setenv("PHAGETOOLS_ARAGORN_TRANSLATION_TABLE", "25")

	code, _, errS := run(fa)
	require.Equal(t, 0, code, errS)
	assert.Equal(t, "/opt/aragorn/bin/aragorn", f.bin)
	assert.Contains(t, f.args, "-gc25")

	code, _, _ = run("--aragorn", "aragorn-1.2.41", "--gc", "11", fa)
	require.Equal(t, 0, code)
	assert.Equal(t, "aragorn-1.2.41", f.bin)
	assert.Contains(t, f.args, "-gc11")
}

func TestUsageErrors(t *testing.T) {
	useFake(t, listing)
	fa := writeFile(t, "phi1.fa", genome)

	code, _, errS := run("--rna-type", "rRNA", fa)
	assert.Equal(t, 2, code)
	assert.Contains(t, errS, "{both, tRNA, tmRNA}")

	code, _, _ = run("--topology", "ring", fa)
	assert.Equal(t, 2, code)

	code, _, _ = run("--bogus", fa)
	assert.Equal(t, 2, code)
}

func TestRuntimeErrors(t *testing.T) {
	useFake(t, listing)

	code, _, errS := run(writeFile(t, "empty.fa", ""))
	assert.Equal(t, 3, code)
	assert.Contains(t, errS, "no sequence found")

	code, _, _ = run(filepath.Join(t.TempDir(), "missing.fa"))
	assert.Equal(t, 3, code)
}

func TestCanceled(t *testing.T) {
	useFake(t, listing)
	fa := writeFile(t, "phi1.fa", genome)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errB bytes.Buffer
	assert.Equal(t, 130, RunContext(ctx, []string{fa}, &out, &errB))
}

func TestHelpVersionExamples(t *testing.T) {
	code, out, _ := run()
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "aragorn-query")
	assert.Contains(t, out, "--rna-type")

	code, out, _ = run("--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage:")

	code, out, _ = run("--version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "aragorn-query version "))

	code, out, _ = run("--examples")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "quickstart")
}

func TestExecAragorn_EndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in needs a POSIX shell")
	}
	script := "#!/bin/sh\ncat <<'EOF'\n" + listing + "EOF\n"
	bin := writeFile(t, "aragorn", script)
	require.NoError(t, os.Chmod(bin, 0o755))
	fa := writeFile(t, "phi1.fa", genome)

	code, out, errS := run("--aragorn", bin, "--no-header", "-o", "jsonl", fa)
	require.Equal(t, 0, code, errS)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	var g api.GeneV1
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &g))
	assert.Equal(t, "phi1", g.SequenceID)
	assert.Equal(t, "tRNA-Leu(taa)", g.Type)
	assert.NotEmpty(t, g.RunID)
}
