// internal/trnacli/options.go
package trnacli

import (
	"flag"
	"fmt"
	"io"

	"phagetools/internal/aragorn"
	"phagetools/internal/clibase"
	"phagetools/internal/cliutil"
	"phagetools/internal/output"
	"phagetools/internal/writers"
)

const Name = "aragorn-query"

// Options holds all aragorn-query flags and arguments.
type Options struct {
	clibase.Common

	SeqFile string

	// Query
	RNAType  string
	Introns  bool
	Topology string
	Strand   string
	GC       int // 0 = from config

	// Annotation
	Identity    string
	AragornPath string // "" = from config

	// Output
	Sort            bool
	Header          bool
	NoMatchExitCode int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "tRNA/tmRNA annotation with ARAGORN", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] genome.fa\n", name)

		_, _ = fmt.Fprintln(out, "\nQuery:")
		_, _ = fmt.Fprintf(out, "      --rna-type string       tRNA | tmRNA | both [%s]\n", def("rna-type"))
		_, _ = fmt.Fprintf(out, "      --introns               Search for tRNA genes with introns [%s]\n", def("introns"))
		_, _ = fmt.Fprintf(out, "      --topology string       linear | circular [%s]\n", def("topology"))
		_, _ = fmt.Fprintf(out, "      --strand string         single | both [%s]\n", def("strand"))
		_, _ = fmt.Fprintln(out, "      --gc int                Genetic code / translation table [config: 11]")
		_, _ = fmt.Fprintln(out, "      --aragorn path          ARAGORN executable [config: aragorn]")

		_, _ = fmt.Fprintln(out, "\nAnnotation:")
		_, _ = fmt.Fprintln(out, "      --id string             Identity attached to every gene")
		_, _ = fmt.Fprintln(out, "  -s, --sequences file        FASTA file (or positional; '-' for STDIN)")

		_, _ = fmt.Fprintln(out, "\nOutput formats: text | json | jsonl | gff3 | fasta")
		_, _ = fmt.Fprintf(out, "      --sort                  Sort genes by coordinate [%s]\n", def("sort"))
		_, _ = fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		_, _ = fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no genes found [%s]\n", def("no-match-exit-code"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for aragorn-query.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, Name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Find tRNA genes in a phage genome:")
		_, _ = fmt.Fprintln(w, "  aragorn-query phage.fasta")
		_, _ = fmt.Fprintln(w, "\ntRNA and tmRNA on a circular genome, as GFF3:")
		_, _ = fmt.Fprintln(w, "  aragorn-query --rna-type both --topology circular -o gff3 phage.fasta.gz")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common, output.FormatText)

	fs.StringVar(&o.SeqFile, "sequences", "", "FASTA file or '-'")
	fs.StringVar(&o.SeqFile, "s", "", "alias of --sequences")

	fs.StringVar(&o.RNAType, "rna-type", aragorn.TypeTRNA, "tRNA | tmRNA | both")
	fs.BoolVar(&o.Introns, "introns", false, "search for tRNA genes with introns [false]")
	fs.StringVar(&o.Topology, "topology", aragorn.TopologyLinear, "linear | circular")
	fs.StringVar(&o.Strand, "strand", aragorn.StrandBoth, "single | both")
	fs.IntVar(&o.GC, "gc", 0, "genetic code (0 = config)")
	fs.StringVar(&o.AragornPath, "aragorn", "", "ARAGORN executable (empty = config)")

	fs.StringVar(&o.Identity, "id", "", "identity attached to every gene")

	fs.BoolVar(&o.Sort, "sort", false, "sort genes by coordinate [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no genes found [1]")

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
	o.Header = !noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return o, err
		}
		if o.SeqFile != "" {
			exp = append([]string{o.SeqFile}, exp...)
		}
		o.SeqFile, err = cliutil.SinglePath(exp, "FASTA file")
		if err != nil {
			return o, err
		}
	}
	return o, Validate(&o)
}

// Validate applies aragorn-query invariants. Enumerated query options are
// checked by aragorn.Options.Validate so the messages match library callers.
func Validate(o *Options) error {
	if err := clibase.Validate(&o.Common); err != nil {
		return err
	}
	if o.SeqFile == "" {
		return fmt.Errorf("a FASTA file is required")
	}
	if err := o.QueryOptions(0).Validate(); err != nil {
		return err
	}
	if o.GC < 0 {
		return fmt.Errorf("--gc must be ≥ 0")
	}
	if !writers.Known(o.Output) {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return fmt.Errorf("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}

// QueryOptions builds the aragorn options; --gc wins over defaultGC.
func (o Options) QueryOptions(defaultGC int) aragorn.Options {
	gc := o.GC
	if gc == 0 {
		gc = defaultGC
	}
	return aragorn.Options{
		RNAType:          o.RNAType,
		Introns:          o.Introns,
		Topology:         o.Topology,
		Strand:           o.Strand,
		TranslationTable: gc,
	}
}
