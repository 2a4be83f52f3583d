// internal/aragorn/options.go
package aragorn

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ErrInvalidOption is wrapped by every option validation failure.
var ErrInvalidOption = errors.New("invalid option")

// RNA types. TypeBoth disables filtering.
const (
	TypeTRNA  = "tRNA"
	TypeTmRNA = "tmRNA"
	TypeBoth  = "both"
)

// Sequence topologies.
const (
	TopologyLinear   = "linear"
	TopologyCircular = "circular"
)

// Strand search modes.
const (
	StrandSingle = "single"
	StrandBoth   = "both"
)

var (
	RNATypes    = []string{TypeTRNA, TypeTmRNA, TypeBoth}
	Topologies  = []string{TopologyLinear, TopologyCircular}
	StrandModes = []string{StrandSingle, StrandBoth}
)

// Options controls one ARAGORN query.
type Options struct {
	RNAType          string // tRNA | tmRNA | both
	Introns          bool   // search for tRNA genes with introns
	Topology         string // linear | circular
	Strand           string // single | both
	TranslationTable int    // genetic code passed as -gc<N>; 0 means 11
}

// DefaultOptions mirrors the host application's defaults.
func DefaultOptions() Options {
	return Options{
		RNAType:          TypeTRNA,
		Topology:         TopologyLinear,
		Strand:           StrandBoth,
		TranslationTable: 11,
	}
}

// Validate checks every enumerated option against its allowed set.
func (o Options) Validate() error {
	if !slices.Contains(RNATypes, o.RNAType) {
		return invalid(o.RNAType, "type", RNATypes)
	}
	if !slices.Contains(Topologies, o.Topology) {
		return invalid(o.Topology, "sequence topology", Topologies)
	}
	if !slices.Contains(StrandModes, o.Strand) {
		return invalid(o.Strand, "strand mode", StrandModes)
	}
	if o.TranslationTable < 0 {
		return fmt.Errorf("%w: translation table must be ≥ 0, got %d", ErrInvalidOption, o.TranslationTable)
	}
	return nil
}

// Args renders the ARAGORN command-line switches for o (batch output, no input path).
func (o Options) Args() []string {
	gc := o.TranslationTable
	if gc == 0 {
		gc = 11
	}
	args := []string{"-w", fmt.Sprintf("-gc%d", gc)}
	switch o.RNAType {
	case TypeTRNA:
		args = append(args, "-t")
	case TypeTmRNA:
		args = append(args, "-m")
	}
	if o.Introns {
		args = append(args, "-i")
	}
	if o.Topology == TopologyCircular {
		args = append(args, "-c")
	} else {
		args = append(args, "-l")
	}
	if o.Strand == StrandSingle {
		args = append(args, "-s")
	} else {
		args = append(args, "-d")
	}
	return args
}

func invalid(v, what string, allowed []string) error {
	return fmt.Errorf("%w: %q is not a valid %s %s", ErrInvalidOption, v, what, FormatSet(allowed))
}

// FormatSet renders an allowed-value set as "{a, b, c}" in sorted order.
func FormatSet(vals []string) string {
	s := append([]string(nil), vals...)
	sort.Strings(s)
	return "{" + strings.Join(s, ", ") + "}"
}
