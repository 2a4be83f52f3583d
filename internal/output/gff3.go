// internal/output/gff3.go
package output

import (
	"fmt"
	"io"
	"strings"

	"phagetools/internal/gene"
)

// GFF3 column order (http://www.sequenceontology.org/gff3.shtml).
const (
	FieldSeqid = iota
	FieldSource
	FieldType
	FieldStart
	FieldEnd
	FieldScore
	FieldStrand
	FieldPhase
	FieldAttributes
	numFields
)

// GFFSource is the source column written for every feature.
const GFFSource = "ARAGORN"

// WriteGFF3 writes the annotation as GFF3. Origin-spanning genes get an end
// coordinate past the sequence length, as GFF3 expects for circular molecules.
func WriteGFF3(w io.Writer, a gene.Annotation) error {
	if _, err := fmt.Fprintln(w, "##gff-version 3"); err != nil {
		return err
	}
	if a.SequenceLength > 0 {
		if _, err := fmt.Fprintf(w, "##sequence-region %s 1 %d\n", escape(a.SequenceID), a.SequenceLength); err != nil {
			return err
		}
	}
	for i, g := range a.Genes {
		end := g.Stop
		if end < g.Start {
			end += g.TotalLength
		}
		cols := make([]string, numFields)
		cols[FieldSeqid] = escape(a.SequenceID)
		cols[FieldSource] = GFFSource
		cols[FieldType] = soType(g.Type)
		cols[FieldStart] = fmt.Sprint(g.Start)
		cols[FieldEnd] = fmt.Sprint(end)
		cols[FieldScore] = "."
		cols[FieldStrand] = g.Direction.String()
		cols[FieldPhase] = "."
		cols[FieldAttributes] = attributes(i+1, g)
		if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// soType maps a label to its Sequence Ontology term.
func soType(label string) string {
	if strings.HasPrefix(label, "tmRNA") {
		return "tmRNA"
	}
	return "tRNA"
}

func attributes(n int, g gene.Gene) string {
	attrs := []string{
		fmt.Sprintf("ID=%s%d", strings.ToLower(soType(g.Type)), n),
		"product=" + escape(g.Type),
	}
	if g.Identity != "" {
		attrs = append(attrs, "Note="+escape(g.Identity))
	}
	return strings.Join(attrs, ";")
}

// escape percent-encodes characters reserved by GFF3 column 1 and 9.
func escape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ';', '=', '&', ',', '\t', '\n', '\r', '%':
			fmt.Fprintf(&b, "%%%02X", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
