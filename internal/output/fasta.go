// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"phagetools/internal/gene"
)

// WriteFASTA writes each gene's sequence (own strand, 5'→3') as a FASTA record.
func WriteFASTA(w io.Writer, a gene.Annotation) error {
	for i, g := range a.Genes {
		seq, err := gene.Extract(a.Sequence, g)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(
			w,
			">%s_%d type=%s start=%d stop=%d strand=%s len=%d\n%s\n",
			a.SequenceID, i+1, g.Type, g.Start, g.Stop, g.Direction, len(seq), seq,
		); err != nil {
			return err
		}
	}
	return nil
}
