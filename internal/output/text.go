// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"phagetools/internal/gene"
)

// WriteTSV prints one line per gene, optionally preceded by TSVHeader.
func WriteTSV(w io.Writer, a gene.Annotation, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, g := range a.Genes {
		if _, err := fmt.Fprintln(w, FormatRowTSV(a.SequenceID, g)); err != nil {
			return err
		}
	}
	return nil
}
