// internal/output/rows.go
package output

import (
	"fmt"

	"phagetools/internal/gene"
)

// FormatRowTSV returns the TSV columns for g (no trailing newline).
// An empty identity is rendered as "-" so columns never collapse.
func FormatRowTSV(seqID string, g gene.Gene) string {
	id := g.Identity
	if id == "" {
		id = "-"
	}
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%s\t%s\t%d\t%d",
		seqID, id, g.Start, g.Stop, g.Direction, g.Type, g.Length(), g.TotalLength)
}
