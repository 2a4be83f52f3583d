package fasta

import (
	"bufio"
	"io"
)

// LineWidth is the sequence line width used by Write.
const LineWidth = 60

// Write emits rec as FASTA with sequence lines wrapped at LineWidth.
func Write(w io.Writer, rec Record) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(">" + rec.ID); err != nil {
		return err
	}
	if rec.Description != "" {
		if _, err := bw.WriteString(" " + rec.Description); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	for off := 0; off < len(rec.Seq); off += LineWidth {
		end := off + LineWidth
		if end > len(rec.Seq) {
			end = len(rec.Seq)
		}
		if _, err := bw.Write(rec.Seq[off:end]); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
