// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"phagetools/internal/gene"
	"phagetools/internal/output"
)

// Params carries presentation switches shared by all annotation writers.
type Params struct {
	Header bool   // text: print TSVHeader
	Sort   bool   // order genes by coordinate before writing
	RunID  string // json/jsonl: run identifier
}

// AnnotationWriter renders one annotation in a specific format.
type AnnotationWriter func(w io.Writer, a gene.Annotation, p Params) error

// AnnotationWriters maps format → handler. Populated in init().
var AnnotationWriters = map[string]AnnotationWriter{}

// RegisterAnnotation installs fn for format (idempotent last-wins).
func RegisterAnnotation(format string, fn AnnotationWriter) { AnnotationWriters[format] = fn }

func init() {
	RegisterAnnotation(output.FormatText, func(w io.Writer, a gene.Annotation, p Params) error {
		return output.WriteTSV(w, a, p.Header)
	})
	RegisterAnnotation(output.FormatJSON, func(w io.Writer, a gene.Annotation, p Params) error {
		return output.WriteJSON(w, a, p.RunID)
	})
	RegisterAnnotation(output.FormatJSONL, func(w io.Writer, a gene.Annotation, p Params) error {
		return output.WriteJSONL(w, a, p.RunID)
	})
	RegisterAnnotation(output.FormatGFF3, func(w io.Writer, a gene.Annotation, _ Params) error {
		return output.WriteGFF3(w, a)
	})
	RegisterAnnotation(output.FormatFASTA, func(w io.Writer, a gene.Annotation, _ Params) error {
		return output.WriteFASTA(w, a)
	})
}

// Known reports whether a writer is registered for format.
func Known(format string) bool {
	_, ok := AnnotationWriters[format]
	return ok
}

// Registered returns the registered formats in sorted order.
func Registered() []string {
	out := make([]string, 0, len(AnnotationWriters))
	for f := range AnnotationWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// NeedSeq tells the caller whether format renders gene sequences.
func NeedSeq(format string) bool { return format == output.FormatFASTA }

// WriteAnnotation dispatches a to the writer registered for format.
// The caller's gene slice is never reordered.
func WriteAnnotation(format string, w io.Writer, a gene.Annotation, p Params) error {
	fn, ok := AnnotationWriters[format]
	if !ok {
		return fmt.Errorf("unknown annotation format %q (no writer registered)", format)
	}
	if p.Sort {
		a.Genes = append([]gene.Gene(nil), a.Genes...)
		gene.Sort(a.Genes)
	}
	return fn(w, a, p)
}
