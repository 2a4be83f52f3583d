// internal/output/json.go
package output

import (
	"io"

	"phagetools/internal/gene"
	"phagetools/internal/jsonutil"
	"phagetools/pkg/api"
)

// ToAPIGene converts a domain Gene to the stable wire schema (v1).
func ToAPIGene(g gene.Gene) api.GeneV1 {
	return api.GeneV1{
		Start:       g.Start,
		Stop:        g.Stop,
		Direction:   g.Direction.String(),
		Type:        g.Type,
		Length:      g.Length(),
		TotalLength: g.TotalLength,
		Identity:    g.Identity,
	}
}

// ToAPIAnnotation converts an Annotation to the v1 document.
func ToAPIAnnotation(a gene.Annotation, runID string) api.AnnotationV1 {
	genes := make([]api.GeneV1, 0, len(a.Genes))
	for _, g := range a.Genes {
		genes = append(genes, ToAPIGene(g))
	}
	return api.AnnotationV1{
		RunID:          runID,
		SourceFile:     a.SourceFile,
		SequenceID:     a.SequenceID,
		SequenceLength: a.SequenceLength,
		Genes:          genes,
	}
}

// WriteJSON writes a single v1 annotation document (pretty-indented).
func WriteJSON(w io.Writer, a gene.Annotation, runID string) error {
	return jsonutil.EncodePretty(w, ToAPIAnnotation(a, runID))
}

// WriteJSONL writes one v1 gene per line, each tagged with runID and the sequence ID.
func WriteJSONL(w io.Writer, a gene.Annotation, runID string) error {
	enc := jsonutil.NewLineEncoder(w)
	for _, g := range a.Genes {
		v := ToAPIGene(g)
		v.RunID = runID
		v.SequenceID = a.SequenceID
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
