package aragorn

import "phagetools/internal/gene"

// Label renders the annotation type string for p:
// "tRNA-<aa>(<anticodon>)" or "tmRNA peptide:<tag>", omitting absent parts.
func Label(p Prediction) string {
	if p.Type == TypeTRNA {
		s := "tRNA-" + p.AminoAcid
		if p.Anticodon != "" {
			s += "(" + p.Anticodon + ")"
		}
		return s
	}
	s := p.Type
	if p.TagPeptide != "" {
		s += " peptide:" + p.TagPeptide
	}
	return s
}

// ToGenes converts predictions into gene records of a sequence of totalLength
// bases, tagging each with id (may be empty). Order is preserved.
func ToGenes(preds []Prediction, totalLength int, id string) []gene.Gene {
	genes := make([]gene.Gene, 0, len(preds))
	for _, p := range preds {
		genes = append(genes, gene.Gene{
			Start:       p.Begin,
			Stop:        p.End,
			Direction:   gene.DirectionFromStrand(p.Strand),
			Type:        Label(p),
			TotalLength: totalLength,
			Identity:    id,
		})
	}
	return genes
}
