package aragorn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"phagetools/internal/gene"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "tRNA-Leu(taa)", Label(Prediction{Type: TypeTRNA, AminoAcid: "Leu", Anticodon: "taa"}))
	assert.Equal(t, "tRNA-???", Label(Prediction{Type: TypeTRNA, AminoAcid: "???"}))
	assert.Equal(t, "tmRNA peptide:ANDENYALAA", Label(Prediction{Type: TypeTmRNA, TagPeptide: "ANDENYALAA"}))
	assert.Equal(t, "tmRNA", Label(Prediction{Type: TypeTmRNA}))
}

func TestToGenes(t *testing.T) {
	preds := []Prediction{
		{Type: TypeTRNA, AminoAcid: "Ile", Anticodon: "gat", Begin: 20001, End: 20076, Strand: -1},
		{Type: TypeTmRNA, TagPeptide: "ANDENYALAA", Begin: 30001, End: 30360, Strand: 1},
	}
	genes := ToGenes(preds, 48502, "lambda")
	assert.Equal(t, []gene.Gene{
		{Start: 20001, Stop: 20076, Direction: gene.Reverse, Type: "tRNA-Ile(gat)", TotalLength: 48502, Identity: "lambda"},
		{Start: 30001, Stop: 30360, Direction: gene.Forward, Type: "tmRNA peptide:ANDENYALAA", TotalLength: 48502, Identity: "lambda"},
	}, genes)
}

func TestToGenes_Empty(t *testing.T) {
	genes := ToGenes(nil, 10, "")
	assert.NotNil(t, genes)
	assert.Empty(t, genes)
}
