package output

import "phagetools/internal/gene"

func sampleAnnotation() gene.Annotation {
	return gene.Annotation{
		SourceFile:     "lambda.fa",
		SequenceID:     "lambda",
		SequenceLength: 20,
		Sequence:       []byte("AAAACCCCGGGGTTTTACGT"),
		Genes: []gene.Gene{
			{Start: 5, Stop: 8, Direction: gene.Forward, Type: "tRNA-Pro(ggg)", TotalLength: 20, Identity: "phage1"},
			{Start: 9, Stop: 12, Direction: gene.Reverse, Type: "tmRNA peptide:AA", TotalLength: 20},
		},
	}
}
