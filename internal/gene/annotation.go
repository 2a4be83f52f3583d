package gene

// Annotation is the result of annotating one sequence.
type Annotation struct {
	SourceFile     string
	SequenceID     string
	SequenceLength int
	Sequence       []byte // analysed sequence; only needed for FASTA output
	Genes          []Gene
}
