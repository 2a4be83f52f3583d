// pkg/api/genes_v1.go
package api

// GeneV1 is the stable JSON/JSONL schema for one tRNA/tmRNA annotation.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type GeneV1 struct {
	Start       int    `json:"start"`
	Stop        int    `json:"stop"`
	Direction   string `json:"direction"` // "+" | "-"
	Type        string `json:"type"`
	Length      int    `json:"length"`
	TotalLength int    `json:"total_length"`
	Identity    string `json:"identity,omitempty"`

	// JSONL only: lets consumers group lines of one run.
	RunID      string `json:"run_id,omitempty"`
	SequenceID string `json:"sequence_id,omitempty"`
}

// AnnotationV1 is the JSON document emitted for one annotated sequence.
type AnnotationV1 struct {
	RunID          string   `json:"run_id"`
	SourceFile     string   `json:"source_file,omitempty"`
	SequenceID     string   `json:"sequence_id"`
	SequenceLength int      `json:"sequence_length"`
	Genes          []GeneV1 `json:"genes"`
}

// FetchResultV1 reports one downloaded binary.
type FetchResultV1 struct {
	System  string `json:"system"`
	Version string `json:"version"`
	Path    string `json:"path"`
}
