package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
	FormatGFF3  = "gff3"
)

// Formats lists every format in help order.
var Formats = []string{FormatText, FormatJSON, FormatJSONL, FormatGFF3, FormatFASTA}

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sequence_id\tidentity\tstart\tstop\tdirection\ttype\tlength\ttotal_length"
