// Package writers turns gene annotations into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV/JSON/JSONL/GFF3/FASTA).
//   • The aragorn package stays domain-only; apps stay orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
