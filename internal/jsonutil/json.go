// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := NewLineEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// NewLineEncoder returns an encoder for one-object-per-line output.
// HTML escaping is off: labels such as "tRNA-Leu(taa)" or URLs with '&'
// are written as-is.
func NewLineEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}
