// internal/aragorn/query.go
package aragorn

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"phagetools/internal/fasta"
)

// QueryResult is the outcome of one Query.
type QueryResult struct {
	Record      fasta.Record // the analysed record
	MultiRecord bool         // the input held more records; only the first was analysed
	Predictions []Prediction
}

// Query validates opts, runs ARAGORN on the first record of the FASTA file at
// path and returns the predictions matching opts.RNAType, in reported order.
func Query(ctx context.Context, r Runner, path string, opts Options) (QueryResult, error) {
	if err := opts.Validate(); err != nil {
		return QueryResult{}, err
	}

	rec, more, err := fasta.ReadFirst(ctx, path)
	if err != nil {
		return QueryResult{}, err
	}

	if rec.Len() == 0 {
		// header-only first record: nothing for ARAGORN to search
		return QueryResult{Record: rec, MultiRecord: more, Predictions: []Prediction{}}, nil
	}

	tmp, err := writeTemp(rec)
	if err != nil {
		return QueryResult{}, err
	}
	defer os.Remove(tmp)

	out, err := r.Run(ctx, opts.Args(), tmp)
	if err != nil {
		return QueryResult{}, err
	}
	preds, err := Parse(bytes.NewReader(out))
	if err != nil {
		return QueryResult{}, err
	}
	return QueryResult{
		Record:      rec,
		MultiRecord: more,
		Predictions: Filter(preds, opts.RNAType),
	}, nil
}

// Filter keeps predictions of the given type. TypeBoth returns preds unchanged.
func Filter(preds []Prediction, rnaType string) []Prediction {
	if rnaType == TypeBoth {
		return preds
	}
	out := make([]Prediction, 0, len(preds))
	for _, p := range preds {
		if p.Type == rnaType {
			out = append(out, p)
		}
	}
	return out
}

func writeTemp(rec fasta.Record) (string, error) {
	fh, err := os.CreateTemp("", "aragorn-*.fa")
	if err != nil {
		return "", fmt.Errorf("creating aragorn input: %w", err)
	}
	if err := fasta.Write(fh, rec); err != nil {
		_ = fh.Close()
		_ = os.Remove(fh.Name())
		return "", fmt.Errorf("writing aragorn input: %w", err)
	}
	if err := fh.Close(); err != nil {
		_ = os.Remove(fh.Name())
		return "", fmt.Errorf("closing aragorn input: %w", err)
	}
	return fh.Name(), nil
}
