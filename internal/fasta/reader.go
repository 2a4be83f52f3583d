// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNoSequence is returned when an input holds no FASTA record with sequence data.
var ErrNoSequence = errors.New("no sequence found in file")

// errStop ends a scan early without surfacing an error to the caller.
var errStop = errors.New("fasta: stop")

// Record is one parsed FASTA entry.
type Record struct {
	ID          string // first whitespace-delimited token of the header
	Description string // rest of the header line, trimmed
	Seq         []byte
}

// Len is the sequence length in bases.
func (r Record) Len() int { return len(r.Seq) }

// ScanCtx parses FASTA from r and calls emit once per record, in file order.
// Lines before the first header are ignored. Cancellation is checked per line.
func ScanCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		cur     Record
		started bool
		seq     = make([]byte, 0, 1<<16)
	)

	flush := func() error {
		if !started {
			return nil
		}
		cur.Seq = append([]byte(nil), seq...)
		return emit(cur)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, desc := parseHeader(line[1:])
			cur = Record{ID: id, Description: desc}
			seq = seq[:0]
			started = true
			continue
		}
		if !started {
			continue
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadFirst returns the first record of the FASTA file at path.
// more reports whether the file holds further records. The first record may
// be empty as long as some record in the file carries bases; a file with no
// sequence data at all yields ErrNoSequence.
func ReadFirst(ctx context.Context, path string) (rec Record, more bool, err error) {
	rc, err := Open(path)
	if err != nil {
		return Record{}, false, err
	}
	defer rc.Close()

	n := 0
	hasSeq := false
	err = ScanCtx(ctx, rc, func(r Record) error {
		n++
		if r.Len() > 0 {
			hasSeq = true
		}
		if n == 1 {
			rec = r
			return nil
		}
		more = true
		if hasSeq {
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return Record{}, false, err
	}
	if n == 0 || !hasSeq {
		return Record{}, false, fmt.Errorf("%s: %w", path, ErrNoSequence)
	}
	return rec, more, nil
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
