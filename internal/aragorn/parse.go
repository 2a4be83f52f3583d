// internal/aragorn/parse.go
package aragorn

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrParse is wrapped when a gene line of the batch listing cannot be decoded.
var ErrParse = errors.New("aragorn: unparseable output")

// Prediction is one gene reported by ARAGORN.
type Prediction struct {
	Index      int    // 1-based rank in ARAGORN's listing
	Type       string // TypeTRNA | TypeTmRNA
	AminoAcid  string // tRNA only, e.g. "Leu", "SeC", "???"
	Anticodon  string // tRNA only, lower-case, may be empty
	TagPeptide string // tmRNA only, stop '*' removed, may be empty
	Begin      int    // 1-based inclusive
	End        int    // 1-based inclusive
	Strand     int    // +1 or -1
	Permuted   bool   // permuted tmRNA
	Mito       bool   // reported as mtRNA

	IntronStart  int // offset within the gene, 0 when absent
	IntronLength int
}

// HasIntron reports whether the prediction carries an intron.
func (p Prediction) HasIntron() bool { return p.IntronLength > 0 }

// Batch-mode (-w) gene lines look like:
//
//	1   tRNA-Leu                [12345,12430]   35      (taa)
//	2   tRNA-Ile               c[20001,20076]   34      (gat)i(38,12)
//	3   tmRNA                   [30001,30360]   90,125  ANDENYALAA*
var (
	geneLineRE  = regexp.MustCompile(`^\s*(\d+)\s+(\S+)\s+(c?)\[\s*(-?\d+)\s*,\s*(-?\d+)\s*\]\s*(.*)$`)
	trnaTailRE  = regexp.MustCompile(`^(\d+)\s+\(([A-Za-z?]*)\)\s*(?:i\((\d+)\s*,\s*(\d+)\))?`)
	tmrnaTailRE = regexp.MustCompile(`^(\d+)\s*,\s*(\d+)\s*(\S*)`)
	foundRE     = regexp.MustCompile(`^\s*\d+\s+genes?\s+found`)
)

// Parse decodes ARAGORN batch output. Sequence headers, gene counts and blank
// lines are skipped; any other line that starts like a gene entry must decode.
func Parse(r io.Reader) ([]Prediction, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	preds := make([]Prediction, 0)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '>' || foundRE.MatchString(trimmed) {
			continue
		}
		m := geneLineRE.FindStringSubmatch(trimmed)
		if m == nil {
			if trimmed[0] >= '0' && trimmed[0] <= '9' {
				return nil, fmt.Errorf("%w: line %d: %q", ErrParse, ln, trimmed)
			}
			continue // free text (warnings, banners)
		}
		p, err := parseGene(m)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, ln, err)
		}
		preds = append(preds, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("aragorn output scan: %w", err)
	}
	return preds, nil
}

func parseGene(m []string) (Prediction, error) {
	var p Prediction
	p.Index, _ = strconv.Atoi(m[1])
	p.Begin, _ = strconv.Atoi(m[4])
	p.End, _ = strconv.Atoi(m[5])
	p.Strand = 1
	if m[3] == "c" {
		p.Strand = -1
	}

	kind, tail := m[2], strings.TrimSpace(m[6])
	switch {
	case strings.HasPrefix(kind, "tmRNA"):
		p.Type = TypeTmRNA
		p.Permuted = strings.HasSuffix(kind, "*")
		if t := tmrnaTailRE.FindStringSubmatch(tail); t != nil {
			p.TagPeptide = strings.TrimSuffix(t[3], "*")
		}
	case strings.HasPrefix(kind, "tRNA-"), strings.HasPrefix(kind, "mtRNA-"):
		p.Type = TypeTRNA
		p.Mito = strings.HasPrefix(kind, "mt")
		p.AminoAcid = kind[strings.IndexByte(kind, '-')+1:]
		t := trnaTailRE.FindStringSubmatch(tail)
		if t == nil {
			return p, fmt.Errorf("tRNA entry without anticodon field: %q", tail)
		}
		p.Anticodon = strings.ToLower(t[2])
		if strings.Trim(p.Anticodon, "?") == "" {
			p.Anticodon = ""
		}
		if t[3] != "" {
			p.IntronStart, _ = strconv.Atoi(t[3])
			p.IntronLength, _ = strconv.Atoi(t[4])
		}
	default:
		return p, fmt.Errorf("unknown gene type %q", kind)
	}
	return p, nil
}
