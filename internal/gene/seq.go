// internal/gene/seq.go
package gene

import "fmt"

var complement = map[byte]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'a': 't', 'c': 'g', 'g': 'c', 't': 'a',
	'R': 'Y', 'Y': 'R', // A/G  <->  C/T
	'S': 'S', 'W': 'W', // GC   <->  GC   ; AT <-> AT
	'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D',
	'N': 'N', 'n': 'n',
}

// RevComp returns the reverse complement of seq; unknown symbols become 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		if c, ok := complement[b]; ok {
			out[i] = c
		} else {
			out[i] = 'N'
		}
	}
	return out
}

// Extract returns the gene's sequence read 5'→3' on its own strand.
// Genes spanning the origin of a circular sequence (Stop < Start) wrap around.
func Extract(seq []byte, g Gene) ([]byte, error) {
	n := len(seq)
	if g.Start < 1 || g.Stop < 1 || g.Start > n || g.Stop > n {
		return nil, fmt.Errorf("gene %s outside sequence of length %d", g, n)
	}
	var sub []byte
	if g.Stop >= g.Start {
		sub = append([]byte(nil), seq[g.Start-1:g.Stop]...)
	} else {
		sub = append(append([]byte(nil), seq[g.Start-1:]...), seq[:g.Stop]...)
	}
	if g.Direction == Reverse {
		return RevComp(sub), nil
	}
	return sub, nil
}
