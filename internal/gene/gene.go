// Package gene holds the annotation record handed to the host application.
package gene

import (
	"fmt"
	"sort"
)

// Direction is the strand an annotation lies on.
type Direction byte

const (
	Forward Direction = '+'
	Reverse Direction = '-'
)

func (d Direction) String() string { return string(rune(d)) }

// DirectionFromStrand maps a signed strand (+1/-1) to a Direction; zero counts as forward.
func DirectionFromStrand(strand int) Direction {
	if strand >= 0 {
		return Forward
	}
	return Reverse
}

// Gene is a flat tRNA/tmRNA annotation. Start and Stop are 1-based inclusive
// coordinates as reported by the predictor.
type Gene struct {
	Start       int
	Stop        int
	Direction   Direction
	Type        string // e.g. "tRNA-Leu(taa)" or "tmRNA peptide:ANDENYALAA"
	TotalLength int    // length of the analysed sequence
	Identity    string // optional caller-supplied identifier
}

// Length is the span covered by the gene in bases.
func (g Gene) Length() int {
	if g.Stop >= g.Start {
		return g.Stop - g.Start + 1
	}
	// wraps the origin of a circular sequence
	return g.TotalLength - g.Start + 1 + g.Stop
}

func (g Gene) String() string {
	return fmt.Sprintf("%s %d..%d (%s)", g.Type, g.Start, g.Stop, g.Direction)
}

// Less defines a stable order for genes (for --sort).
func Less(a, b Gene) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.Stop != b.Stop {
		return a.Stop < b.Stop
	}
	if a.Direction != b.Direction {
		return a.Direction < b.Direction
	}
	return a.Type < b.Type
}

func Sort(gs []Gene) {
	sort.SliceStable(gs, func(i, j int) bool { return Less(gs[i], gs[j]) })
}
