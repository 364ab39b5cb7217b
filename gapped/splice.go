package gapped

import (
	"strings"

	"github.com/biogo/biogo/seq"

	"github.com/gogpu/gg-genome/feature"
)

// DNA returns the reference bases in the 1-based inclusive range [x1, x2],
// or "" when they are not available.
type DNA func(x1, x2 int) string

// NonCanonicalSplices checks the splice between consecutive features left
// and right of one alignment series against the reference. Canonical
// introns start GT (or GC after an exon ending G) and end AG on the
// forward strand; the reverse strand checks the reverse complements.
// Both results are false when the bases are unavailable.
func NonCanonicalSplices(left, right *feature.Feature, dna DNA) (leftNC, rightNC bool) {
	if dna == nil {
		return false, false
	}
	// last exon base and two intron bases, two intron bases and first exon base
	l := strings.ToUpper(dna(left.X2, left.X2+2))
	r := strings.ToUpper(dna(right.X1-2, right.X1))
	if len(l) < 3 || len(r) < 3 {
		return false, false
	}

	if left.Strand != seq.Minus {
		leftNC = l[1:3] != "GT" && l != "GGC"
		rightNC = r[0:2] != "AG"
		return leftNC, rightNC
	}
	leftNC = l[1:3] != "CT"
	rightNC = r[0:2] != "AC" && r != "GCC"
	return leftNC, rightNC
}
