package composite

import (
	genome "github.com/gogpu/gg-genome"
	"github.com/gogpu/gg-genome/feature"
)

// consensusAlphabet lists the consensus symbols in tie-break order.
const consensusAlphabet = "nacgt"

func baseIndex(b byte) int {
	switch b | 0x20 {
	case 'a':
		return 1
	case 'c':
		return 2
	case 'g':
		return 3
	case 't':
		return 4
	}
	return 0
}

// consensusLen returns the number of query bases covered by comp.
func consensusLen(comp *feature.Feature) int {
	blocks := comp.Blocks()
	if len(blocks) == 0 {
		return comp.X2 - comp.X1 + 1
	}
	n := 0
	for _, b := range blocks {
		n = max(n, b.Q2)
	}
	return n
}

// Consensus returns the majority base at each position of comp over the
// sequences of its children, or "" when no child carries a sequence.
// Each child's sequence is read from its aligned query start and placed at
// its offset from the composite's start. Ties go to the earlier symbol of
// "nacgt"; positions no child covers are 'n'.
func (c *Compositor) Consensus(comp *feature.Feature) string {
	n := consensusLen(comp)
	if n <= 0 {
		return ""
	}

	const k = len(consensusAlphabet)
	if cap(c.tally) < n*k {
		c.tally = make([]int, n*k)
	}
	tally := c.tally[:n*k]
	clear(tally)

	seen := false
	for _, f := range comp.Children {
		if f.Homol == nil || f.Homol.Sequence == "" {
			continue
		}
		seen = true
		s := f.Homol.Sequence
		y1, y2 := f.Homol.Y1, f.Homol.Y2
		if y1 > 1 && y1-1 < len(s) {
			s = s[y1-1:]
		}
		if y1 > 0 && y2 >= y1 && y2-y1+1 < len(s) {
			s = s[:y2-y1+1]
		}
		i := f.X1 - comp.X1
		if i+len(s) > n {
			genome.Logger().Warn("composite: consensus length mismatch",
				"feature", comp.ID, "child", f.ID, "need", i+len(s), "have", n)
		}
		for j := 0; i < n && j < len(s); i, j = i+1, j+1 {
			if i >= 0 {
				tally[i*k+baseIndex(s[j])]++
			}
		}
	}
	if !seen {
		return ""
	}

	out := make([]byte, n)
	for i := range n {
		best, most := 0, 0
		for j, count := range tally[i*k : (i+1)*k] {
			if count > most {
				best, most = j, count
			}
		}
		out[i] = consensusAlphabet[best]
	}
	return string(out)
}
