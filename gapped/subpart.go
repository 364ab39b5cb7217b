package gapped

import (
	"github.com/biogo/biogo/seq"

	"github.com/gogpu/gg-genome/feature"
)

// SubPartAt returns the match block or gap of an alignment, or the exon or
// intron of a transcript, containing world coordinate y. Indexes count from
// 1 at the feature's 5' end, so they run backwards on the reverse strand.
// It returns the zero SubPart when y is outside every part or f has none.
func SubPartAt(f *feature.Feature, y int) feature.SubPart {
	if f.Kind == feature.KindTranscript {
		return transcriptPart(f, y)
	}
	blocks := f.Blocks()
	n := len(blocks)
	rev := f.Strand == seq.Minus
	for i, b := range blocks {
		if y >= b.T1 && y <= b.T2 {
			idx := i + 1
			if rev {
				idx = n - i
			}
			return feature.SubPart{Kind: feature.SubPartMatch, Index: idx, X1: b.T1, X2: b.T2}
		}
		if i > 0 {
			start, end := blocks[i-1].T2+1, b.T1-1
			if y >= start && y <= end {
				idx := i
				if rev {
					idx = n - i
				}
				return feature.SubPart{Kind: feature.SubPartGap, Index: idx, X1: start, X2: end}
			}
		}
	}
	return feature.SubPart{}
}

func transcriptPart(f *feature.Feature, y int) feature.SubPart {
	find := func(spans []feature.Span, kind feature.SubPartKind) (feature.SubPart, bool) {
		for i, s := range spans {
			if y >= s.X1 && y <= s.X2 {
				idx := i + 1
				if f.Strand == seq.Minus {
					idx = len(spans) - i
				}
				return feature.SubPart{Kind: kind, Index: idx, X1: s.X1, X2: s.X2}, true
			}
		}
		return feature.SubPart{}, false
	}
	if sp, ok := find(f.Exons, feature.SubPartExon); ok {
		return sp
	}
	sp, _ := find(f.Introns, feature.SubPartIntron)
	return sp
}
