package canvas

import (
	"slices"

	"github.com/biogo/store/interval"

	genome "github.com/gogpu/gg-genome"
	"github.com/gogpu/gg-genome/feature"
)

// span is a displayed feature in the pick index. Ranges are half open.
type span struct {
	f  *feature.Feature
	id uintptr
}

func (s span) ID() uintptr { return s.id }

func (s span) Range() interval.IntRange {
	return interval.IntRange{Start: s.f.X1, End: s.f.X2 + 1}
}

func (s span) Overlap(b interval.IntRange) bool {
	return s.f.X2+1 > b.Start && s.f.X1 < b.End
}

// query is the half open world range [start, end).
type query struct {
	start, end int
}

func (q query) ID() uintptr { return 0 }

func (q query) Range() interval.IntRange {
	return interval.IntRange{Start: q.start, End: q.end}
}

func (q query) Overlap(b interval.IntRange) bool {
	return q.end > b.Start && q.start < b.End
}

// index finds displayed features by world position.
type index struct {
	tree  *interval.IntTree
	items []*feature.Feature
}

func newIndex(features []*feature.Feature) index {
	ix := index{tree: &interval.IntTree{}, items: features}
	for i, f := range features {
		if err := ix.tree.Insert(span{f: f, id: uintptr(i)}, true); err != nil {
			genome.Logger().Warn("canvas: feature not indexed", "feature", f.ID, "err", err)
		}
	}
	ix.tree.AdjustRanges()
	return ix
}

// overlapping returns the features sharing a base with [x1, x2] in display
// order.
func (ix index) overlapping(x1, x2 int) []*feature.Feature {
	if ix.tree == nil || x2 < x1 {
		return nil
	}
	hits := ix.tree.Get(query{start: x1, end: x2 + 1})
	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = int(h.ID())
	}
	slices.Sort(ids)
	out := make([]*feature.Feature, len(ids))
	for i, id := range ids {
		out[i] = ix.items[id]
	}
	return out
}
