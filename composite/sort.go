package composite

import (
	"cmp"
	"slices"

	"github.com/gogpu/gg-genome/feature"
)

// gapped reports whether f has a usable gapped block structure.
func gapped(f *feature.Feature) bool {
	blocks := f.Blocks()
	return len(blocks) >= 2 && feature.CheckBlocks(blocks) == nil
}

// Compare orders features for compositing: by strand, then gapped before
// ungapped. Gapped features are ordered by block count, most first, then by
// their internal block boundaries so that squashable features are adjacent.
// Ungapped features are ordered by start, then by end descending.
// Features that Compare as equal keep their relative order under Sort.
func Compare(a, b *feature.Feature) int {
	if c := cmp.Compare(a.Strand, b.Strand); c != 0 {
		return c
	}
	ga, gb := gapped(a), gapped(b)
	switch {
	case ga && !gb:
		return -1
	case !ga && gb:
		return 1
	case !ga:
		if c := cmp.Compare(a.X1, b.X1); c != 0 {
			return c
		}
		return cmp.Compare(b.X2, a.X2)
	}

	ba, bb := a.Blocks(), b.Blocks()
	if c := cmp.Compare(len(bb), len(ba)); c != 0 {
		return c
	}
	n := len(ba)
	for i := range n {
		if i > 0 {
			if c := cmp.Compare(ba[i].T1, bb[i].T1); c != 0 {
				return c
			}
		}
		if i < n-1 {
			if c := cmp.Compare(ba[i].T2, bb[i].T2); c != 0 {
				return c
			}
		}
	}
	return 0
}

// Sort stably sorts features with Compare.
func Sort(features []*feature.Feature) {
	slices.SortStableFunc(features, Compare)
}

// canSquash reports whether f has the same internal block boundaries as
// rep. Only the start of the first block and the end of the last may
// differ.
func canSquash(rep, f *feature.Feature) bool {
	a, b := rep.Blocks(), f.Blocks()
	if len(a) < 2 || len(a) != len(b) {
		return false
	}
	n := len(a)
	for i := range n {
		if i > 0 && a[i].T1 != b[i].T1 {
			return false
		}
		if i < n-1 && a[i].T2 != b[i].T2 {
			return false
		}
	}
	return true
}
