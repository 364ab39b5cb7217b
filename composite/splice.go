package composite

import (
	"slices"
	"sort"

	"github.com/gogpu/gg-genome/feature"
)

// SpliceSet is a sorted set of genomic positions at which an intron
// boundary was observed.
type SpliceSet struct {
	coords []int
	sorted bool
}

// Add records a splice coordinate.
func (s *SpliceSet) Add(x int) {
	s.coords = append(s.coords, x)
	s.sorted = false
}

// AddGaps records both boundaries of every gap of at least minIntronLen
// bases between consecutive match blocks.
func (s *SpliceSet) AddGaps(blocks []feature.MatchBlock, minIntronLen int) {
	for i := 1; i < len(blocks); i++ {
		prev, next := blocks[i-1], blocks[i]
		if next.T1-prev.T2-1 >= minIntronLen {
			s.Add(prev.T2)
			s.Add(next.T1)
		}
	}
}

func (s *SpliceSet) sort() {
	if s.sorted {
		return
	}
	slices.Sort(s.coords)
	s.coords = slices.Compact(s.coords)
	s.sorted = true
}

// Coords returns the recorded coordinates in ascending order.
func (s *SpliceSet) Coords() []int {
	s.sort()
	return s.coords
}

// Len returns the number of distinct coordinates.
func (s *SpliceSet) Len() int {
	s.sort()
	return len(s.coords)
}

// Crosses reports whether the span [x1, x2] strictly contains a recorded
// coordinate widened by wobble on both sides.
func (s *SpliceSet) Crosses(x1, x2, wobble int) bool {
	s.sort()
	i := sort.SearchInts(s.coords, x1+wobble+1)
	return i < len(s.coords) && s.coords[i]+wobble < x2
}
