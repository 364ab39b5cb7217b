package gapped

import "fmt"

// SegmentKind discriminates gap segments.
type SegmentKind uint8

// Segment kinds.
const (
	// Box is a filled match region.
	Box SegmentKind = iota
	// HLine marks a stitch between two blocks that touch on screen.
	HLine
	// VLine joins two boxes across a gap that is not an intron.
	VLine
	// VLineIntron joins two boxes across an intron.
	VLineIntron
)

var segmentKindNames = [...]string{"box", "hline", "vline", "vline-intron"}

func (k SegmentKind) String() string {
	if int(k) < len(segmentKindNames) {
		return segmentKindNames[k]
	}
	return fmt.Sprintf("SegmentKind(%d)", k)
}

// Segment is one drawable piece of a gapped alignment. Y1 and Y2 are device
// pixels relative to the top of the feature.
type Segment struct {
	Kind   SegmentKind
	Y1, Y2 int

	// Edge marks boxes synthesised at a squashed composite's outer edge.
	Edge bool

	// Colinearity is set on VLineIntron segments.
	Colinearity Colinearity
}

// Segments is a reusable segment list.
type Segments struct {
	List []Segment
}

// NewSegments creates an empty list with room for a typical alignment.
func NewSegments() *Segments {
	return &Segments{List: make([]Segment, 0, 8)}
}

// Reset empties the list, keeping its storage.
func (s *Segments) Reset() {
	s.List = s.List[:0]
}

// Len returns the number of segments.
func (s *Segments) Len() int { return len(s.List) }

func (s *Segments) add(seg Segment) int {
	s.List = append(s.List, seg)
	return len(s.List) - 1
}
