package feature

import (
	"errors"
	"fmt"

	"github.com/biogo/biogo/seq"
)

// Boundary classifies one end of a match block.
type Boundary uint8

// Block boundaries. An INTRON boundary means the gap next to it is genuine
// genomic distance; EDGE means it was synthesised at a squashed edge.
const (
	BoundaryUnset Boundary = iota
	BoundaryEdge
	BoundaryMatch
	BoundaryIntron
)

var boundaryNames = [...]string{"unset", "edge", "match", "intron"}

func (b Boundary) String() string {
	if int(b) < len(boundaryNames) {
		return boundaryNames[b]
	}
	return "Boundary(?)"
}

// MatchBlock is one contiguous aligned segment of a gapped alignment.
// T1 <= T2 always; Q1 <= Q2 in query coordinates regardless of strand.
type MatchBlock struct {
	T1, T2  int
	Q1, Q2  int
	TStrand seq.Strand
	QStrand seq.Strand

	StartBoundary Boundary
	EndBoundary   Boundary
}

// TLen returns the number of target bases in the block.
func (b MatchBlock) TLen() int { return b.T2 - b.T1 + 1 }

// QLen returns the number of query bases in the block.
func (b MatchBlock) QLen() int { return b.Q2 - b.Q1 + 1 }

// Homol is the homology payload of an alignment feature.
type Homol struct {
	// Y1, Y2 is the aligned query range.
	Y1, Y2 int
	Strand seq.Strand
	Length int

	// Sequence is the full query sequence if known.
	Sequence string

	// Blocks are sorted by T1 and do not overlap in target space.
	Blocks []MatchBlock
}

// Block structure problems reported by CheckBlocks.
var (
	ErrSingleBlock   = errors.New("feature: gapped alignment has a single match block")
	ErrBlockOrder    = errors.New("feature: match blocks overlap or are out of order")
	ErrBlockLength   = errors.New("feature: match block query and target lengths differ")
	ErrBlockInverted = errors.New("feature: match block has start after end")
)

// CheckBlocks validates a match block array for use as a gapped alignment.
func CheckBlocks(blocks []MatchBlock) error {
	if len(blocks) == 1 {
		return ErrSingleBlock
	}
	for i, b := range blocks {
		if b.T1 > b.T2 || b.Q1 > b.Q2 {
			return fmt.Errorf("%w: block %d", ErrBlockInverted, i)
		}
		if b.TLen() != b.QLen() {
			return fmt.Errorf("%w: block %d (%d, %d)", ErrBlockLength, i, b.TLen(), b.QLen())
		}
		if i > 0 && b.T1 <= blocks[i-1].T2 {
			return fmt.Errorf("%w: block %d", ErrBlockOrder, i)
		}
	}
	return nil
}
