package composite

import "github.com/gogpu/gg-genome/feature"

// makeGaps builds the match blocks of a squashed composite from its
// representative rep. Internal blocks are copied unchanged. Where members
// disagree about an outer edge, the region between the union edge (y1, y2)
// and the edge shared by all members (edge1, edge2) becomes a separate
// block with an EDGE boundary. Query coordinates are renumbered from 1 in
// alignment order. rep's blocks are not modified.
func makeGaps(rep *feature.Feature, y1, edge1, y2, edge2 int) []feature.MatchBlock {
	src := rep.Blocks()
	if len(src) < 2 {
		return append([]feature.MatchBlock(nil), src...)
	}
	blocks := make([]feature.MatchBlock, 0, len(src)+2)

	first := src[0]
	if rep.X1 != y1 || edge1 != rep.X1 {
		blocks = append(blocks, feature.MatchBlock{
			T1:            y1,
			T2:            edge1 - 1,
			TStrand:       first.TStrand,
			QStrand:       first.QStrand,
			StartBoundary: feature.BoundaryEdge,
			EndBoundary:   feature.BoundaryEdge,
		})
		first.T1 = edge1
		first.StartBoundary = feature.BoundaryEdge
	}
	blocks = append(blocks, first)
	blocks = append(blocks, src[1:]...)

	if rep.X2 != y2 || edge2 != rep.X2 {
		last := &blocks[len(blocks)-1]
		last.T2 = edge2
		last.EndBoundary = feature.BoundaryEdge
		blocks = append(blocks, feature.MatchBlock{
			T1:            edge2 + 1,
			T2:            y2,
			TStrand:       last.TStrand,
			QStrand:       last.QStrand,
			StartBoundary: feature.BoundaryEdge,
			EndBoundary:   feature.BoundaryEdge,
		})
	}

	requery(blocks)
	return blocks
}

// requery renumbers query coordinates contiguously from 1, walking the
// blocks backwards when query and target run in opposite directions.
func requery(blocks []feature.MatchBlock) {
	if len(blocks) == 0 {
		return
	}
	q := 1
	set := func(b *feature.MatchBlock) {
		b.Q1 = q
		q += b.T2 - b.T1
		b.Q2 = q
		q++
	}
	if blocks[0].QStrand == blocks[0].TStrand {
		for i := range blocks {
			set(&blocks[i])
		}
		return
	}
	for i := len(blocks) - 1; i >= 0; i-- {
		set(&blocks[i])
	}
}
