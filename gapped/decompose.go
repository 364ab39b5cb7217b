package gapped

import (
	"github.com/biogo/biogo/seq"

	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/geom"
)

// forward reports whether block boundaries are read start to end. It is
// false when exactly one of the feature and its homology is reversed.
func forward(f *feature.Feature) bool {
	fwd := f.Homol == nil || f.Strand == f.Homol.Strand
	if f.Homol != nil && f.Homol.Strand == seq.Minus {
		fwd = !fwd
	}
	return fwd
}

// Decompose appends the segments of f's match blocks at view t to dst and
// returns dst. Coordinates are device pixels relative to f.X1 and clamped
// to the feature's own extent. threshold is the colinearity tolerance for
// intron lines.
//
// Blocks whose device extents touch merge into one box with an HLine at
// the stitch; blocks separated by at least one pixel become separate boxes
// joined by a VLine, or a VLineIntron when the boundary is an intron. The
// first and last boxes of a squashed composite stay separate when they are
// tall enough to see.
func Decompose(dst *Segments, f *feature.Feature, t geom.Transform, threshold int) *Segments {
	blocks := f.Blocks()
	n := len(blocks)
	if n == 0 {
		return dst
	}
	yOf := func(wy int) int {
		_, y := t.WorldToCanvas(0, float64(wy))
		return y
	}
	fy1 := yOf(f.X1)
	fwd := forward(f)
	base := len(dst.List)

	last := -1
	for i, b := range blocks {
		cy1 := yOf(b.T1) - fy1
		cy2 := yOf(b.T2+1) - fy1

		edge := false
		if last >= 0 {
			box := &dst.List[last]
			if i == 1 && f.Flags.SquashedStart {
				box.Edge = true
				if box.Y2-box.Y1 > 2 {
					last = -1
				}
			}
			if i == n-1 && f.Flags.SquashedEnd {
				if last >= 0 && dst.List[last].Y2-dst.List[last].Y1 > 2 {
					last = -1
				}
				edge = true
			}
		}

		if last >= 0 {
			lastY2 := dst.List[last].Y2
			switch {
			case lastY2 == cy1 && cy2 != cy1:
				dst.add(Segment{Kind: HLine, Y1: lastY2, Y2: lastY2})
				dst.List[last].Y2 = cy2
			case lastY2 < cy1-1:
				seg := Segment{Kind: VLine, Y1: lastY2, Y2: cy1}
				boundary := b.StartBoundary
				if !fwd {
					boundary = b.EndBoundary
				}
				if boundary == feature.BoundaryIntron {
					seg.Kind = VLineIntron
					seg.Colinearity = IntraColinearity(blocks[i-1], b, threshold)
				}
				dst.add(seg)
			case lastY2 > cy1 && cy2 > lastY2:
				// blocks out of target order
				dst.List[last].Y2 = cy2
			}
			if lastY2 < cy1 {
				last = -1
			}
		}

		if last < 0 {
			last = dst.add(Segment{Kind: Box, Y1: cy1, Y2: cy2, Edge: edge})
		}
	}

	height := yOf(f.X2+1) - fy1
	for i := base; i < len(dst.List); i++ {
		s := &dst.List[i]
		s.Y1 = min(max(s.Y1, 0), height)
		s.Y2 = min(max(s.Y2, 0), height)
	}
	return dst
}
