package gapped

import (
	"testing"

	"github.com/biogo/biogo/seq"

	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/geom"
)

func block(t1, t2, q1, q2 int, start, end feature.Boundary) feature.MatchBlock {
	return feature.MatchBlock{
		T1: t1, T2: t2, Q1: q1, Q2: q2,
		TStrand: seq.Plus, QStrand: seq.Plus,
		StartBoundary: start, EndBoundary: end,
	}
}

func alignment(x1, x2 int, blocks ...feature.MatchBlock) *feature.Feature {
	return &feature.Feature{
		ID:     "read",
		X1:     x1,
		X2:     x2,
		Strand: seq.Plus,
		Kind:   feature.KindAlignment,
		Homol:  &feature.Homol{Strand: seq.Plus, Blocks: blocks},
	}
}

func checkSegments(t *testing.T, got []Segment, want []Segment) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("segments = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecomposeIntron(t *testing.T) {
	f := alignment(100, 300,
		block(100, 150, 1, 51, feature.BoundaryEdge, feature.BoundaryIntron),
		block(201, 300, 52, 151, feature.BoundaryIntron, feature.BoundaryEdge))

	segs := Decompose(NewSegments(), f, geom.View(1, 0, 0, 0), 0)
	checkSegments(t, segs.List, []Segment{
		{Kind: Box, Y1: 0, Y2: 51},
		{Kind: VLineIntron, Y1: 51, Y2: 101, Colinearity: Perfect},
		{Kind: Box, Y1: 101, Y2: 201},
	})
}

func TestDecomposeGapKinds(t *testing.T) {
	f := alignment(100, 300,
		block(100, 150, 1, 51, 0, feature.BoundaryMatch),
		block(201, 300, 60, 159, feature.BoundaryMatch, 0))

	segs := Decompose(NewSegments(), f, geom.View(1, 0, 0, 0), 3)
	if segs.Len() != 3 || segs.List[1].Kind != VLine {
		t.Fatalf("segments = %+v, want box, vline, box", segs.List)
	}
}

func TestDecomposeTouchingBlocks(t *testing.T) {
	f := alignment(100, 199,
		block(100, 149, 1, 50, 0, feature.BoundaryMatch),
		block(150, 199, 51, 100, feature.BoundaryMatch, 0))

	segs := Decompose(NewSegments(), f, geom.View(0.1, 0, 0, 0), 0)
	checkSegments(t, segs.List, []Segment{
		{Kind: Box, Y1: 0, Y2: 10},
		{Kind: HLine, Y1: 5, Y2: 5},
	})
}

func TestDecomposeSubPixelGap(t *testing.T) {
	f := alignment(100, 300,
		block(100, 150, 1, 51, 0, feature.BoundaryIntron),
		block(156, 300, 52, 196, feature.BoundaryIntron, 0))

	segs := Decompose(NewSegments(), f, geom.View(0.1, 0, 0, 0), 0)
	checkSegments(t, segs.List, []Segment{
		{Kind: Box, Y1: 0, Y2: 5},
		{Kind: Box, Y1: 6, Y2: 20},
	})
}

func TestDecomposeSquashedEdges(t *testing.T) {
	f := alignment(10, 210,
		block(10, 19, 1, 10, feature.BoundaryEdge, feature.BoundaryEdge),
		block(20, 100, 11, 91, feature.BoundaryEdge, feature.BoundaryIntron),
		block(151, 200, 92, 141, feature.BoundaryIntron, feature.BoundaryEdge),
		block(201, 210, 142, 151, feature.BoundaryEdge, feature.BoundaryEdge))
	f.Flags.SquashedStart = true
	f.Flags.SquashedEnd = true

	segs := Decompose(NewSegments(), f, geom.View(1, 0, 0, 0), 0)
	checkSegments(t, segs.List, []Segment{
		{Kind: Box, Y1: 0, Y2: 10, Edge: true},
		{Kind: Box, Y1: 10, Y2: 91},
		{Kind: VLineIntron, Y1: 91, Y2: 141, Colinearity: Perfect},
		{Kind: Box, Y1: 141, Y2: 191},
		{Kind: Box, Y1: 191, Y2: 201, Edge: true},
	})
}

func TestDecomposeClamps(t *testing.T) {
	f := alignment(100, 120,
		block(100, 110, 1, 11, 0, 0),
		block(115, 130, 12, 27, 0, 0))

	segs := Decompose(NewSegments(), f, geom.View(1, 0, 0, 0), 0)
	for _, s := range segs.List {
		if s.Y1 < 0 || s.Y2 > 21 {
			t.Errorf("segment %+v outside feature height 21", s)
		}
	}
}

func TestDecomposeAppends(t *testing.T) {
	f := alignment(100, 300,
		block(100, 150, 1, 51, 0, 0),
		block(201, 300, 52, 151, 0, 0))
	segs := NewSegments()
	segs.List = append(segs.List, Segment{Kind: Box, Y1: -5, Y2: 500})

	Decompose(segs, f, geom.View(1, 0, 0, 0), 0)
	if segs.List[0].Y1 != -5 || segs.List[0].Y2 != 500 {
		t.Error("Decompose modified segments it did not add")
	}
	if segs.Len() != 4 {
		t.Errorf("Len() = %d, want 4", segs.Len())
	}
}

func TestDecomposeUngapped(t *testing.T) {
	f := &feature.Feature{X1: 1, X2: 10}
	if got := Decompose(NewSegments(), f, geom.Identity(), 0); got.Len() != 0 {
		t.Errorf("ungapped Decompose() = %+v, want none", got.List)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		end, start int
		threshold  int
		want       Colinearity
	}{
		{"consecutive", 50, 51, 3, Perfect},
		{"at threshold", 50, 54, 3, Colinear},
		{"beyond threshold", 50, 55, 3, NotColinear},
		{"overlap within threshold", 50, 48, 3, Colinear},
		{"overlap beyond threshold", 50, 40, 3, NotColinear},
		{"zero threshold", 50, 52, 0, NotColinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.end, tt.start, tt.threshold); got != tt.want {
				t.Errorf("Classify(%d, %d, %d) = %v, want %v", tt.end, tt.start, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestIntraColinearityReverse(t *testing.T) {
	a := feature.MatchBlock{T1: 10, T2: 19, Q1: 6, Q2: 15, TStrand: seq.Plus, QStrand: seq.Minus}
	b := feature.MatchBlock{T1: 50, T2: 54, Q1: 1, Q2: 5, TStrand: seq.Plus, QStrand: seq.Minus}
	if got := IntraColinearity(a, b, 0); got != Perfect {
		t.Errorf("IntraColinearity() = %v, want perfect", got)
	}
}

func TestInterColinearity(t *testing.T) {
	tests := []struct {
		name          string
		strand        seq.Strand
		first, second [2]int
		want          Colinearity
	}{
		{"forward perfect", seq.Plus, [2]int{1, 50}, [2]int{51, 100}, Perfect},
		{"forward gap", seq.Plus, [2]int{1, 50}, [2]int{60, 100}, NotColinear},
		{"reversed order", seq.Minus, [2]int{51, 100}, [2]int{1, 50}, Perfect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &feature.Feature{Strand: tt.strand, Homol: &feature.Homol{Strand: seq.Plus, Y1: tt.first[0], Y2: tt.first[1]}}
			next := &feature.Feature{Strand: tt.strand, Homol: &feature.Homol{Strand: seq.Plus, Y1: tt.second[0], Y2: tt.second[1]}}
			if got := InterColinearity(f, next, 5); got != tt.want {
				t.Errorf("InterColinearity() = %v, want %v", got, tt.want)
			}
		})
	}
	if got := InterColinearity(&feature.Feature{}, &feature.Feature{}, 0); got != NotColinear {
		t.Errorf("InterColinearity() without homology = %v", got)
	}
}

func TestSubPartAt(t *testing.T) {
	blocks := []feature.MatchBlock{block(100, 150, 1, 51, 0, 0), block(201, 300, 52, 151, 0, 0)}
	tests := []struct {
		name   string
		strand seq.Strand
		y      int
		want   feature.SubPart
	}{
		{"first match", seq.Plus, 120, feature.SubPart{Kind: feature.SubPartMatch, Index: 1, X1: 100, X2: 150}},
		{"gap", seq.Plus, 180, feature.SubPart{Kind: feature.SubPartGap, Index: 1, X1: 151, X2: 200}},
		{"second match", seq.Plus, 300, feature.SubPart{Kind: feature.SubPartMatch, Index: 2, X1: 201, X2: 300}},
		{"reverse match", seq.Minus, 120, feature.SubPart{Kind: feature.SubPartMatch, Index: 2, X1: 100, X2: 150}},
		{"reverse gap", seq.Minus, 151, feature.SubPart{Kind: feature.SubPartGap, Index: 1, X1: 151, X2: 200}},
		{"outside", seq.Plus, 50, feature.SubPart{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := alignment(100, 300, blocks...)
			f.Strand = tt.strand
			if got := SubPartAt(f, tt.y); got != tt.want {
				t.Errorf("SubPartAt(%d) = %+v, want %+v", tt.y, got, tt.want)
			}
		})
	}
}

func TestSubPartAtTranscript(t *testing.T) {
	f := &feature.Feature{
		Kind:    feature.KindTranscript,
		Strand:  seq.Plus,
		Exons:   []feature.Span{{X1: 10, X2: 20}, {X1: 30, X2: 40}},
		Introns: []feature.Span{{X1: 21, X2: 29}},
	}
	if got := SubPartAt(f, 35); got.Kind != feature.SubPartExon || got.Index != 2 {
		t.Errorf("SubPartAt(35) = %+v, want exon 2", got)
	}
	if got := SubPartAt(f, 25); got.Kind != feature.SubPartIntron || got.Index != 1 {
		t.Errorf("SubPartAt(25) = %+v, want intron 1", got)
	}
	if got := SubPartAt(f, 5); !got.IsZero() {
		t.Errorf("SubPartAt(5) = %+v, want zero", got)
	}
}

func refDNA(ref string) DNA {
	return func(x1, x2 int) string {
		if x1 < 1 || x2 > len(ref) || x1 > x2 {
			return ""
		}
		return ref[x1-1 : x2]
	}
}

func TestNonCanonicalSplices(t *testing.T) {
	tests := []struct {
		name                string
		ref                 string
		strand              seq.Strand
		wantLeft, wantRight bool
	}{
		{"canonical GT-AG", "AAGGTCCAGTTT", seq.Plus, false, false},
		{"canonical GC donor", "AAGGCCCAGTTT", seq.Plus, false, false},
		{"non-canonical", "AAGAACCTTTTT", seq.Plus, true, true},
		{"reverse canonical", "AAGCTCCACTTT", seq.Minus, false, false},
		{"reverse non-canonical", "AAGGTCCAGTTT", seq.Minus, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := &feature.Feature{X1: 1, X2: 3, Strand: tt.strand}
			right := &feature.Feature{X1: 10, X2: 12, Strand: tt.strand}
			l, r := NonCanonicalSplices(left, right, refDNA(tt.ref))
			if l != tt.wantLeft || r != tt.wantRight {
				t.Errorf("NonCanonicalSplices() = %v, %v, want %v, %v", l, r, tt.wantLeft, tt.wantRight)
			}
		})
	}

	left := &feature.Feature{X1: 1, X2: 3}
	right := &feature.Feature{X1: 10, X2: 12}
	if l, r := NonCanonicalSplices(left, right, nil); l || r {
		t.Error("NonCanonicalSplices() without DNA reported a splice")
	}
	if l, r := NonCanonicalSplices(left, right, refDNA("ACG")); l || r {
		t.Error("NonCanonicalSplices() with short DNA reported a splice")
	}
}

func TestPool(t *testing.T) {
	p := NewPool()

	s := p.Get()
	s.List = append(s.List, Segment{Kind: Box, Y1: 1, Y2: 2})
	p.Put(s)
	p.Put(nil)

	if got := p.Get(); got.Len() != 0 {
		t.Errorf("Get() returned %d stale segments", got.Len())
	}
}

func TestSegmentKindString(t *testing.T) {
	if VLineIntron.String() != "vline-intron" || SegmentKind(9).String() != "SegmentKind(9)" {
		t.Error("SegmentKind.String() mismatch")
	}
	if NotColinear.String() != "not-colinear" {
		t.Errorf("NotColinear.String() = %q", NotColinear.String())
	}
}
