package canvas

import (
	"image/color"
	"strings"
	"testing"

	"github.com/biogo/biogo/seq"
	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/focus"
	"github.com/gogpu/gg-genome/gapped"
	"github.com/gogpu/gg-genome/geom"
	"github.com/gogpu/gg-genome/style"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

func box(id string, x1, x2 int) *feature.Feature {
	return &feature.Feature{ID: id, Name: id, X1: x1, X2: x2, Kind: feature.KindBasic}
}

// read builds a forward alignment from target spans with introns between
// them.
func read(id, name string, spans ...[2]int) *feature.Feature {
	f := &feature.Feature{
		ID:     id,
		Name:   name,
		X1:     spans[0][0],
		X2:     spans[len(spans)-1][1],
		Strand: seq.Plus,
		Kind:   feature.KindAlignment,
		Homol:  &feature.Homol{Strand: seq.Plus, Y1: 1},
	}
	q := 1
	for i, s := range spans {
		b := feature.MatchBlock{
			T1: s[0], T2: s[1],
			Q1: q, Q2: q + s[1] - s[0],
			TStrand: seq.Plus, QStrand: seq.Plus,
		}
		if i > 0 {
			b.StartBoundary = feature.BoundaryIntron
			f.Homol.Blocks[i-1].EndBoundary = feature.BoundaryIntron
		}
		q = b.Q2 + 1
		f.Homol.Blocks = append(f.Homol.Blocks, b)
	}
	f.Homol.Y2 = q - 1
	if len(spans) == 1 {
		f.Homol.Blocks = nil
	}
	return f
}

func basicStyle() *style.Style {
	return &style.Style{ID: "genes", Mode: style.ModeBasic, Width: 10, Colours: style.Colours{Fill: red}}
}

func alignStyle() *style.Style {
	return &style.Style{
		ID:               "est",
		Mode:             style.ModeAlignment,
		Width:            8,
		Colours:          style.Colours{Fill: blue},
		ShowGaps:         true,
		WithinAlignError: 2,
	}
}

func view(end int, ppb float64) Option {
	return WithView(View{Start: 1, End: end, PixelsPerBase: ppb})
}

func TestNewOptions(t *testing.T) {
	ctx := New(
		WithMinIntronLen(10),
		WithMaxWobble(2),
		WithFocusColours(focus.Focus, style.Colours{Fill: green}),
		view(500, 0.5),
	)
	if got := ctx.Compositor().MinIntronLen(); got != 10 {
		t.Errorf("MinIntronLen() = %d, want 10", got)
	}
	if got := ctx.Compositor().MaxWobble(); got != 2 {
		t.Errorf("MaxWobble() = %d, want 2", got)
	}
	if c, ok := ctx.Focus().Colours(focus.Focus); !ok || c.Fill != green {
		t.Errorf("focus colours = %v, %v, want green", c.Fill, ok)
	}
	if v := ctx.View(); v.End != 500 || v.PixelsPerBase != 0.5 {
		t.Errorf("View() = %+v", v)
	}
	if h := ctx.View().Height(); h != 250 {
		t.Errorf("Height() = %v, want 250", h)
	}
}

func TestBasicPaint(t *testing.T) {
	ctx := New(view(100, 1))
	fs := ctx.NewFeatureSet("genes", basicStyle(), 1, 200)
	a, b := box("a", 11, 20), box("b", 31, 40)
	fs.Add(a, b, box("c", 150, 160))

	rec := &recorder{}
	if err := fs.Paint(rec); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	got := rec.fills(red)
	want := []geom.Rect{{X1: 0, Y1: 10, X2: 10, Y2: 20}, {X1: 0, Y1: 30, X2: 10, Y2: 40}}
	if len(got) != len(want) {
		t.Fatalf("filled %d boxes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("box %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if r := fs.Extent(a); r != want[0] {
		t.Errorf("Extent() = %+v, want %+v", r, want[0])
	}
	if a.Style == nil {
		t.Error("Add() did not give the feature the column style")
	}
}

func TestScoreWidth(t *testing.T) {
	st := basicStyle()
	st.ScoreMode = style.ScoreWidth
	st.MinScore, st.MaxScore = 1, 101

	ctx := New(view(100, 1))
	fs := ctx.NewFeatureSet("genes", st, 1, 100)
	f := box("a", 11, 20)
	f.Score, f.HasScore = 51, true
	fs.Add(f)

	r := fs.Extent(f)
	if r.X1 != 1.875 || r.X2 != 8.125 {
		t.Errorf("Extent() x = %v-%v, want 1.875-8.125", r.X1, r.X2)
	}
}

func TestTranscriptPaint(t *testing.T) {
	st := basicStyle()
	st.Mode = style.ModeTranscript
	ctx := New(view(100, 1))
	fs := ctx.NewFeatureSet("genes", st, 1, 100)
	fs.Add(&feature.Feature{
		ID: "t", X1: 11, X2: 50, Kind: feature.KindTranscript,
		Exons:   []feature.Span{{X1: 11, X2: 20}, {X1: 41, X2: 50}},
		Introns: []feature.Span{{X1: 21, X2: 40}},
	})

	rec := &recorder{}
	if err := fs.Paint(rec); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if got := rec.fills(red); len(got) != 2 || got[1] != (geom.Rect{X1: 0, Y1: 40, X2: 10, Y2: 50}) {
		t.Errorf("exons = %+v", got)
	}
	lines := rec.strokes(red)
	if len(lines) != 1 {
		t.Fatalf("intron lines = %d, want 1", len(lines))
	}
	want := []geom.Point{{X: 5, Y: 20}, {X: 10, Y: 30}, {X: 5, Y: 40}}
	for i, p := range want {
		if lines[0][i] != p {
			t.Errorf("intron point %d = %v, want %v", i, lines[0][i], p)
		}
	}
}

func TestBumpLanes(t *testing.T) {
	ctx := New(view(100, 1))
	fs := ctx.NewFeatureSet("genes", basicStyle(), 1, 100)
	a, b, c := box("a", 11, 30), box("b", 21, 40), box("c", 35, 50)
	fs.Add(a, b, c)

	if w := fs.Width(); w != 10 {
		t.Errorf("unbumped Width() = %v, want 10", w)
	}
	fs.Bump(true)
	if w := fs.Width(); w != 20 {
		t.Errorf("bumped Width() = %v, want 20", w)
	}
	tests := []struct {
		f    *feature.Feature
		want float64
	}{{a, 0}, {b, 10}, {c, 0}}
	for _, tt := range tests {
		if x := fs.Extent(tt.f).X1; x != tt.want {
			t.Errorf("Extent(%s).X1 = %v, want %v", tt.f.ID, x, tt.want)
		}
	}
	fs.Bump(false)
	if x := fs.Extent(b).X1; x != 0 {
		t.Errorf("unbumped Extent(b).X1 = %v, want 0", x)
	}
}

func TestAlignmentSquash(t *testing.T) {
	st := alignStyle()
	st.Squash = true
	ctx := New(view(300, 1))
	fs := ctx.NewFeatureSet("est", st, 1, 300)
	fs.Add(
		read("a", "a", [2]int{10, 100}, [2]int{151, 205}),
		read("b", "b", [2]int{15, 100}, [2]int{151, 210}),
		read("c", "c", [2]int{20, 100}, [2]int{151, 200}),
	)
	fs.Bump(true)

	if n := len(fs.Composites()); n != 1 {
		t.Fatalf("Composites() = %d, want 1", n)
	}
	display := fs.Display()
	if len(display) != 1 || display[0].Population != 3 {
		t.Fatalf("Display() = %v, want the composite of 3", display)
	}
	comp := display[0]

	rec := &recorder{}
	if err := fs.Paint(rec); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	boxes, introns := 0, 0
	for _, s := range fs.Segments(comp).List {
		switch {
		case s.Kind == gapped.Box && !s.Edge:
			boxes++
		case s.Kind == gapped.VLineIntron:
			introns++
		}
	}
	if got := len(rec.fills(blue)); got != boxes {
		t.Errorf("filled %d boxes, want %d", got, boxes)
	}
	if introns == 0 {
		t.Fatal("no intron segment")
	}
	perfect := style.DefaultColinearColours[style.ColinearPerfect]
	if got := len(rec.strokes(perfect)); got != introns {
		t.Errorf("intron lines = %d, want %d", got, introns)
	}
	if fs.Splices(seq.Plus) == nil {
		t.Error("Splices() = nil after squash")
	}
}

func TestSelectedCompositeAfterRebuild(t *testing.T) {
	st := alignStyle()
	st.Squash = true
	ctx := New(view(300, 1))
	fs := ctx.NewFeatureSet("est", st, 1, 300)
	fs.Add(
		read("a", "a", [2]int{10, 100}, [2]int{151, 205}),
		read("b", "b", [2]int{15, 100}, [2]int{151, 210}),
	)
	fs.Bump(true)
	if n := len(fs.Composites()); n != 1 {
		t.Fatalf("Composites() = %d, want 1", n)
	}
	old := fs.Composites()[0]
	fs.Select(old, feature.SubPart{})

	fs.Bump(false)
	comp := fs.Composites()[0]
	if comp == old {
		t.Fatal("Bump() kept the old composite")
	}
	hot := ctx.Focus().Hot()
	if hot == nil || hot.Feature != comp {
		t.Fatalf("Hot() after Bump() = %+v, want the new composite %v", hot, comp.ID)
	}
	if g := ctx.Focus().Groups(comp); g != focus.Focus {
		t.Errorf("Groups(new composite) = %v, want focus", g)
	}
	if g := ctx.Focus().Groups(old); g != 0 {
		t.Errorf("Groups(old composite) = %v, want none", g)
	}

	st.Squash = false
	fs.Rebuild()
	if hot := ctx.Focus().Hot(); hot != nil {
		t.Errorf("Hot() without composites = %+v, want nil", hot)
	}
	if n := ctx.Focus().Len(); n != 0 {
		t.Errorf("Focus().Len() = %d, want 0", n)
	}
}

func series3() []*feature.Feature {
	mk := func(id string, x1, x2, y1, y2 int) *feature.Feature {
		return &feature.Feature{
			ID: id, Name: "r1", X1: x1, X2: x2, Strand: seq.Plus,
			Kind:  feature.KindAlignment,
			Homol: &feature.Homol{Strand: seq.Plus, Y1: y1, Y2: y2},
		}
	}
	return []*feature.Feature{
		mk("r1.1", 11, 20, 1, 10),
		mk("r1.2", 41, 50, 11, 20),
		mk("r1.3", 71, 80, 25, 34),
	}
}

func TestSeriesColinearity(t *testing.T) {
	perfect := style.DefaultColinearColours[style.ColinearPerfect]
	not := style.DefaultColinearColours[style.ColinearNot]

	ctx := New(view(100, 1))
	fs := ctx.NewFeatureSet("est", alignStyle(), 1, 100)
	fs.Add(series3()...)

	rec := &recorder{}
	if err := fs.Paint(rec); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if n := len(rec.strokes(perfect)) + len(rec.strokes(not)); n != 0 {
		t.Errorf("unbumped column drew %d colinearity lines", n)
	}

	fs.Bump(true)
	rec = &recorder{}
	if err := fs.Paint(rec); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	lines := rec.strokes(perfect)
	if len(lines) != 1 {
		t.Fatalf("perfect lines = %d, want 1", len(lines))
	}
	if lines[0][0] != geom.Pt(4, 20) || lines[0][1] != geom.Pt(4, 40) {
		t.Errorf("perfect line = %v, want (4,20)-(4,40)", lines[0])
	}
	if got := len(rec.strokes(not)); got != 1 {
		t.Errorf("not colinear lines = %d, want 1", got)
	}
}

func TestNonCanonicalSplices(t *testing.T) {
	not := style.DefaultColinearColours[style.ColinearNot]
	dna := func(x1, x2 int) string { return strings.Repeat("a", x2-x1+1) }

	ctx := New(view(100, 1), WithDNA(dna))
	fs := ctx.NewFeatureSet("est", alignStyle(), 1, 100)
	fs.Add(series3()...)
	fs.Bump(true)

	rec := &recorder{}
	if err := fs.Paint(rec); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	markers := 0
	for _, d := range rec.draws {
		if !d.stroke && d.closed && d.colour == not {
			markers++
		}
	}
	if markers != 4 {
		t.Errorf("splice markers = %d, want 4", markers)
	}
}

func TestTruncation(t *testing.T) {
	ctx := New(view(100, 1))
	fs := ctx.NewFeatureSet("est", alignStyle(), 20, 100)
	fs.Add(read("a", "a", [2]int{11, 30}))

	rec := &recorder{}
	if err := fs.Paint(rec); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	found := false
	for _, pts := range rec.strokes(blue) {
		if len(pts) == 5 && pts[0] == geom.Pt(4, 19) {
			found = true
		}
	}
	if !found {
		t.Error("no start truncation marker at the span start")
	}
}

func TestSegmentsFollowZoom(t *testing.T) {
	ctx := New(view(100, 1))
	fs := ctx.NewFeatureSet("est", alignStyle(), 1, 100)
	f := read("a", "a", [2]int{11, 20}, [2]int{31, 40})
	fs.Add(f)

	segs := fs.Segments(f)
	if segs != fs.Segments(f) {
		t.Error("Segments() not cached")
	}
	if n := segs.Len(); n != 3 {
		t.Fatalf("segments = %d, want 3", n)
	}
	if y := segs.List[2].Y2; y != 30 {
		t.Errorf("last box Y2 = %d, want 30", y)
	}

	ctx.SetView(View{Start: 1, End: 100, PixelsPerBase: 2})
	if y := fs.Segments(f).List[2].Y2; y != 60 {
		t.Errorf("last box Y2 after zoom = %d, want 60", y)
	}
}

func TestPick(t *testing.T) {
	ctx := New(view(100, 1))
	genes := ctx.NewFeatureSet("genes", basicStyle(), 1, 100)
	a := box("a", 11, 20)
	genes.Add(a)

	est := ctx.NewFeatureSet("est", alignStyle(), 1, 100)
	est.SetX(20)
	r := read("r", "r", [2]int{11, 20}, [2]int{31, 40})
	est.Add(r)

	tests := []struct {
		name string
		x, y float64
		want *feature.Feature
		sub  feature.SubPartKind
	}{
		{"inside box", 5, 15, a, feature.SubPartNone},
		{"below box", 5, 60, nil, feature.SubPartNone},
		{"beside box", 15, 15, nil, feature.SubPartNone},
		{"alignment match", 24, 15, r, feature.SubPartMatch},
		{"alignment gap", 24, 25, r, feature.SubPartGap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f, sub := ctx.Pick(tt.x, tt.y)
			if f != tt.want {
				t.Errorf("Pick() = %v, want %v", f, tt.want)
			}
			if sub.Kind != tt.sub {
				t.Errorf("Pick() sub-part = %v, want %v", sub.Kind, tt.sub)
			}
		})
	}
}

func TestSelectHotColumn(t *testing.T) {
	ctx := New(view(100, 1), WithFocusColours(focus.Focus, style.Colours{Fill: green}))
	colA := ctx.NewFeatureSet("a", basicStyle(), 1, 100)
	colB := ctx.NewFeatureSet("b", basicStyle(), 1, 100)
	colB.SetX(20)
	fa, other := box("fa", 11, 20), box("other", 31, 40)
	fb := box("fb", 11, 20)
	colA.Add(fa, other)
	colB.Add(fb)

	colA.Select(fa, feature.SubPart{})
	if hot := ctx.Focus().Hot(); hot == nil || hot.Feature != fa {
		t.Fatalf("Hot() = %v, want fa", hot)
	}
	if !colA.Highlighted() {
		t.Error("selected column not highlighted")
	}

	rec := &recorder{}
	if err := colA.Paint(rec); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if d := rec.draws[0]; d.colour != colornames.Lightyellow || d.rects[0] != (geom.Rect{X1: 0, Y1: 0, X2: 10, Y2: 100}) {
		t.Errorf("first draw = %+v, want the column background", d)
	}
	if got := rec.fills(green); len(got) != 1 || got[0].Y1 != 10 {
		t.Errorf("focus fills = %+v, want fa's box", got)
	}
	if got := rec.fills(red); len(got) != 1 || got[0].Y1 != 30 {
		t.Errorf("plain fills = %+v, want other's box", got)
	}

	colB.Select(fb, feature.SubPart{})
	if colA.Highlighted() || !colB.Highlighted() {
		t.Error("hot column did not move")
	}
	if hot := ctx.Focus().Hot(); hot.Feature != fb {
		t.Errorf("Hot() = %v, want fb", hot.Feature)
	}
}

func TestGlyphColumn(t *testing.T) {
	tri := style.NewShape("tri", style.DrawPolygon,
		geom.Pt(-2, 0), geom.Pt(2, 0), geom.Pt(0, 4), geom.Pt(-2, 0))
	st := &style.Style{ID: "sites", Mode: style.ModeGlyph, Width: 10, Shape: tri, Colours: style.Colours{Fill: red}}

	ctx := New(view(100, 1))
	fs := ctx.NewFeatureSet("sites", st, 1, 100)
	f := &feature.Feature{ID: "s", X1: 21, X2: 21, Kind: feature.KindGlyph}
	fs.Add(f)

	if r := fs.Extent(f); r != (geom.Rect{X1: 3, Y1: 20, X2: 7, Y2: 24}) {
		t.Errorf("Extent() = %+v", r)
	}
	for range 2 {
		rec := &recorder{}
		if err := fs.Paint(rec); err != nil {
			t.Fatalf("Paint() error = %v", err)
		}
		if len(rec.draws) != 1 || !rec.draws[0].closed || rec.draws[0].colour != red {
			t.Fatalf("draws = %+v, want one filled triangle", rec.draws)
		}
		if p := rec.draws[0].points[2]; p != geom.Pt(5, 24) {
			t.Errorf("apex = %v, want (5,24)", p)
		}
	}
	if n := ctx.Glyphs().Stats().Len; n != 1 {
		t.Errorf("glyph cache len = %d, want 1", n)
	}
	if got, _ := fs.Pick(5, 22); got != f {
		t.Errorf("Pick() = %v, want the glyph", got)
	}
	if got, _ := fs.Pick(9, 22); got != nil {
		t.Errorf("Pick() beside the glyph = %v, want nil", got)
	}
}

func coverage(n int) []*feature.Feature {
	fs := make([]*feature.Feature, n)
	for i := range fs {
		fs[i] = &feature.Feature{X1: i + 1, X2: i + 1, Score: float64(i + 1), HasScore: true, Kind: feature.KindGraph}
	}
	return fs
}

func graphStyle(mode style.GraphMode, rebin bool) *style.Style {
	return &style.Style{
		ID:        "coverage",
		Mode:      style.ModeGraph,
		Width:     10,
		MinScore:  0,
		MaxScore:  100,
		MinBin:    4,
		ReBin:     rebin,
		GraphMode: mode,
		Colours:   style.Colours{Fill: blue},
	}
}

func TestGraphRebinOnZoom(t *testing.T) {
	ctx := New(view(100, 1))
	fs := ctx.NewFeatureSet("coverage", graphStyle(style.GraphHistogram, true), 1, 100)
	fs.Add(coverage(100)...)
	fs.Rebuild()

	if n := len(fs.Bins()); n != 25 {
		t.Errorf("bins at 1 pixel per base = %d, want 25", n)
	}
	ctx.SetView(View{Start: 1, End: 100, PixelsPerBase: 0.1})
	if n := len(fs.Bins()); n != 2 {
		t.Fatalf("bins at 0.1 pixels per base = %d, want 2", n)
	}

	rec := &recorder{}
	if err := fs.Paint(rec); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	bars := rec.fills(blue)
	if len(bars) != 2 {
		t.Fatalf("bars = %d, want 2", len(bars))
	}
	if w := bars[1].Width(); w != 10 {
		t.Errorf("tallest bar width = %v, want 10", w)
	}
}

func TestGraphModes(t *testing.T) {
	t.Run("line", func(t *testing.T) {
		ctx := New(view(100, 1))
		fs := ctx.NewFeatureSet("coverage", graphStyle(style.GraphLine, false), 1, 100)
		fs.Add(coverage(3)...)
		rec := &recorder{}
		if err := fs.Paint(rec); err != nil {
			t.Fatalf("Paint() error = %v", err)
		}
		lines := rec.strokes(blue)
		if len(lines) != 1 || len(lines[0]) != 6 {
			t.Errorf("line = %v, want one polyline of 6 points", lines)
		}
	})

	t.Run("heatmap", func(t *testing.T) {
		ctx := New(view(100, 1))
		fs := ctx.NewFeatureSet("coverage", graphStyle(style.GraphHeatmap, false), 1, 100)
		fs.Add(&feature.Feature{X1: 5, X2: 9, Score: 100, Kind: feature.KindGraph})
		rec := &recorder{}
		if err := fs.Paint(rec); err != nil {
			t.Fatalf("Paint() error = %v", err)
		}
		cells := rec.fills(color.NRGBA{B: 255, A: 255})
		if len(cells) != 1 || cells[0].Width() != 10 {
			t.Errorf("heatmap cells = %+v, want one full width cell", cells)
		}
	})
}

func TestGraphHit(t *testing.T) {
	// score 50 of 100 draws the bar to x=5 over device rows 19-29
	tests := []struct {
		name string
		mode style.GraphMode
		x, y float64
		want bool
	}{
		{name: "line on trace", mode: style.GraphLine, x: 5, y: 24, want: true},
		{name: "line near trace", mode: style.GraphLine, x: 6.5, y: 24, want: true},
		{name: "line past end", mode: style.GraphLine, x: 5, y: 30.5, want: true},
		{name: "line under trace", mode: style.GraphLine, x: 1, y: 24, want: false},
		{name: "line far right", mode: style.GraphLine, x: 8, y: 24, want: false},
		{name: "histogram inside bar", mode: style.GraphHistogram, x: 1, y: 24, want: true},
		{name: "histogram right of bar", mode: style.GraphHistogram, x: 8, y: 24, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := New(view(100, 1))
			fs := ctx.NewFeatureSet("coverage", graphStyle(tt.mode, false), 1, 100)
			f := &feature.Feature{X1: 20, X2: 29, Score: 50, HasScore: true, Kind: feature.KindGraph}
			fs.Add(f)

			got, _ := fs.Pick(tt.x, tt.y)
			if (got == f) != tt.want {
				t.Errorf("Pick(%v, %v) = %v, want hit %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNoStyle(t *testing.T) {
	ctx := New(view(100, 1))
	fs := ctx.NewFeatureSet("unknown", nil, 1, 100)
	fs.Add(box("a", 11, 20))

	rec := &recorder{}
	if err := fs.Paint(rec); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if len(rec.draws) != 0 {
		t.Errorf("unstyled column drew %d times", len(rec.draws))
	}
	if f, _ := fs.Pick(5, 15); f != nil {
		t.Errorf("Pick() = %v, want nil", f)
	}
	if fs.Kind() != nil || fs.Width() != 0 {
		t.Error("unstyled column has a kind or width")
	}
}

func TestKindFor(t *testing.T) {
	tests := []struct {
		mode style.Mode
		none bool
	}{
		{style.ModeInvalid, true},
		{style.ModeBasic, false},
		{style.ModeTranscript, false},
		{style.ModeAlignment, false},
		{style.ModeGlyph, false},
		{style.ModeGraph, false},
	}
	for _, tt := range tests {
		k := kindFor(tt.mode)
		if (k == nil) != tt.none {
			t.Errorf("kindFor(%v) = %v", tt.mode, k)
			continue
		}
		if k != nil && k.Mode() != tt.mode {
			t.Errorf("kindFor(%v).Mode() = %v", tt.mode, k.Mode())
		}
	}
}

func TestClose(t *testing.T) {
	ctx := New(view(100, 1))
	fs := ctx.NewFeatureSet("est", alignStyle(), 1, 100)
	f := read("a", "a", [2]int{11, 20}, [2]int{31, 40})
	fs.Add(f)
	fs.Select(f, feature.SubPart{})
	fs.Segments(f)

	ctx.Close()
	if len(ctx.FeatureSets()) != 0 {
		t.Error("Close() kept feature sets")
	}
	if ctx.Focus().Hot() != nil || fs.Highlighted() {
		t.Error("Close() kept the focus")
	}
}

func TestPaintOntoGG(t *testing.T) {
	dc := gg.NewContext(60, 120)
	ctx := New(view(120, 1))
	st := basicStyle()
	st.Width = 20
	fs := ctx.NewFeatureSet("genes", st, 1, 120)
	fs.SetX(10)
	fs.Add(box("a", 11, 50))

	if err := fs.Paint(dc); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	r, g, b, a := dc.Image().At(20, 30).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 || a>>8 != 255 {
		t.Errorf("pixel inside box = %d,%d,%d,%d, want opaque red", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestLayoutAndPaint(t *testing.T) {
	ctx := New(view(100, 1))
	genes := ctx.NewFeatureSet("genes", basicStyle(), 1, 100)
	genes.Add(box("a", 11, 20))
	est := ctx.NewFeatureSet("est", alignStyle(), 1, 100)
	est.Add(read("r", "r", [2]int{31, 40}))
	ctx.NewFeatureSet("empty", nil, 1, 100)

	if right := ctx.Layout(5, 2); right != 25 {
		t.Errorf("Layout() = %v, want 25", right)
	}
	if genes.X() != 5 || est.X() != 17 {
		t.Errorf("columns at %v and %v, want 5 and 17", genes.X(), est.X())
	}

	rec := &recorder{}
	if err := ctx.Paint(rec); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if got := rec.fills(red); len(got) != 1 || got[0].X1 != 5 {
		t.Errorf("genes fills = %+v", got)
	}
	if got := rec.fills(blue); len(got) != 1 || got[0].X1 != 17 {
		t.Errorf("est fills = %+v", got)
	}
}
