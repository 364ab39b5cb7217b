package canvas

import (
	"math"
	"slices"

	"github.com/biogo/biogo/seq"

	genome "github.com/gogpu/gg-genome"
	"github.com/gogpu/gg-genome/composite"
	"github.com/gogpu/gg-genome/density"
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/focus"
	"github.com/gogpu/gg-genome/gapped"
	"github.com/gogpu/gg-genome/geom"
	"github.com/gogpu/gg-genome/style"
)

// pickSlop is how far, in device pixels, a pick may miss a feature.
const pickSlop = 2.0

// FeatureSet is one column of features sharing a style.
type FeatureSet struct {
	ctx   *Context
	id    string
	style *style.Style
	kind  Kind

	x          float64
	start, end int

	features []*feature.Feature

	// display is what is drawn: uncomposited features and composites,
	// sorted by start.
	display    []*feature.Feature
	composites []*feature.Feature
	splices    map[seq.Strand]*composite.SpliceSet
	index      index
	dirty      bool

	bumped bool
	lanes  map[*feature.Feature]int
	nLanes int

	bins []density.Bin
	segs map[*feature.Feature]*gapped.Segments

	highlight bool
}

var _ focus.Column = (*FeatureSet)(nil)

// ID returns the column id.
func (fs *FeatureSet) ID() string { return fs.id }

// Style returns the column style.
func (fs *FeatureSet) Style() *style.Style { return fs.style }

// Kind returns the renderable kind, or nil when the column draws nothing.
func (fs *FeatureSet) Kind() Kind { return fs.kind }

// SetHighlight turns the hot column background on or off.
func (fs *FeatureSet) SetHighlight(on bool) { fs.highlight = on }

// Highlighted reports whether the column is drawn as the hot column.
func (fs *FeatureSet) Highlighted() bool { return fs.highlight }

// SetX moves the column's left edge to device x.
func (fs *FeatureSet) SetX(x float64) { fs.x = x }

// X returns the column's left edge.
func (fs *FeatureSet) X() float64 { return fs.x }

// Width returns the column's device width, which grows with the number of
// bump lanes.
func (fs *FeatureSet) Width() float64 {
	if fs.style == nil {
		return 0
	}
	fs.ensure()
	return fs.style.Width * float64(max(fs.nLanes, 1))
}

// Span returns the first and last bases the column holds data for.
func (fs *FeatureSet) Span() (start, end int) { return fs.start, fs.end }

// Transform returns the column's world to device transform.
func (fs *FeatureSet) Transform() geom.Transform {
	return fs.ctx.view.Transform(fs.x, 0)
}

// Add adds features to the column. Features without a style take the
// column's. The column is rebuilt before its next use.
func (fs *FeatureSet) Add(features ...*feature.Feature) {
	for _, f := range features {
		if f.Style == nil {
			f.Style = fs.style
		}
	}
	fs.features = append(fs.features, features...)
	fs.dirty = true
}

// Features returns the features added to the column.
func (fs *FeatureSet) Features() []*feature.Feature { return fs.features }

// Display returns the features drawn: those not hidden by a composite and
// the composites themselves, sorted by start.
func (fs *FeatureSet) Display() []*feature.Feature {
	fs.ensure()
	return fs.display
}

// Composites returns the composites built by the last rebuild.
func (fs *FeatureSet) Composites() []*feature.Feature {
	fs.ensure()
	return fs.composites
}

// Splices returns the splice coordinates recorded on strand by the last
// rebuild, or nil.
func (fs *FeatureSet) Splices(strand seq.Strand) *composite.SpliceSet {
	fs.ensure()
	return fs.splices[strand]
}

func (fs *FeatureSet) ensure() {
	if fs.dirty {
		fs.Rebuild()
	}
}

// Rebuild recomposites the column's alignments, rebuilds the pick index
// and bump lanes, and drops cached segments. Rebuilding unchanged input
// gives identical composites.
func (fs *FeatureSet) Rebuild() {
	fs.dirty = false
	fs.releaseSegments()

	if fs.style.IsAlignment() {
		old := fs.composites
		res := fs.ctx.compositor.Rebuild(fs.style, fs.features)
		fs.display = res.Display
		fs.composites = res.Composites
		fs.splices = res.Splices
		if len(old) > 0 {
			fs.remapFocus(old)
		}
	} else {
		fs.display = slices.Clone(fs.features)
		slices.SortStableFunc(fs.display, func(a, b *feature.Feature) int {
			if a.X1 != b.X1 {
				return a.X1 - b.X1
			}
			return a.X2 - b.X2
		})
		fs.composites = nil
		fs.splices = nil
	}
	fs.index = newIndex(fs.display)
	fs.layout()

	if fs.style != nil && fs.style.Mode == style.ModeGraph && fs.style.ReBin {
		fs.Rebin()
	}
	genome.Logger().Debug("canvas: rebuild",
		"set", fs.id,
		"features", len(fs.features),
		"display", len(fs.display),
		"composites", len(fs.composites))
}

// remapFocus points focus items holding a replaced composite at the new
// composite with the same ID, or drops them when there is none.
func (fs *FeatureSet) remapFocus(old []*feature.Feature) {
	byID := make(map[string]*feature.Feature, len(fs.composites))
	for _, c := range fs.composites {
		byID[c.ID] = c
	}
	fs.ctx.focus.Remap(fs, func(f *feature.Feature) *feature.Feature {
		if !slices.Contains(old, f) {
			return f
		}
		return byID[f.ID]
	})
}

// Bump spreads overlapping features into lanes and shows alignment gaps
// and colinearity when on. The column is rebuilt.
func (fs *FeatureSet) Bump(on bool) {
	fs.bumped = on
	fs.Rebuild()
}

// Bumped reports whether the column is bumped.
func (fs *FeatureSet) Bumped() bool { return fs.bumped }

// Rebin recomputes the density bins of a graph column for the current
// view.
func (fs *FeatureSet) Rebin() {
	if fs.style == nil {
		return
	}
	v := fs.ctx.view
	start, end := max(fs.start, v.Start), min(fs.end, v.End)
	fs.bins = density.Bins(fs.style, fs.display, start, end, v.PixelsPerBase, fs.style.Width)
}

// Bins returns the density bins from the last rebin.
func (fs *FeatureSet) Bins() []density.Bin { return fs.bins }

func (fs *FeatureSet) zoom() {
	fs.releaseSegments()
	if fs.kind != nil && !fs.dirty {
		fs.kind.Zoom(fs)
	}
}

// Segments returns the gap segments of an alignment at the current zoom.
// They are cached until the zoom changes or the column is rebuilt.
func (fs *FeatureSet) Segments(f *feature.Feature) *gapped.Segments {
	if s, ok := fs.segs[f]; ok {
		return s
	}
	if fs.segs == nil {
		fs.segs = make(map[*feature.Feature]*gapped.Segments)
	}
	threshold := 0
	if fs.style != nil {
		threshold = fs.style.WithinAlignError
	}
	s := gapped.Decompose(fs.ctx.segments.Get(), f, fs.Transform(), threshold)
	fs.segs[f] = s
	return s
}

func (fs *FeatureSet) releaseSegments() {
	for f, s := range fs.segs {
		fs.ctx.segments.Put(s)
		delete(fs.segs, f)
	}
}

// Extent returns the device bounding box f is drawn in.
func (fs *FeatureSet) Extent(f *feature.Feature) geom.Rect {
	if fs.kind == nil {
		return geom.Rect{}
	}
	fs.ensure()
	return fs.kind.Extent(fs, f)
}

// Visible returns the displayed features overlapping the view.
func (fs *FeatureSet) Visible() []*feature.Feature {
	fs.ensure()
	v := fs.ctx.view
	return fs.index.overlapping(v.Start, v.End)
}

// Paint draws the column. A column without a drawable style paints
// nothing.
func (fs *FeatureSet) Paint(p Painter) error {
	if fs.kind == nil {
		return nil
	}
	fs.ensure()
	if fs.highlight {
		r := geom.Rect{X1: fs.x, Y1: 0, X2: fs.x + fs.Width(), Y2: fs.ctx.view.Height()}
		if err := drawRect(p, r, style.Colours{Fill: fs.ctx.highlightColour()}); err != nil {
			return err
		}
	}
	return fs.kind.Paint(fs, p)
}

// Pick returns the topmost displayed feature under device point (x, y)
// and the sub-part of it there, or nil.
func (fs *FeatureSet) Pick(x, y float64) (*feature.Feature, feature.SubPart) {
	if fs.kind == nil {
		return nil, feature.SubPart{}
	}
	fs.ensure()
	t := fs.Transform()
	_, w1 := t.CanvasToWorld(x, y-pickSlop)
	_, w2 := t.CanvasToWorld(x, y+pickSlop)
	_, wy := t.CanvasToWorld(x, y)

	// glyphs may be drawn beyond their feature's bases
	pad := 0
	if fs.style.Mode == style.ModeGlyph && fs.ctx.view.PixelsPerBase > 0 {
		pad = int(math.Ceil(fs.glyphReach() / fs.ctx.view.PixelsPerBase))
	}

	cands := fs.index.overlapping(int(math.Floor(w1))-pad, int(math.Floor(w2))+pad)
	for i := len(cands) - 1; i >= 0; i-- {
		f := cands[i]
		if fs.kind.Hit(fs, f, x, y) {
			return f, gapped.SubPartAt(f, int(math.Floor(wy)))
		}
	}
	return nil, feature.SubPart{}
}

// Select makes f, or its sub-part, the hot focus item. Its column becomes
// the hot column.
func (fs *FeatureSet) Select(f *feature.Feature, sub feature.SubPart) *focus.Item {
	set := fs.ctx.focus
	it := set.Add(fs, f, sub, focus.Focus)
	set.SetHot(it)
	return it
}

// colours returns the colours f is drawn with, taking focus groups into
// account.
func (fs *FeatureSet) colours(f *feature.Feature) style.Colours {
	st := f.Style
	if st == nil {
		st = fs.style
	}
	c := st.Colours
	set := fs.ctx.focus
	if g := set.Groups(f); g != 0 {
		if fc, ok := set.Colours(g); ok {
			if fc.Fill != nil {
				c.Fill = fc.Fill
			}
			if fc.Border != nil {
				c.Border = fc.Border
			}
		}
	}
	return c
}

// laneX returns the left edge of the lane f is bumped into.
func (fs *FeatureSet) laneX(f *feature.Feature) float64 {
	return fs.x + float64(fs.lanes[f])*fs.style.Width
}

// deviceY maps a world coordinate to a device row.
func (fs *FeatureSet) deviceY(wy float64) float64 {
	_, y := fs.Transform().WorldToCanvas(0, wy)
	return float64(y)
}

// glyphReach is the furthest a glyph in this column is drawn from its
// anchor, in device pixels.
func (fs *FeatureSet) glyphReach() float64 {
	var reach float64
	for _, sh := range []*style.Shape{fs.style.Shape, fs.style.Shape5, fs.style.Shape3} {
		if sh != nil {
			reach = max(reach, sh.Height)
		}
	}
	return reach
}
