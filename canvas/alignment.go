package canvas

import (
	"slices"

	"github.com/biogo/biogo/seq"

	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/gapped"
	"github.com/gogpu/gg-genome/geom"
	"github.com/gogpu/gg-genome/glyph"
	"github.com/gogpu/gg-genome/style"
)

// alignmentKind draws alignments. Unbumped, each is a plain box. Bumped,
// gapped alignments are drawn from their gap segments and the members of
// each alignment series are joined by colinearity lines.
type alignmentKind struct{}

func (alignmentKind) Mode() style.Mode { return style.ModeAlignment }

func (alignmentKind) Zoom(*FeatureSet) {}

func (alignmentKind) Extent(fs *FeatureSet, f *feature.Feature) geom.Rect {
	return boxExtent(fs, f)
}

func (alignmentKind) Hit(fs *FeatureSet, f *feature.Feature, x, y float64) bool {
	return hitBox(boxExtent(fs, f), x, y)
}

func (alignmentKind) Paint(fs *FeatureSet, p Painter) error {
	visible := fs.Visible()
	for _, f := range visible {
		if err := paintAlignment(fs, p, f); err != nil {
			return err
		}
	}
	if !fs.bumped {
		return nil
	}
	return paintSeries(fs, p, visible)
}

func paintAlignment(fs *FeatureSet, p Painter, f *feature.Feature) error {
	st := fs.style
	r := boxExtent(fs, f)
	c := fs.colours(f)

	if fs.bumped && st.ShowGaps && f.IsGapped() {
		if err := paintSegments(fs, p, f, r, c); err != nil {
			return err
		}
	} else if err := drawRect(p, r, c); err != nil {
		return err
	}

	mid := (r.X1 + r.X2) / 2
	if f.X1 < fs.start {
		inst := fs.ctx.glyphs.Truncation(true)
		if err := drawGlyph(p, inst, mid, fs.deviceY(float64(fs.start)), style.Colours{Border: borderOf(c)}); err != nil {
			return err
		}
	}
	if f.X2 > fs.end {
		inst := fs.ctx.glyphs.Truncation(false)
		if err := drawGlyph(p, inst, mid, fs.deviceY(float64(fs.end+1)), style.Colours{Border: borderOf(c)}); err != nil {
			return err
		}
	}
	return paintEnds(fs, p, f, r)
}

func paintSegments(fs *FeatureSet, p Painter, f *feature.Feature, r geom.Rect, c style.Colours) error {
	mid := (r.X1 + r.X2) / 2
	line := borderOf(c)
	for _, seg := range fs.Segments(f).List {
		y1, y2 := r.Y1+float64(seg.Y1), r.Y1+float64(seg.Y2)
		var err error
		switch seg.Kind {
		case gapped.Box:
			box := geom.Rect{X1: r.X1, Y1: y1, X2: r.X2, Y2: y2}
			if seg.Edge {
				err = drawRect(p, box, style.Colours{Border: line})
			} else {
				err = drawRect(p, box, c)
			}
		case gapped.HLine:
			err = drawLine(p, r.X1, y1, r.X2, y1, line)
		case gapped.VLine:
			err = drawLine(p, mid, y1, mid, y2, line)
		case gapped.VLineIntron:
			err = drawLine(p, mid, y1, mid, y2, fs.style.ColinearColour(int(seg.Colinearity)))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// paintEnds draws the style's 5' and 3' glyphs at the ends of f.
func paintEnds(fs *FeatureSet, p Painter, f *feature.Feature, r geom.Rect) error {
	st := fs.style
	if st.Shape5 == nil && st.Shape3 == nil {
		return nil
	}
	top, bottom := r.Y1, r.Y2
	if f.Strand == seq.Minus {
		top, bottom = bottom, top
	}
	for _, end := range []struct {
		which glyph.End
		y     float64
	}{{glyph.End5, top}, {glyph.End3, bottom}} {
		inst := fs.ctx.glyphs.Get(st, f, end.which, f.Score)
		if inst == nil {
			continue
		}
		if err := drawGlyph(p, inst, fs.laneX(f), end.y, inst.Colours); err != nil {
			return err
		}
	}
	return nil
}

// series returns the alignment series among features: uncomposited
// features sharing a name, in target order, keyed by name.
func series(features []*feature.Feature) map[string][]*feature.Feature {
	out := make(map[string][]*feature.Feature)
	for _, f := range features {
		if f.Name == "" || f.IsComposite() {
			continue
		}
		out[f.Name] = append(out[f.Name], f)
	}
	return out
}

// paintSeries joins consecutive members of each alignment series with a
// line coloured by how well their query ranges continue, and marks
// non-canonical splices between them when the reference is known.
func paintSeries(fs *FeatureSet, p Painter, visible []*feature.Feature) error {
	st := fs.style
	groups := series(visible)
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		members := groups[name]
		for i := 1; i < len(members); i++ {
			a, b := members[i-1], members[i]
			if a.X2 >= b.X1 {
				continue
			}
			ra, rb := boxExtent(fs, a), boxExtent(fs, b)
			class := gapped.InterColinearity(a, b, st.WithinAlignError)
			col := st.ColinearColour(int(class))
			if err := drawLine(p, (ra.X1+ra.X2)/2, ra.Y2, (rb.X1+rb.X2)/2, rb.Y1, col); err != nil {
				return err
			}

			if fs.ctx.dna == nil {
				continue
			}
			leftNC, rightNC := gapped.NonCanonicalSplices(a, b, fs.ctx.dna)
			marker := style.Colours{Fill: st.ColinearColour(style.ColinearNot)}
			if leftNC {
				inst := fs.ctx.glyphs.Junction(false)
				if err := drawGlyph(p, inst, (ra.X1+ra.X2)/2, ra.Y2, marker); err != nil {
					return err
				}
			}
			if rightNC {
				inst := fs.ctx.glyphs.Junction(true)
				if err := drawGlyph(p, inst, (rb.X1+rb.X2)/2, rb.Y1, marker); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
