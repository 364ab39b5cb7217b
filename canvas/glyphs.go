package canvas

import (
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/geom"
	"github.com/gogpu/gg-genome/glyph"
	"github.com/gogpu/gg-genome/style"
)

// glyphKind draws each feature as a glyph at its anchor.
type glyphKind struct{}

func (glyphKind) Mode() style.Mode { return style.ModeGlyph }

func (glyphKind) Zoom(*FeatureSet) {}

func (glyphKind) instance(fs *FeatureSet, f *feature.Feature) (*glyph.Instance, float64, float64) {
	inst := fs.ctx.glyphs.Get(fs.style, f, glyph.EndWhole, f.Score)
	return inst, fs.laneX(f), fs.deviceY(glyph.Anchor(f))
}

func (k glyphKind) Extent(fs *FeatureSet, f *feature.Feature) geom.Rect {
	inst, x, y := k.instance(fs, f)
	if inst == nil {
		return geom.Rect{X1: x, Y1: y, X2: x, Y2: y}
	}
	b := inst.Bounds()
	return geom.Rect{X1: b.X1 + x, Y1: b.Y1 + y, X2: b.X2 + x, Y2: b.Y2 + y}
}

func (k glyphKind) Hit(fs *FeatureSet, f *feature.Feature, x, y float64) bool {
	inst, gx, gy := k.instance(fs, f)
	return glyph.HitTest(inst, gx, gy, x, y)
}

func (k glyphKind) Paint(fs *FeatureSet, p Painter) error {
	for _, f := range fs.Visible() {
		inst, x, y := k.instance(fs, f)
		if inst == nil {
			continue
		}
		c := inst.Colours
		if fs.ctx.focus.Groups(f) != 0 {
			c = fs.colours(f)
		}
		if err := drawGlyph(p, inst, x, y, c); err != nil {
			return err
		}
	}
	return nil
}
