package canvas

import (
	"github.com/gogpu/gg-genome/density"
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/geom"
	"github.com/gogpu/gg-genome/style"
)

// basicKind draws boxes, and exons joined by intron chevrons for
// transcripts.
type basicKind struct {
	mode style.Mode
}

func (k basicKind) Mode() style.Mode { return k.mode }

func (basicKind) Zoom(*FeatureSet) {}

func (basicKind) Extent(fs *FeatureSet, f *feature.Feature) geom.Rect {
	return boxExtent(fs, f)
}

func (basicKind) Hit(fs *FeatureSet, f *feature.Feature, x, y float64) bool {
	return hitBox(fs.kind.Extent(fs, f), x, y)
}

func (basicKind) Paint(fs *FeatureSet, p Painter) error {
	for _, f := range fs.Visible() {
		var err error
		if f.Kind == feature.KindTranscript && len(f.Exons) > 0 {
			err = paintTranscript(fs, p, f)
		} else {
			err = drawRect(p, boxExtent(fs, f), fs.colours(f))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// featureWidth returns the drawn width of f, scaled by score when the
// style asks for it.
func featureWidth(fs *FeatureSet, f *feature.Feature) float64 {
	st := fs.style
	if st.ScoreMode == style.ScoreWidth && f.HasScore {
		return density.WidthFromScore(st, st.Width, f.Score)
	}
	return st.Width
}

// boxExtent is the device box of f: its bases down the page, centred in
// its lane across it.
func boxExtent(fs *FeatureSet, f *feature.Feature) geom.Rect {
	w := featureWidth(fs, f)
	x := fs.laneX(f) + (fs.style.Width-w)/2
	return geom.Rect{
		X1: x,
		Y1: fs.deviceY(float64(f.X1)),
		X2: x + w,
		Y2: fs.deviceY(float64(f.X2 + 1)),
	}
}

func hitBox(r geom.Rect, x, y float64) bool {
	return geom.RectPointDistance(r.X1, r.Y1, r.X2, r.Y2, x, y) <= pickSlop
}

func paintTranscript(fs *FeatureSet, p Painter, f *feature.Feature) error {
	box := boxExtent(fs, f)
	c := fs.colours(f)
	for _, e := range f.Exons {
		r := geom.Rect{
			X1: box.X1,
			Y1: fs.deviceY(float64(e.X1)),
			X2: box.X2,
			Y2: fs.deviceY(float64(e.X2 + 1)),
		}
		if err := drawRect(p, r, c); err != nil {
			return err
		}
	}
	mid := (box.X1 + box.X2) / 2
	for _, in := range f.Introns {
		y1 := fs.deviceY(float64(in.X1))
		y2 := fs.deviceY(float64(in.X2 + 1))
		pts := []geom.Point{
			{X: mid, Y: y1},
			{X: box.X2, Y: (y1 + y2) / 2},
			{X: mid, Y: y2},
		}
		if err := drawPolyline(p, pts, borderOf(c)); err != nil {
			return err
		}
	}
	return nil
}
