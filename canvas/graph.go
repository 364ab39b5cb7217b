package canvas

import (
	"image/color"

	"github.com/gogpu/gg-genome/density"
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/geom"
	"github.com/gogpu/gg-genome/style"
)

// graphKind draws scores as a histogram, a line or a heatmap. Columns
// that re-bin draw their density bins; others draw one bar per feature.
type graphKind struct{}

func (graphKind) Mode() style.Mode { return style.ModeGraph }

func (graphKind) Zoom(fs *FeatureSet) {
	if fs.style.ReBin {
		fs.Rebin()
	}
}

func (graphKind) Extent(fs *FeatureSet, f *feature.Feature) geom.Rect {
	w := fs.style.Width
	if fs.style.GraphMode != style.GraphHeatmap {
		w *= density.NormalisedScore(fs.style, f.Score)
	}
	return geom.Rect{
		X1: fs.x,
		Y1: fs.deviceY(float64(f.X1)),
		X2: fs.x + w,
		Y2: fs.deviceY(float64(f.X2 + 1)),
	}
}

func (k graphKind) Hit(fs *FeatureSet, f *feature.Feature, x, y float64) bool {
	r := k.Extent(fs, f)
	if fs.style.GraphMode == style.GraphLine {
		// only the trace itself is drawn
		trace := []geom.Point{{X: r.X2, Y: r.Y1}, {X: r.X2, Y: r.Y2}}
		return geom.PointToPolygonDistance(trace, x, y) <= pickSlop
	}
	// short bars are still pickable across the column
	r.X2 = max(r.X2, r.X1+pickSlop)
	return hitBox(r, x, y)
}

// bars returns what to draw: the density bins, or one bin per visible
// feature.
func (graphKind) bars(fs *FeatureSet) []density.Bin {
	if fs.style.ReBin {
		return fs.bins
	}
	st := fs.style
	visible := fs.Visible()
	bins := make([]density.Bin, 0, len(visible))
	for _, f := range visible {
		norm := density.NormalisedScore(st, f.Score)
		w := st.Width
		if st.GraphMode != style.GraphHeatmap {
			w *= norm
		}
		bins = append(bins, density.Bin{Y1: f.X1, Y2: f.X2, Score: f.Score, Norm: norm, Width: w, Feature: f})
	}
	return bins
}

func (k graphKind) Paint(fs *FeatureSet, p Painter) error {
	st := fs.style
	bins := k.bars(fs)
	if len(bins) == 0 {
		return nil
	}

	if st.GraphMode == style.GraphLine {
		pts := make([]geom.Point, 0, 2*len(bins))
		for _, b := range bins {
			pts = append(pts,
				geom.Point{X: fs.x + b.Width, Y: fs.deviceY(float64(b.Y1))},
				geom.Point{X: fs.x + b.Width, Y: fs.deviceY(float64(b.Y2 + 1))})
		}
		return drawPolyline(p, pts, borderOf(st.Colours))
	}

	for _, b := range bins {
		r := geom.Rect{
			X1: fs.x,
			Y1: fs.deviceY(float64(b.Y1)),
			X2: fs.x + b.Width,
			Y2: fs.deviceY(float64(b.Y2 + 1)),
		}
		c := st.Colours
		if b.Feature != nil && fs.ctx.focus.Groups(b.Feature) != 0 {
			c = fs.colours(b.Feature)
		}
		if st.GraphMode == style.GraphHeatmap {
			hot := c.Fill
			if hot == nil {
				hot = color.Black
			}
			c = style.Colours{Fill: density.HeatColour(color.White, hot, b.Norm)}
		}
		if err := drawRect(p, r, c); err != nil {
			return err
		}
	}
	return nil
}
