package glyph

import (
	"fmt"

	"github.com/biogo/biogo/seq"

	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/geom"
	"github.com/gogpu/gg-genome/style"
)

// End selects which glyph of a feature is wanted.
type End uint8

// Glyph ends. EndWhole is the glyph of a glyph-mode feature; End5 and End3
// are sub-feature glyphs drawn at the ends of alignments.
const (
	EndWhole End = iota
	End5
	End3
)

// SpliceMinSize is the minimum drawn width in pixels of a splice marker.
const SpliceMinSize = 3.0

// Instance is a shape resolved for one size, flip and colour combination.
// Instances returned from the cache are shared and must not be modified.
type Instance struct {
	// Sig is the cache signature, empty for uncached instances.
	Sig   string
	Shape *style.Shape
	End   End

	// Width and Height are scale ratios applied to the shape; negative
	// values mirror it. Origin is the x offset of the anchor in the column.
	Width, Height, Origin float64

	// Points are relative to the column's left edge and the anchor row.
	// Segment breaks keep style.InvalidCoord in both coordinates.
	Points []geom.Point

	Colours style.Colours
}

// shapeFor returns the style's shape for the glyph end and strand.
func shapeFor(st *style.Style, strand seq.Strand, end End) *style.Shape {
	reverse := strand == seq.Minus
	switch end {
	case End5:
		return st.GlyphShape5(reverse)
	case End3:
		return st.GlyphShape3(reverse)
	default:
		return st.Shape
	}
}

// alternate reports whether the alternate colours apply for score.
func alternate(st *style.Style, score float64) bool {
	return st.ScoreMode == style.ScoreAlt && score < st.GlyphThreshold
}

// Signature returns the cache key for a glyph, or "" when the glyph's
// geometry depends continuously on score and must not be cached.
func Signature(st *style.Style, strand seq.Strand, end End, score float64) string {
	if st == nil || st.Splice {
		return ""
	}
	if st.ScoreMode != style.ScoreNone && st.ScoreMode != style.ScoreAlt {
		return ""
	}
	shape := shapeFor(st, strand, end)
	if shape == nil {
		return ""
	}
	sign := '+'
	if strand == seq.Minus {
		sign = '-'
	}
	alt := 'N'
	if alternate(st, score) {
		alt = 'A'
	}
	return fmt.Sprintf("%s_%s%c%c", st.ID, shape.ID, sign, alt)
}

// Instantiate scales each template point by width and height and offsets x
// by origin, rounding half up. Break markers stay break markers. Negative
// width or height mirror the shape; no sign is special-cased.
func Instantiate(shape *style.Shape, width, height, origin float64) []geom.Point {
	points := make([]geom.Point, len(shape.Points))
	for i, p := range shape.Points {
		if style.IsBreak(p) {
			points[i] = geom.Point{X: style.InvalidCoord, Y: style.InvalidCoord}
			continue
		}
		points[i] = geom.Point{
			X: float64(geom.Round(origin + p.X*width)),
			Y: float64(geom.Round(p.Y * height)),
		}
	}
	return points
}

// Scale computes the width and height ratios and x origin of a glyph in a
// column colWidth pixels wide. It reports false when the score is below the
// style's minimum and the glyph should not be drawn.
func Scale(st *style.Style, strand seq.Strand, score, colWidth float64) (width, height, origin float64, visible bool) {
	width, height = 1, 1
	lo, hi := st.MinScore, st.MaxScore
	rng := hi - lo
	scales := st.ScoreMode.Scales()

	if lo < 0 {
		// origin corresponds to zero
		if colWidth > 0 && rng > 0 {
			origin = colWidth * (-lo / rng)
		}
		if score < 0 {
			rng = -lo
		} else {
			rng = hi
		}
		score = max(lo, min(hi, score))
	} else {
		if scales && score < lo {
			return 0, 0, 0, false
		}
		origin = colWidth / 2
		score = max(0, min(rng, score-lo))
	}

	if scales && rng > 0 {
		frac := score / rng
		if st.ScoreMode == style.ScoreWidth || st.ScoreMode == style.ScoreSize {
			width = frac
		}
		if st.ScoreMode == style.ScoreHeight || st.ScoreMode == style.ScoreSize {
			height = frac
		}
	}

	if strand == seq.Minus {
		switch st.GlyphStrand {
		case style.GlyphFlipX:
			width = -width
		case style.GlyphFlipY:
			height = -height
		}
	}

	if colWidth > 0 {
		switch st.GlyphAlign {
		case style.AlignLeft:
			origin = 0
		case style.AlignRight:
			origin = colWidth
		}
	}
	return width, height, origin, true
}

// SpliceScale positions a splice marker so that its horizontal bar sits at
// the score's position across the column, measured from the column's zero
// line. Negative scores draw the marker mirrored.
func SpliceScale(shape *style.Shape, st *style.Style, score, colWidth float64) (width, height, origin float64) {
	lo, hi := st.MinScore, st.MaxScore
	var zero, factor float64
	if hi > lo {
		factor = colWidth / (hi - lo)
		if lo < 0 && hi > 0 {
			zero = colWidth * (-lo / (hi - lo))
		}
	}

	var x float64
	switch {
	case score <= lo:
		x = 0
	case score >= hi:
		x = colWidth
	default:
		x = factor * (score - lo)
	}

	w := zero - x
	if w < 0 {
		w = -w
	}
	origin = zero
	if w < SpliceMinSize {
		if score < 0 {
			origin = zero + (SpliceMinSize - w)
		} else {
			origin = zero - (SpliceMinSize - w)
		}
		w = SpliceMinSize
	}

	width = w / shape.Width
	if score < 0 {
		width = -width
	}
	return width, 1, origin
}

// Anchor returns the world Y position a glyph is drawn at. Boundary
// features covering exactly two bases anchor on the junction between them;
// everything else anchors on its first base.
func Anchor(f *feature.Feature) float64 {
	if f.Flags.Boundary && f.X2-f.X1 == 1 {
		return float64(f.X2)
	}
	return float64(f.X1)
}

// Place returns the instance's points translated to device position
// (x, y), keeping break markers.
func (inst *Instance) Place(x, y float64) []geom.Point {
	out := make([]geom.Point, len(inst.Points))
	for i, p := range inst.Points {
		if style.IsBreak(p) {
			out[i] = p
			continue
		}
		out[i] = geom.Point{X: p.X + x, Y: p.Y + y}
	}
	return out
}

// Polylines splits the placed points at break markers.
func (inst *Instance) Polylines(x, y float64) [][]geom.Point {
	var lines [][]geom.Point
	var cur []geom.Point
	for _, p := range inst.Place(x, y) {
		if style.IsBreak(p) {
			if len(cur) > 0 {
				lines = append(lines, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// Bounds returns the bounding box of the instance's points relative to the
// anchor, ignoring breaks.
func (inst *Instance) Bounds() geom.Rect {
	pts := make([]geom.Point, 0, len(inst.Points))
	for _, p := range inst.Points {
		if !style.IsBreak(p) {
			pts = append(pts, p)
		}
	}
	return geom.BoundingBox(pts)
}

// HitTest reports whether device point (px, py) falls inside the axis-aligned
// bounding box of the glyph drawn at (x, y). Glyphs are small and of fixed
// pixel size, so no exact polygon test is made.
func HitTest(inst *Instance, x, y, px, py float64) bool {
	if inst == nil || len(inst.Points) == 0 {
		return false
	}
	b := inst.Bounds()
	return geom.Rect{X1: b.X1 + x, Y1: b.Y1 + y, X2: b.X2 + x, Y2: b.Y2 + y}.Contains(geom.Point{X: px, Y: py})
}
