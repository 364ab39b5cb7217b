package glyph

import (
	"github.com/gogpu/gg-genome/geom"
	"github.com/gogpu/gg-genome/style"
)

// TruncationShapes returns the diamond halves drawn where a feature runs off
// the start and end of the visible span.
func TruncationShapes() (start, end *style.Shape) {
	start = style.NewShape("truncated_start", style.DrawLines,
		geom.Pt(0, 0), geom.Pt(5, -5), geom.Pt(0, -10), geom.Pt(-5, -5), geom.Pt(0, 0))
	end = style.NewShape("truncated_end", style.DrawLines,
		geom.Pt(0, 0), geom.Pt(-5, 5), geom.Pt(0, 10), geom.Pt(5, 5), geom.Pt(0, 0))
	return start, end
}

// JunctionShapes returns the default boxes used to mark the start and end
// of a splice junction.
func JunctionShapes() (start, end *style.Shape) {
	start = style.NewShape("junction_start", style.DrawPolygon,
		geom.Pt(-6, 1), geom.Pt(-6, 6), geom.Pt(6, 6), geom.Pt(6, 1), geom.Pt(-6, 1))
	end = style.NewShape("junction_end", style.DrawPolygon,
		geom.Pt(-6, 0), geom.Pt(-6, -6), geom.Pt(6, -6), geom.Pt(6, 0), geom.Pt(-6, 0))
	return start, end
}
