package canvas

import (
	"image/color"

	"github.com/gogpu/gg-genome/geom"
)

// draw is one Fill or Stroke seen by the recorder.
type draw struct {
	stroke  bool
	colour  color.Color
	rects   []geom.Rect
	points  []geom.Point
	closed  bool
	ellipse bool
}

// recorder is a Painter that keeps what was drawn.
type recorder struct {
	draws  []draw
	colour color.Color
	cur    draw
}

func (r *recorder) SetColor(c color.Color) { r.colour = c }
func (r *recorder) SetLineWidth(float64)   {}
func (r *recorder) MoveTo(x, y float64)    { r.cur.points = append(r.cur.points, geom.Pt(x, y)) }
func (r *recorder) LineTo(x, y float64)    { r.cur.points = append(r.cur.points, geom.Pt(x, y)) }
func (r *recorder) ClosePath()             { r.cur.closed = true }

func (r *recorder) DrawRectangle(x, y, w, h float64) {
	r.cur.rects = append(r.cur.rects, geom.Rect{X1: x, Y1: y, X2: x + w, Y2: y + h})
}

func (r *recorder) DrawEllipse(x, y, rx, ry float64) {
	r.cur.ellipse = true
	r.cur.rects = append(r.cur.rects, geom.Rect{X1: x - rx, Y1: y - ry, X2: x + rx, Y2: y + ry})
}

func (r *recorder) Fill() error   { return r.flush(false) }
func (r *recorder) Stroke() error { return r.flush(true) }

func (r *recorder) flush(stroke bool) error {
	r.cur.stroke = stroke
	r.cur.colour = r.colour
	r.draws = append(r.draws, r.cur)
	r.cur = draw{}
	return nil
}

// fills returns the filled rectangles drawn in colour c.
func (r *recorder) fills(c color.Color) []geom.Rect {
	var out []geom.Rect
	for _, d := range r.draws {
		if !d.stroke && d.colour == c {
			out = append(out, d.rects...)
		}
	}
	return out
}

// strokes returns the stroked paths drawn in colour c.
func (r *recorder) strokes(c color.Color) [][]geom.Point {
	var out [][]geom.Point
	for _, d := range r.draws {
		if d.stroke && d.colour == c && len(d.points) > 0 {
			out = append(out, d.points)
		}
	}
	return out
}
