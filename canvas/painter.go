package canvas

import (
	"image/color"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-genome/geom"
	"github.com/gogpu/gg-genome/glyph"
	"github.com/gogpu/gg-genome/style"
)

// Painter is the drawing surface columns paint onto. Fill and Stroke
// consume the current path.
type Painter interface {
	SetColor(c color.Color)
	SetLineWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawRectangle(x, y, w, h float64)
	DrawEllipse(x, y, rx, ry float64)
	Fill() error
	Stroke() error
}

var _ Painter = (*gg.Context)(nil)

// borderOf returns the colour used for outlines and connecting lines.
func borderOf(c style.Colours) color.Color {
	if c.Border != nil {
		return c.Border
	}
	return c.Fill
}

func drawRect(p Painter, r geom.Rect, c style.Colours) error {
	if c.Fill != nil {
		p.DrawRectangle(r.X1, r.Y1, r.Width(), r.Height())
		p.SetColor(c.Fill)
		if err := p.Fill(); err != nil {
			return err
		}
	}
	if c.Border != nil {
		p.DrawRectangle(r.X1, r.Y1, r.Width(), r.Height())
		p.SetColor(c.Border)
		p.SetLineWidth(1)
		if err := p.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

func drawLine(p Painter, x1, y1, x2, y2 float64, c color.Color) error {
	if c == nil {
		return nil
	}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	p.SetColor(c)
	p.SetLineWidth(1)
	return p.Stroke()
}

func drawPolyline(p Painter, pts []geom.Point, c color.Color) error {
	if c == nil || len(pts) < 2 {
		return nil
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.SetColor(c)
	p.SetLineWidth(1)
	return p.Stroke()
}

// drawGlyph draws inst with its anchor at device (x, y). Polygons are
// filled and outlined, arcs drawn as the ellipse in their bounds and
// everything else stroked.
func drawGlyph(p Painter, inst *glyph.Instance, x, y float64, c style.Colours) error {
	if inst == nil {
		return nil
	}
	switch inst.Shape.Type {
	case style.DrawPolygon:
		for _, pts := range inst.Polylines(x, y) {
			for _, pass := range []struct {
				col    color.Color
				stroke bool
			}{{c.Fill, false}, {c.Border, true}} {
				if pass.col == nil {
					continue
				}
				p.MoveTo(pts[0].X, pts[0].Y)
				for _, pt := range pts[1:] {
					p.LineTo(pt.X, pt.Y)
				}
				p.ClosePath()
				p.SetColor(pass.col)
				var err error
				if pass.stroke {
					p.SetLineWidth(1)
					err = p.Stroke()
				} else {
					err = p.Fill()
				}
				if err != nil {
					return err
				}
			}
		}
		return nil

	case style.DrawArc:
		b := inst.Bounds()
		rx, ry := b.Width()/2, b.Height()/2
		cx, cy := x+b.X1+rx, y+b.Y1+ry
		if c.Fill != nil {
			p.DrawEllipse(cx, cy, rx, ry)
			p.SetColor(c.Fill)
			if err := p.Fill(); err != nil {
				return err
			}
		}
		if col := borderOf(c); col != nil {
			p.DrawEllipse(cx, cy, rx, ry)
			p.SetColor(col)
			p.SetLineWidth(1)
			return p.Stroke()
		}
		return nil

	default:
		col := borderOf(c)
		for _, pts := range inst.Polylines(x, y) {
			if err := drawPolyline(p, pts, col); err != nil {
				return err
			}
		}
		return nil
	}
}
