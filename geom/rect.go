package geom

// Rect is an axis-aligned box with X1 <= X2 and Y1 <= Y2.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Width returns X2 - X1.
func (r Rect) Width() float64 { return r.X2 - r.X1 }

// Height returns Y2 - Y1.
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// Empty reports whether r has zero area.
func (r Rect) Empty() bool { return r.X1 >= r.X2 || r.Y1 >= r.Y2 }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Union returns the smallest box containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		X1: min(r.X1, s.X1),
		Y1: min(r.Y1, s.Y1),
		X2: max(r.X2, s.X2),
		Y2: max(r.Y2, s.Y2),
	}
}

// BoundingBox returns the smallest Rect containing all points.
// An empty point set yields the zero Rect.
func BoundingBox(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{X1: points[0].X, Y1: points[0].Y, X2: points[0].X, Y2: points[0].Y}
	for _, p := range points[1:] {
		r.X1 = min(r.X1, p.X)
		r.Y1 = min(r.Y1, p.Y)
		r.X2 = max(r.X2, p.X)
		r.Y2 = max(r.Y2, p.Y)
	}
	return r
}
