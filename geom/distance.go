package geom

import "math"

// MaxDistance is returned by the hit-distance functions when there is
// nothing to hit.
const MaxDistance = 1.0e36

// polygonEpsilon is how close to an edge a point may be and still count as
// on the boundary.
const polygonEpsilon = 1e-9

// RectPointDistance returns 0 if (px, py) lies inside the box, otherwise
// the Euclidean distance to the nearest edge or corner.
func RectPointDistance(x1, y1, x2, y2, px, py float64) float64 {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	var dx, dy float64
	switch {
	case px < x1:
		dx = x1 - px
	case px > x2:
		dx = px - x2
	}
	switch {
	case py < y1:
		dy = y1 - py
	case py > y2:
		dy = py - y2
	}
	if dx == 0 {
		return dy
	}
	if dy == 0 {
		return dx
	}
	return math.Hypot(dx, dy)
}

// PointToPolygonDistance returns 0 if (x, y) is inside the closed polygon or
// within epsilon of its boundary, otherwise the distance to the nearest edge.
// The polygon is closed implicitly; a repeated final vertex is harmless.
// An empty polygon returns MaxDistance.
func PointToPolygonDistance(polygon []Point, x, y float64) float64 {
	switch len(polygon) {
	case 0:
		return MaxDistance
	case 1:
		return polygon[0].Distance(Point{X: x, Y: y})
	}

	p := Point{X: x, Y: y}
	best := MaxDistance
	inside := false

	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		a, b := polygon[j], polygon[i]

		if d := segmentDistance(a, b, p); d < best {
			best = d
		}

		// even-odd crossing test
		if (b.Y > y) != (a.Y > y) {
			xc := (a.X-b.X)*(y-b.Y)/(a.Y-b.Y) + b.X
			if x < xc {
				inside = !inside
			}
		}
	}

	if inside || best <= polygonEpsilon {
		return 0
	}
	return best
}

// segmentDistance returns the distance from p to the segment ab.
func segmentDistance(a, b, p Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	t = max(0, min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}
