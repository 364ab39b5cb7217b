package geom

import "math"

// Transform is an axis-aligned affine map from world to device space:
//
//	x' = SX*x + TX
//	y' = SY*y + TY
//
// Feature-set columns never rotate or shear, so this is the diagonal subset
// of a full 2x3 matrix. SY is the zoom in pixels per base and must be positive
// for the mapping to be monotonic.
type Transform struct {
	SX, SY float64
	TX, TY float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{SX: 1, SY: 1}
}

// View returns the transform for a column whose sequence starts at base
// start, drawn at pixelsPerBase zoom with the start base at device (x, y).
func View(pixelsPerBase float64, start int, x, y float64) Transform {
	return Transform{
		SX: 1,
		SY: pixelsPerBase,
		TX: x,
		TY: y - float64(start)*pixelsPerBase,
	}
}

// PixelsPerBase returns the vertical zoom factor.
func (t Transform) PixelsPerBase() float64 { return t.SY }

// Translate returns t followed by a device-space translation.
func (t Transform) Translate(dx, dy float64) Transform {
	t.TX += dx
	t.TY += dy
	return t
}

// Apply maps a world point to device space without rounding.
func (t Transform) Apply(p Point) Point {
	return Point{X: t.SX*p.X + t.TX, Y: t.SY*p.Y + t.TY}
}

// Invert returns the inverse transform.
// Returns the identity if t is not invertible.
func (t Transform) Invert() Transform {
	if math.Abs(t.SX) < 1e-12 || math.Abs(t.SY) < 1e-12 {
		return Identity()
	}
	return Transform{
		SX: 1 / t.SX,
		SY: 1 / t.SY,
		TX: -t.TX / t.SX,
		TY: -t.TY / t.SY,
	}
}

// WorldToCanvas maps a world coordinate to integer device pixels,
// rounding half up.
func (t Transform) WorldToCanvas(wx, wy float64) (int, int) {
	p := t.Apply(Point{X: wx, Y: wy})
	return Round(p.X), Round(p.Y)
}

// CanvasToWorld maps a device coordinate back to world space.
func (t Transform) CanvasToWorld(cx, cy float64) (float64, float64) {
	p := t.Invert().Apply(Point{X: cx, Y: cy})
	return p.X, p.Y
}

// Round rounds half up: 2.5 becomes 3 and -2.5 becomes -2.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}
