package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg-genome/geom"
)

// ErrBadShape is returned by ParseShape for malformed shape definitions.
var ErrBadShape = errors.New("style: malformed glyph shape")

// InvalidCoord marks a break between disjoint segments in a shape's
// coordinate list. Both X and Y of a break point are InvalidCoord.
const InvalidCoord = 1000

// DrawType is the way a shape's points are drawn.
type DrawType uint8

// Draw types.
const (
	DrawInvalid DrawType = iota
	DrawLines
	DrawPolygon
	DrawBroken
	DrawArc
)

var drawTypeNames = [...]string{"invalid", "lines", "polygon", "broken", "arc"}

func (d DrawType) String() string {
	if int(d) < len(drawTypeNames) {
		return drawTypeNames[d]
	}
	return fmt.Sprintf("DrawType(%d)", d)
}

// Shape is a glyph template: points relative to an anchor at (0, 0).
// Shapes are read-only once built and may be shared.
type Shape struct {
	ID     string
	Type   DrawType
	Points []geom.Point

	// Angles holds the start and end angle in degrees for arcs.
	Angles [2]float64

	// Width and Height are the extent of the points including the anchor.
	Width, Height float64
}

// IsBreak reports whether p is a segment break marker.
func IsBreak(p geom.Point) bool {
	return p.X == InvalidCoord || p.Y == InvalidCoord
}

// NewShape builds a shape from literal points and computes its extent.
func NewShape(id string, typ DrawType, points ...geom.Point) *Shape {
	s := &Shape{ID: id, Type: typ, Points: points}
	if typ == DrawArc {
		s.Angles = [2]float64{0, 360}
	}
	s.measure()
	return s
}

// measure sets Width and Height. The anchor is always inside the extent and
// break markers count as the anchor.
func (s *Shape) measure() {
	var minX, maxX, minY, maxY float64
	for _, p := range s.Points {
		if IsBreak(p) {
			continue
		}
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	s.Width = maxX - minX + 1
	s.Height = maxY - minY + 1
}

// ParseShape parses a shape definition in the style language:
//
//	<0,0; 5,-5; 0,-10; -5,-5; 0,0>   closed path, drawn as a polygon
//	<-4,0; 4,0 / 0,-4; 0,4>          two disjoint segments
//	(-3,-3; 3,3)                     arc inside a bounding box
//
// Text after the closing bracket is ignored.
func ParseShape(id, def string) (*Shape, error) {
	def = strings.TrimLeft(def, " \t\r\n")
	if def == "" {
		return nil, fmt.Errorf("%w %q: empty definition", ErrBadShape, id)
	}

	var typ DrawType
	var closer string
	switch def[0] {
	case '<':
		typ, closer = DrawLines, ">"
	case '(':
		typ, closer = DrawArc, ")"
	default:
		return nil, fmt.Errorf("%w %q: must start with '<' or '('", ErrBadShape, id)
	}

	body := def[1:]
	if i := strings.Index(body, closer); i >= 0 {
		body = body[:i]
	}

	s := &Shape{ID: id, Type: typ}
	for n, seg := range strings.Split(body, "/") {
		if n > 0 && len(s.Points) > 0 {
			s.Points = append(s.Points, geom.Point{X: InvalidCoord, Y: InvalidCoord})
			s.Type = DrawBroken
		}
		for _, pt := range strings.Split(seg, ";") {
			if strings.TrimSpace(pt) == "" {
				continue
			}
			p, err := parsePoint(pt)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %v", ErrBadShape, id, err)
			}
			s.Points = append(s.Points, p)
		}
	}

	if typ == DrawArc {
		if len(s.Points) != 2 {
			return nil, fmt.Errorf("%w %q: arc needs exactly two points, got %d", ErrBadShape, id, len(s.Points))
		}
		s.Angles = [2]float64{0, 360}
	}
	if len(s.Points) == 0 {
		return nil, fmt.Errorf("%w %q: no points", ErrBadShape, id)
	}

	s.measure()

	if s.Type == DrawLines && len(s.Points) > 2 && s.Points[0] == s.Points[len(s.Points)-1] {
		s.Type = DrawPolygon
	}
	return s, nil
}

func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("point %q is not x,y", strings.TrimSpace(s))
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", strings.TrimSpace(s), err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", strings.TrimSpace(s), err)
	}
	return geom.Point{X: float64(x), Y: float64(y)}, nil
}
