package canvas

import (
	"fmt"
	"image/color"

	genome "github.com/gogpu/gg-genome"
	"github.com/gogpu/gg-genome/composite"
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/focus"
	"github.com/gogpu/gg-genome/gapped"
	"github.com/gogpu/gg-genome/geom"
	"github.com/gogpu/gg-genome/glyph"
	"github.com/gogpu/gg-genome/style"
)

// View is the visible span and zoom.
type View struct {
	// Start and End are the first and last visible bases.
	Start, End int

	PixelsPerBase float64
}

// Transform returns the world to device transform for a column whose left
// edge is at device x, with base Start at device y.
func (v View) Transform(x, y float64) geom.Transform {
	return geom.View(v.PixelsPerBase, v.Start, 0, 0).Translate(x, y)
}

// Height returns the device height of the view.
func (v View) Height() float64 {
	return float64(v.End-v.Start+1) * v.PixelsPerBase
}

// Context is the rendering context of one view. It owns the caches the
// columns draw with and is torn down with Close.
//
// A Context and its feature sets are not safe for concurrent use; the
// glyph engine alone may be shared.
type Context struct {
	view       View
	glyphs     *glyph.Engine
	segments   *gapped.Pool
	compositor *composite.Compositor
	focus      *focus.Set
	dna        gapped.DNA
	highlight  color.Color

	sets []*FeatureSet
}

// New creates a rendering context.
func New(opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		view:       o.view,
		glyphs:     glyph.NewEngine(),
		segments:   o.pool,
		compositor: composite.New(o.composite...),
		focus:      focus.NewSet(),
		dna:        o.dna,
		highlight:  o.highlight,
	}
	if c.segments == nil {
		c.segments = gapped.NewPool()
	}
	for g, col := range o.focusColours {
		c.focus.SetColours(g, col)
	}
	return c
}

// View returns the current view.
func (c *Context) View() View { return c.view }

// SetView changes the view. A change of zoom or span drops every column's
// segment cache and re-bins graph columns.
func (c *Context) SetView(v View) {
	if v == c.view {
		return
	}
	c.view = v
	genome.Logger().Debug("canvas: view",
		"start", v.Start,
		"end", v.End,
		"pixels_per_base", v.PixelsPerBase)
	for _, fs := range c.sets {
		fs.zoom()
	}
}

// Glyphs returns the glyph engine.
func (c *Context) Glyphs() *glyph.Engine { return c.glyphs }

// Compositor returns the alignment compositor.
func (c *Context) Compositor() *composite.Compositor { return c.compositor }

// Focus returns the focus set.
func (c *Context) Focus() *focus.Set { return c.focus }

// FeatureSets returns the columns in creation order.
func (c *Context) FeatureSets() []*FeatureSet { return c.sets }

// NewFeatureSet creates a column spanning bases [start, end] drawn with st.
// A nil style, or one with no drawable mode, gives a column that paints
// nothing.
func (c *Context) NewFeatureSet(id string, st *style.Style, start, end int) *FeatureSet {
	fs := &FeatureSet{
		ctx:   c,
		id:    id,
		style: st,
		start: start,
		end:   end,
		dirty: true,
	}
	if st != nil {
		fs.kind = kindFor(st.Mode)
	}
	c.sets = append(c.sets, fs)
	return fs
}

// Pick finds the column, feature and sub-part under device point (x, y).
func (c *Context) Pick(x, y float64) (*FeatureSet, *feature.Feature, feature.SubPart) {
	for i := len(c.sets) - 1; i >= 0; i-- {
		fs := c.sets[i]
		if x < fs.x || x >= fs.x+fs.Width() {
			continue
		}
		if f, sub := fs.Pick(x, y); f != nil {
			return fs, f, sub
		}
	}
	return nil, nil, feature.SubPart{}
}

// Layout places the columns left to right from device x, leaving gap
// between neighbours, and returns the right edge of the last column.
func (c *Context) Layout(x, gap float64) float64 {
	for i, fs := range c.sets {
		if i > 0 {
			x += gap
		}
		fs.SetX(x)
		x += fs.Width()
	}
	return x
}

// Paint draws every column in creation order.
func (c *Context) Paint(p Painter) error {
	for _, fs := range c.sets {
		if err := fs.Paint(p); err != nil {
			return fmt.Errorf("canvas: column %q: %w", fs.id, err)
		}
	}
	return nil
}

func (c *Context) highlightColour() color.Color { return c.highlight }

// Close returns pooled storage and clears the focus set. The context must
// not be used afterwards.
func (c *Context) Close() {
	for _, fs := range c.sets {
		fs.releaseSegments()
	}
	c.focus.Reset()
	c.sets = nil
}
