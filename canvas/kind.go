package canvas

import (
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/geom"
	"github.com/gogpu/gg-genome/style"
)

// Kind is the renderable behaviour of a column, chosen by its style's
// mode. The set of kinds is closed: basic, alignment, glyph and graph.
type Kind interface {
	// Mode is the style mode the kind draws.
	Mode() style.Mode

	// Zoom runs after the view's zoom or span changes.
	Zoom(fs *FeatureSet)

	// Paint draws the column's visible features.
	Paint(fs *FeatureSet, p Painter) error

	// Extent returns the device box f is drawn in.
	Extent(fs *FeatureSet, f *feature.Feature) geom.Rect

	// Hit reports whether device point (x, y) falls on f.
	Hit(fs *FeatureSet, f *feature.Feature, x, y float64) bool
}

// kindFor returns the kind drawing mode, or nil.
func kindFor(mode style.Mode) Kind {
	switch mode {
	case style.ModeBasic:
		return basicKind{mode: style.ModeBasic}
	case style.ModeTranscript:
		return basicKind{mode: style.ModeTranscript}
	case style.ModeAlignment:
		return alignmentKind{}
	case style.ModeGlyph:
		return glyphKind{}
	case style.ModeGraph:
		return graphKind{}
	}
	return nil
}
