package style

import (
	"fmt"
	"image/color"
)

// Mode selects the renderable kind of a feature set.
type Mode uint8

// Display modes.
const (
	ModeInvalid Mode = iota
	ModeBasic
	ModeAlignment
	ModeTranscript
	ModeGlyph
	ModeGraph
)

var modeNames = [...]string{"invalid", "basic", "alignment", "transcript", "glyph", "graph"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ScoreMode selects how a feature's score affects its drawn size.
type ScoreMode uint8

// Score modes. ScoreNone and ScoreAlt leave glyph geometry independent of
// the exact score, which makes those glyphs cacheable.
const (
	ScoreNone ScoreMode = iota
	ScoreWidth
	ScoreHeight
	ScoreSize
	ScoreAlt
)

var scoreModeNames = [...]string{"none", "width", "height", "size", "alt"}

func (m ScoreMode) String() string {
	if int(m) < len(scoreModeNames) {
		return scoreModeNames[m]
	}
	return fmt.Sprintf("ScoreMode(%d)", m)
}

// Scales reports whether the mode scales geometry continuously by score.
func (m ScoreMode) Scales() bool {
	return m == ScoreWidth || m == ScoreHeight || m == ScoreSize
}

// Scale is the score normalisation scale.
type Scale uint8

// Score scales.
const (
	ScaleLinear Scale = iota
	ScaleLog
)

// GraphMode selects how graph bins are drawn.
type GraphMode uint8

// Graph modes.
const (
	GraphHistogram GraphMode = iota
	GraphLine
	GraphHeatmap
)

// GlyphAlign positions a glyph's origin across the column.
type GlyphAlign uint8

// Glyph alignments.
const (
	AlignCentre GlyphAlign = iota
	AlignLeft
	AlignRight
)

// GlyphStrand selects how reverse strand glyphs are mirrored.
type GlyphStrand uint8

// Glyph strand policies.
const (
	GlyphStrandNone GlyphStrand = iota
	GlyphFlipX
	GlyphFlipY
)

// Colours is a fill and border pair. A nil colour is unset.
type Colours struct {
	Fill   color.Color
	Border color.Color
}

// Colinearity colour slots, indexed by gapped.Colinearity.
const (
	ColinearPerfect = iota
	ColinearClose
	ColinearNot
)

// Style holds the display and compositing parameters of a feature set.
type Style struct {
	// ID is the case-folded identifier. Name keeps the original spelling.
	ID   string
	Name string

	Mode    Mode
	Width   float64
	Colours Colours

	// Alignment display.
	ShowGaps         bool
	Squash           bool
	Collapse         bool
	Join             int
	JoinMax          int
	WithinAlignError int
	ColinearColours  [3]color.Color

	// Scores.
	ScoreMode ScoreMode
	MinScore  float64
	MaxScore  float64
	Scale     Scale

	// Graphs.
	GraphMode GraphMode
	MinBin    int
	FixedBins bool
	ReBin     bool

	// Glyphs.
	Shape          *Shape
	Shape5         *Shape
	Shape5Rev      *Shape
	Shape3         *Shape
	Shape3Rev      *Shape
	GlyphAlign     GlyphAlign
	GlyphStrand    GlyphStrand
	GlyphThreshold float64
	AltColours     Colours
	Splice         bool

	StrandSpecific bool
}

// IsAlignment reports whether s composites alignments.
func (s *Style) IsAlignment() bool {
	return s != nil && s.Mode == ModeAlignment
}

// Compresses reports whether any of squash, collapse or join is enabled.
func (s *Style) Compresses() bool {
	return s.Squash || s.Collapse || s.Join > 0
}

// GlyphShape5 returns the 5' glyph shape, preferring the reverse strand
// variant when reverse is set and one is configured.
func (s *Style) GlyphShape5(reverse bool) *Shape {
	if reverse && s.Shape5Rev != nil {
		return s.Shape5Rev
	}
	return s.Shape5
}

// GlyphShape3 returns the 3' glyph shape, preferring the reverse strand
// variant when reverse is set and one is configured.
func (s *Style) GlyphShape3(reverse bool) *Shape {
	if reverse && s.Shape3Rev != nil {
		return s.Shape3Rev
	}
	return s.Shape3
}

// ColinearColour returns the colour for a colinearity class, falling back
// to the defaults when the style sets none.
func (s *Style) ColinearColour(class int) color.Color {
	if class < 0 || class >= len(s.ColinearColours) {
		return nil
	}
	if c := s.ColinearColours[class]; c != nil {
		return c
	}
	return DefaultColinearColours[class]
}

// DefaultColinearColours are used for colinearity lines when a style sets none.
var DefaultColinearColours = [3]color.Color{
	ColinearPerfect: color.RGBA{R: 0x00, G: 0xc0, B: 0x00, A: 0xff},
	ColinearClose:   color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	ColinearNot:     color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
}
