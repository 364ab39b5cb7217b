package feature

import (
	"fmt"

	"github.com/biogo/biogo/seq"

	"github.com/gogpu/gg-genome/style"
)

// Kind is the payload carried by a feature.
type Kind uint8

// Feature kinds.
const (
	KindBasic Kind = iota
	KindAlignment
	KindTranscript
	KindGlyph
	KindGraph
)

var kindNames = [...]string{"basic", "alignment", "transcript", "glyph", "graph"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Flags are display flags. Squashed, Collapsed and Joined are set on the
// source features that a composite stands in for; SquashedStart and
// SquashedEnd are set on the composite when an outer edge was inferred.
type Flags struct {
	Squashed      bool
	Collapsed     bool
	Joined        bool
	Masked        bool
	SquashedStart bool
	SquashedEnd   bool

	// Boundary marks a feature defined by the junction between two bases,
	// such as a splice site, rather than by a span.
	Boundary bool
}

// Hidden reports whether the feature is represented by a composite.
func (f Flags) Hidden() bool {
	return f.Squashed || f.Collapsed || f.Joined
}

// Span is a target interval used for transcript exons and introns.
type Span struct {
	X1, X2 int
}

// Feature is one biological annotation.
type Feature struct {
	// ID is unique within a feature set; Name is the display name and
	// groups alignment series.
	ID   string
	Name string

	X1, X2 int
	Strand seq.Strand

	Score    float64
	HasScore bool

	Kind  Kind
	Style *style.Style

	// Homol is set for alignments.
	Homol *Homol

	// Exons and Introns are set for transcripts.
	Exons   []Span
	Introns []Span

	Flags Flags

	// Composite is the non-owning back-reference from a hidden source
	// feature to the composite that represents it.
	Composite *Feature

	// Population and Children are set on composites only.
	Population int
	Children   []*Feature
}

// Len returns the number of bases covered.
func (f *Feature) Len() int { return f.X2 - f.X1 + 1 }

// IsComposite reports whether f was synthesised from other features.
func (f *Feature) IsComposite() bool { return len(f.Children) > 0 }

// Blocks returns the match blocks of an alignment, or nil.
func (f *Feature) Blocks() []MatchBlock {
	if f.Homol == nil {
		return nil
	}
	return f.Homol.Blocks
}

// IsGapped reports whether f is an alignment with at least two match blocks.
func (f *Feature) IsGapped() bool {
	return len(f.Blocks()) >= 2
}

// Overlaps reports whether f and g share at least one base.
func (f *Feature) Overlaps(g *Feature) bool {
	return f.X1 <= g.X2 && g.X1 <= f.X2
}

func (f *Feature) String() string {
	return fmt.Sprintf("%s %d-%d(%v)", f.ID, f.X1, f.X2, f.Strand)
}

// Reset clears the compositing side effects left on a source feature by a
// previous pass.
func (f *Feature) Reset() {
	f.Flags.Squashed = false
	f.Flags.Collapsed = false
	f.Flags.Joined = false
	f.Composite = nil
}

// SubPartKind identifies the part of a feature under a point.
type SubPartKind uint8

// Sub-part kinds.
const (
	SubPartNone SubPartKind = iota
	SubPartMatch
	SubPartGap
	SubPartExon
	SubPartIntron
)

// SubPart is one match block, gap, exon or intron of a feature. Index counts
// from the feature's 5' end in target order. The zero SubPart means the
// whole feature.
type SubPart struct {
	Kind   SubPartKind
	Index  int
	X1, X2 int
}

// IsZero reports whether s stands for the whole feature.
func (s SubPart) IsZero() bool { return s.Kind == SubPartNone }
