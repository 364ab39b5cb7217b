package style

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"

	genome "github.com/gogpu/gg-genome"
)

// ErrUnknownMode is returned when a style sheet names an unknown mode or
// enumerated value.
var ErrUnknownMode = errors.New("style: unknown value")

// NormaliseID folds the case of a style id so that "RNASeq" and "rnaseq"
// name the same style.
func NormaliseID(id string) string {
	return cases.Fold().String(id)
}

// Sheet is a set of styles keyed by normalised id, plus the highlight
// colours used for focus groups.
type Sheet struct {
	styles map[string]*Style
	order  []string

	// Highlight maps a focus group name ("focus", "evidence", "masked",
	// "filtered") to its selected colours.
	Highlight map[string]Colours
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{styles: make(map[string]*Style), Highlight: make(map[string]Colours)}
}

// Add registers s, replacing any style with the same normalised id.
func (sh *Sheet) Add(s *Style) {
	if s.Name == "" {
		s.Name = s.ID
	}
	s.ID = NormaliseID(s.ID)
	if _, ok := sh.styles[s.ID]; !ok {
		sh.order = append(sh.order, s.ID)
	}
	sh.styles[s.ID] = s
}

// Lookup returns the style with the given id, ignoring case.
func (sh *Sheet) Lookup(id string) *Style {
	return sh.styles[NormaliseID(id)]
}

// Styles returns the styles in the order they were added.
func (sh *Sheet) Styles() []*Style {
	out := make([]*Style, 0, len(sh.order))
	for _, id := range sh.order {
		out = append(out, sh.styles[id])
	}
	return out
}

// Len returns the number of styles.
func (sh *Sheet) Len() int { return len(sh.styles) }

// sheetFile is the TOML form of a style sheet.
type sheetFile struct {
	Style     []styleEntry           `toml:"style"`
	Highlight map[string]colourEntry `toml:"highlight"`
}

type colourEntry struct {
	Fill   string `toml:"fill"`
	Border string `toml:"border"`
}

type styleEntry struct {
	ID     string  `toml:"id"`
	Mode   string  `toml:"mode"`
	Width  float64 `toml:"width"`
	Fill   string  `toml:"fill"`
	Border string  `toml:"border"`

	ShowGaps         bool     `toml:"show-gaps"`
	Squash           bool     `toml:"squash"`
	Collapse         bool     `toml:"collapse"`
	Join             int      `toml:"join"`
	JoinMax          int      `toml:"join-max"`
	WithinAlignError int      `toml:"within-align-error"`
	ColinearColours  []string `toml:"colinear-colours"`

	ScoreMode  string  `toml:"score-mode"`
	MinScore   float64 `toml:"min-score"`
	MaxScore   float64 `toml:"max-score"`
	ScoreScale string  `toml:"score-scale"`

	GraphMode string `toml:"graph-mode"`
	MinBin    int    `toml:"min-bin"`
	FixedBins bool   `toml:"fixed-bins"`
	ReBin     bool   `toml:"rebin"`

	Glyph          string  `toml:"glyph"`
	Glyph5         string  `toml:"glyph-5"`
	Glyph5Rev      string  `toml:"glyph-5-rev"`
	Glyph3         string  `toml:"glyph-3"`
	Glyph3Rev      string  `toml:"glyph-3-rev"`
	GlyphAlign     string  `toml:"glyph-align"`
	GlyphStrand    string  `toml:"glyph-strand"`
	GlyphThreshold float64 `toml:"glyph-threshold"`
	AltFill        string  `toml:"alt-fill"`
	AltBorder      string  `toml:"alt-border"`
	Splice         bool    `toml:"splice"`

	StrandSpecific bool `toml:"strand-specific"`
}

// Load reads a TOML style sheet from path.
func Load(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("style: open sheet: %w", err)
	}
	defer f.Close()

	sh, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("style: %s: %w", path, err)
	}
	return sh, nil
}

// Decode reads a TOML style sheet from r. Unknown keys are logged and ignored.
func Decode(r io.Reader) (*Sheet, error) {
	var file sheetFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for _, key := range md.Undecoded() {
		genome.Logger().Warn("style: ignoring unknown key", "key", key.String())
	}

	sh := NewSheet()
	for i, e := range file.Style {
		s, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("style #%d %q: %w", i+1, e.ID, err)
		}
		sh.Add(s)
	}
	for group, c := range file.Highlight {
		cols, err := c.build()
		if err != nil {
			return nil, fmt.Errorf("highlight %q: %w", group, err)
		}
		sh.Highlight[NormaliseID(group)] = cols
	}
	return sh, nil
}

func (c colourEntry) build() (Colours, error) {
	fill, err := ParseColour(c.Fill)
	if err != nil {
		return Colours{}, err
	}
	border, err := ParseColour(c.Border)
	if err != nil {
		return Colours{}, err
	}
	return Colours{Fill: fill, Border: border}, nil
}

func (e *styleEntry) build() (*Style, error) {
	if e.ID == "" {
		return nil, errors.New("missing id")
	}
	s := &Style{
		ID:               e.ID,
		Name:             e.ID,
		Width:            e.Width,
		ShowGaps:         e.ShowGaps,
		Squash:           e.Squash,
		Collapse:         e.Collapse,
		Join:             e.Join,
		JoinMax:          e.JoinMax,
		WithinAlignError: e.WithinAlignError,
		MinScore:         e.MinScore,
		MaxScore:         e.MaxScore,
		MinBin:           e.MinBin,
		FixedBins:        e.FixedBins,
		ReBin:            e.ReBin,
		GlyphThreshold:   e.GlyphThreshold,
		Splice:           e.Splice,
		StrandSpecific:   e.StrandSpecific,
	}

	var err error
	if s.Mode, err = lookup(e.Mode, "mode", modeNames[:], ModeBasic); err != nil {
		return nil, err
	}
	if s.ScoreMode, err = lookup(e.ScoreMode, "score-mode", scoreModeNames[:], ScoreNone); err != nil {
		return nil, err
	}
	if s.Scale, err = lookup(e.ScoreScale, "score-scale", []string{"linear", "log"}, ScaleLinear); err != nil {
		return nil, err
	}
	if s.GraphMode, err = lookup(e.GraphMode, "graph-mode", []string{"histogram", "line", "heatmap"}, GraphHistogram); err != nil {
		return nil, err
	}
	if s.GlyphAlign, err = lookup(e.GlyphAlign, "glyph-align", []string{"centre", "left", "right"}, AlignCentre); err != nil {
		return nil, err
	}
	if s.GlyphStrand, err = lookup(e.GlyphStrand, "glyph-strand", []string{"none", "flip-x", "flip-y"}, GlyphStrandNone); err != nil {
		return nil, err
	}

	if s.Colours, err = (colourEntry{Fill: e.Fill, Border: e.Border}).build(); err != nil {
		return nil, err
	}
	if s.AltColours, err = (colourEntry{Fill: e.AltFill, Border: e.AltBorder}).build(); err != nil {
		return nil, err
	}
	if len(e.ColinearColours) > len(s.ColinearColours) {
		return nil, fmt.Errorf("colinear-colours: want at most %d, got %d", len(s.ColinearColours), len(e.ColinearColours))
	}
	for i, name := range e.ColinearColours {
		if s.ColinearColours[i], err = ParseColour(name); err != nil {
			return nil, fmt.Errorf("colinear-colours: %w", err)
		}
	}

	shapes := []struct {
		def string
		dst **Shape
		tag string
	}{
		{e.Glyph, &s.Shape, "glyph"},
		{e.Glyph5, &s.Shape5, "glyph-5"},
		{e.Glyph5Rev, &s.Shape5Rev, "glyph-5-rev"},
		{e.Glyph3, &s.Shape3, "glyph-3"},
		{e.Glyph3Rev, &s.Shape3Rev, "glyph-3-rev"},
	}
	for _, sh := range shapes {
		if sh.def == "" {
			continue
		}
		if *sh.dst, err = ParseShape(s.ID+":"+sh.tag, sh.def); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// lookup maps a case-insensitive name to its index in names. An empty name
// yields def.
func lookup[T ~uint8](name, key string, names []string, def T) (T, error) {
	if name == "" {
		return def, nil
	}
	folded := NormaliseID(name)
	for i, n := range names {
		if n == folded {
			return T(i), nil
		}
	}
	return def, fmt.Errorf("%w %q for %s", ErrUnknownMode, name, key)
}
