package load

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	genome "github.com/gogpu/gg-genome"
	"github.com/gogpu/gg-genome/composite"
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/style"
)

// GFF attribute problems.
var (
	ErrBadTarget = errors.New("load: malformed Target attribute")
	ErrBadGap    = errors.New("load: malformed Gap attribute")
)

// ReadGFF reads a GFF stream as features drawn with st. Exon and CDS
// records with a Parent attribute are attached to the parent transcript
// rather than returned on their own. Under a graph style every record is
// returned as graph data.
func ReadGFF(r io.Reader, st *style.Style) ([]*feature.Feature, error) {
	var (
		out      []*feature.Feature
		byID     = make(map[string]*feature.Feature)
		children = make(map[string][]feature.Span)
	)

	sc := featio.NewScanner(gff.NewReader(r))
	for sc.Next() {
		g := sc.Feat().(*gff.Feature)
		if parent := attr(g.FeatAttributes, "Parent"); parent != "" && isExon(g.Feature) {
			children[parent] = append(children[parent], feature.Span{X1: g.FeatStart + 1, X2: g.FeatEnd})
			continue
		}
		f, err := FromGFF(g)
		if err != nil {
			return out, err
		}
		if st != nil && st.Mode == style.ModeGraph {
			f.Kind = feature.KindGraph
		}
		f.Style = st
		byID[f.ID] = f
		out = append(out, f)
	}
	if err := sc.Error(); err != nil {
		return out, fmt.Errorf("load: reading GFF: %w", err)
	}

	for id, exons := range children {
		f, ok := byID[id]
		if !ok {
			genome.Logger().Warn("load: exons without a parent", "parent", id, "exons", len(exons))
			continue
		}
		setExons(f, exons)
	}
	genome.Logger().Debug("load: GFF", "features", len(out))
	return out, nil
}

// attr returns the named attribute value without surrounding space or
// quotes.
func attr(attrs gff.Attributes, tag string) string {
	return strings.Trim(strings.TrimSpace(attrs.Get(tag)), `"`)
}

func isExon(kind string) bool {
	return kind == "exon" || kind == "CDS"
}

// setExons makes f a transcript of the given exons, merging any that
// touch, and fills the introns between them.
func setExons(f *feature.Feature, exons []feature.Span) {
	slices.SortFunc(exons, func(a, b feature.Span) int { return a.X1 - b.X1 })
	merged := exons[:1]
	for _, e := range exons[1:] {
		last := &merged[len(merged)-1]
		if e.X1 <= last.X2+1 {
			last.X2 = max(last.X2, e.X2)
			continue
		}
		merged = append(merged, e)
	}

	f.Kind = feature.KindTranscript
	f.Exons = merged
	f.Introns = f.Introns[:0]
	for i := 1; i < len(merged); i++ {
		f.Introns = append(f.Introns, feature.Span{X1: merged[i-1].X2 + 1, X2: merged[i].X1 - 1})
	}
	f.X1 = min(f.X1, merged[0].X1)
	f.X2 = max(f.X2, merged[len(merged)-1].X2)
}

// FromGFF converts one GFF record. The kind follows the record type:
// mRNA and transcript records are transcripts, *_site records are
// boundary glyphs when they span two bases, records with a Target
// attribute are alignments, and everything else is a basic feature.
func FromGFF(g *gff.Feature) (*feature.Feature, error) {
	attrs := g.FeatAttributes
	f := &feature.Feature{
		ID:     attr(attrs, "ID"),
		Name:   attr(attrs, "Name"),
		X1:     g.FeatStart + 1,
		X2:     g.FeatEnd,
		Strand: g.FeatStrand,
		Kind:   feature.KindBasic,
	}
	if g.FeatScore != nil {
		f.Score = *g.FeatScore
		f.HasScore = true
	}
	if f.ID == "" {
		f.ID = fmt.Sprintf("%s:%s:%d-%d", g.SeqName, g.Feature, f.X1, f.X2)
	}

	switch {
	case g.Feature == "mRNA" || g.Feature == "transcript":
		f.Kind = feature.KindTranscript
	case strings.HasSuffix(g.Feature, "_site"):
		f.Kind = feature.KindGlyph
		f.Flags.Boundary = f.X2-f.X1 == 1
	case attr(attrs, "Target") != "":
		if err := setTarget(f, attr(attrs, "Target"), attr(attrs, "Gap")); err != nil {
			return nil, fmt.Errorf("%s: %w", f.ID, err)
		}
	}
	if f.Name == "" {
		f.Name = f.ID
	}
	return f, nil
}

// setTarget makes f an alignment to the query named by a
// "name start end [strand]" Target value, with match blocks from a
// Gap value if one is given.
func setTarget(f *feature.Feature, target, gap string) error {
	fields := strings.Fields(target)
	if len(fields) < 3 {
		return fmt.Errorf("%w: %q", ErrBadTarget, target)
	}
	y1, err1 := strconv.Atoi(fields[1])
	y2, err2 := strconv.Atoi(fields[2])
	if err := errors.Join(err1, err2); err != nil || y1 > y2 {
		return fmt.Errorf("%w: %q", ErrBadTarget, target)
	}
	strand := seq.Plus
	if len(fields) > 3 && fields[3] == "-" {
		strand = seq.Minus
	}

	f.Kind = feature.KindAlignment
	if f.Name == "" {
		f.Name = fields[0]
	}
	f.Homol = &feature.Homol{Y1: y1, Y2: y2, Strand: strand}
	if gap == "" {
		return nil
	}
	blocks, err := gapBlocks(f.X1, y1, y2, strand, gap)
	if err != nil {
		return err
	}
	if len(blocks) > 1 {
		f.Homol.Blocks = blocks
	}
	return nil
}

// gapBlocks walks a Gap value in the GFF3 alignment format ("M10 D50 M20"). M operations are
// matches, D operations skip target bases and I operations skip query
// bases. A target skip of at least the default minimum intron length is
// an intron. On a reverse strand query the query coordinates fall from
// y2 as the target rises.
func gapBlocks(t, y1, y2 int, strand seq.Strand, gap string) ([]feature.MatchBlock, error) {
	var (
		blocks  []feature.MatchBlock
		q       = 0
		pending feature.Boundary
	)
	for _, op := range strings.Fields(gap) {
		if len(op) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrBadGap, op)
		}
		n, err := strconv.Atoi(op[1:])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadGap, op)
		}
		switch op[0] {
		case 'M':
			b := feature.MatchBlock{
				T1: t, T2: t + n - 1,
				TStrand: seq.Plus, QStrand: strand,
			}
			if strand == seq.Minus {
				b.Q1, b.Q2 = y2-q-n+1, y2-q
			} else {
				b.Q1, b.Q2 = y1+q, y1+q+n-1
			}
			if len(blocks) > 0 {
				b.StartBoundary = pending
				blocks[len(blocks)-1].EndBoundary = pending
			}
			blocks = append(blocks, b)
			pending = feature.BoundaryUnset
			t += n
			q += n
		case 'D':
			if n >= composite.DefaultMinIntronLen {
				pending = feature.BoundaryIntron
			} else if pending != feature.BoundaryIntron {
				pending = feature.BoundaryMatch
			}
			t += n
		case 'I':
			if pending != feature.BoundaryIntron {
				pending = feature.BoundaryMatch
			}
			q += n
		default:
			// Frameshifts are not drawn.
			return nil, fmt.Errorf("%w: unsupported operation %q", ErrBadGap, op)
		}
	}
	if q != y2-y1+1 {
		return nil, fmt.Errorf("%w: %q covers %d query bases, Target has %d", ErrBadGap, gap, q, y2-y1+1)
	}
	return blocks, nil
}
