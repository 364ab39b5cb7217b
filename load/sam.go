package load

import (
	"errors"
	"fmt"
	"io"

	"github.com/biogo/biogo/seq"
	"github.com/biogo/hts/sam"

	genome "github.com/gogpu/gg-genome"
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/style"
)

// ErrNoCigar is returned for a mapped record without a CIGAR string.
var ErrNoCigar = errors.New("load: mapped record has no CIGAR")

// ReadSAM reads the mapped records of a SAM stream as alignments drawn
// with st. Unmapped records are skipped, as are mapped records without a
// CIGAR, which are logged.
func ReadSAM(r io.Reader, st *style.Style) ([]*feature.Feature, error) {
	sr, err := sam.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("load: reading SAM header: %w", err)
	}

	var out []*feature.Feature
	for n := 1; ; n++ {
		rec, err := sr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, fmt.Errorf("load: reading SAM record %d: %w", n, err)
		}
		if rec.Flags&sam.Unmapped != 0 || rec.Ref == nil {
			continue
		}
		f, err := FromRecord(rec)
		if errors.Is(err, ErrNoCigar) {
			genome.Logger().Warn("load: skipping record", "name", rec.Name, "err", err)
			continue
		}
		if err != nil {
			return out, err
		}
		f.Style = st
		out = append(out, f)
	}
	genome.Logger().Debug("load: SAM", "alignments", len(out))
	return out, nil
}

// FromRecord converts one mapped SAM record to an alignment. Match
// blocks are built from the M, = and X operations; N operations are
// introns and D and I operations are alignment gaps. Adjacent match
// operations share a block. A record that aligns as one block carries no
// block array.
//
// The feature's strand is the read strand. Query coordinates count
// along the stored sequence, soft clips included.
func FromRecord(rec *sam.Record) (*feature.Feature, error) {
	if len(rec.Cigar) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCigar, rec.Name)
	}

	strand := seq.Plus
	if rec.Flags&sam.Reverse != 0 {
		strand = seq.Minus
	}

	var (
		blocks  []feature.MatchBlock
		t       = rec.Pos + 1
		q       = 1
		open    bool
		pending feature.Boundary
	)
	// gap closes the open block. An intron anywhere in a run of gap
	// operations makes the whole run an intron.
	gap := func(b feature.Boundary) {
		open = false
		if len(blocks) > 0 && pending != feature.BoundaryIntron {
			pending = b
		}
	}
	for _, co := range rec.Cigar {
		n := co.Len()
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
			if open {
				b := &blocks[len(blocks)-1]
				b.T2 += n
				b.Q2 += n
			} else {
				if len(blocks) > 0 {
					blocks[len(blocks)-1].EndBoundary = pending
				}
				blocks = append(blocks, feature.MatchBlock{
					T1: t, T2: t + n - 1,
					Q1: q, Q2: q + n - 1,
					TStrand: seq.Plus, QStrand: seq.Plus,
					StartBoundary: pending,
				})
				open = true
				pending = feature.BoundaryUnset
			}
			t += n
			q += n
		case sam.CigarSkipped:
			t += n
			gap(feature.BoundaryIntron)
		case sam.CigarDeletion:
			t += n
			gap(feature.BoundaryMatch)
		case sam.CigarInsertion:
			q += n
			gap(feature.BoundaryMatch)
		case sam.CigarSoftClipped:
			q += n
			open = false
		}
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: %s has no aligned bases", ErrNoCigar, rec.Name)
	}

	first, last := blocks[0], blocks[len(blocks)-1]
	f := &feature.Feature{
		ID:       fmt.Sprintf("%s:%d", rec.Name, rec.Pos+1),
		Name:     rec.Name,
		X1:       first.T1,
		X2:       last.T2,
		Strand:   strand,
		Score:    float64(rec.MapQ),
		HasScore: true,
		Kind:     feature.KindAlignment,
		Homol: &feature.Homol{
			Y1:       first.Q1,
			Y2:       last.Q2,
			Strand:   seq.Plus,
			Length:   rec.Seq.Length,
			Sequence: string(rec.Seq.Expand()),
		},
	}
	if len(blocks) > 1 {
		f.Homol.Blocks = blocks
	}
	return f, nil
}
