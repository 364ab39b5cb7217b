package density

import (
	"math"
	"slices"

	genome "github.com/gogpu/gg-genome"
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/style"
)

// DefaultMinBin is the minimum bin height in pixels when the style sets
// none.
const DefaultMinBin = 4

// Bin is an aggregated stand-in for the features over [Y1, Y2].
type Bin struct {
	Y1, Y2 int

	// Score is the contributing score of greatest magnitude, sign kept.
	Score float64

	// Norm is Score normalised over the style's score range.
	Norm float64

	// Width is the drawn width in pixels.
	Width float64

	// Feature is the source of Score.
	Feature *feature.Feature
}

// BasesPerBin returns the nominal bin size for a span of bases drawn at
// pixelsPerBase, targeting minBin pixels per bin.
func BasesPerBin(start, end int, pixelsPerBase float64, minBin int) int {
	if minBin <= 0 {
		minBin = DefaultMinBin
	}
	span := end - start + 1
	n := int(float64(span) * pixelsPerBase / float64(minBin))
	if n < 1 {
		n = 1
	}
	return max(span/n, 1)
}

func byStart(a, b *feature.Feature) int {
	if a.X1 != b.X1 {
		return a.X1 - b.X1
	}
	return a.X2 - b.X2
}

// Bins aggregates features over [start, end] at pixelsPerBase for a
// column width pixels wide drawn with st. Features should be sorted by
// start; an unsorted slice is sorted in a copy.
//
// Bins with a zero score are dropped. Long silent stretches are skipped
// rather than filled with empty bins. Without fixed bins a bin stretches to
// cover a wide feature and shrinks to the features it holds; with fixed
// bins a populated bin is closed early rather than swallow a wide feature.
// The returned bins are in order and never overlap.
func Bins(st *style.Style, features []*feature.Feature, start, end int, pixelsPerBase, width float64) []Bin {
	if len(features) == 0 || end < start {
		return nil
	}
	if !slices.IsSortedFunc(features, byStart) {
		features = slices.Clone(features)
		slices.SortStableFunc(features, byStart)
	}
	fixed := st.FixedBins
	bpb := BasesPerBin(start, end, pixelsPerBase, st.MinBin)

	var bins []Bin
	src := 0
	for binStart := start; binStart <= end && src < len(features); {
		binEnd := binStart + bpb - 1
		bin := Bin{Y1: binStart, Y2: binEnd}
		maxY2 := math.MinInt

		for ; src < len(features); src++ {
			f := features[src]
			if f.X2 < binStart {
				continue
			}
			if f.X1 > binEnd {
				if f.X1 > binEnd+bpb {
					// skip the silent stretch, keeping bins on bpb boundaries
					binEnd = f.X1 - (f.X1-binStart+1)%bpb - 1
				}
				break
			}
			if fixed && bin.Feature != nil && f.X2 > binEnd+bpb && f.X1 > bin.Y1 {
				bin.Y2 = f.X1 - 1
				binEnd = bin.Y2
				break
			}
			if bin.Feature == nil {
				if !fixed {
					bin.Y1 = max(f.X1, binStart)
				}
				bin.Feature = f
			}
			if math.Abs(f.Score) > math.Abs(bin.Score) {
				bin.Score = f.Score
				bin.Feature = f
			}
			maxY2 = max(maxY2, f.X2)

			if f.X2 > binEnd {
				if !fixed {
					binEnd = f.X2
					bin.Y2 = binEnd
				} else if f.X2 > binEnd+bpb {
					binEnd = f.X2
					bin.Y2 = binEnd
				}
				break
			}
		}

		if bin.Score != 0 {
			if !fixed && maxY2 < bin.Y2 {
				bin.Y2 = maxY2
			}
			bin.Norm = NormalisedScore(st, bin.Score)
			bin.Width = width
			if st.GraphMode != style.GraphHeatmap {
				bin.Width = width * bin.Norm
			}
			bins = append(bins, bin)
		}
		binStart = binEnd + 1
	}

	genome.Logger().Debug("density: rebin",
		"style", st.ID,
		"features", len(features),
		"bases_per_bin", bpb,
		"bins", len(bins))
	return bins
}
