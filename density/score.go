package density

import (
	"image/color"
	"math"

	"github.com/gogpu/gg-genome/style"
)

// NormalisedScore maps score into [0, 1] over the style's score range,
// on a log scale when the style asks for one. Scores at or below the
// minimum map to 0.
func NormalisedScore(st *style.Style, score float64) float64 {
	num := max(score-st.MinScore, 0)
	den := max(st.MaxScore-st.MinScore, 0)

	if st.Scale == style.ScaleLog {
		// +1 keeps a score of one distinct from zero
		num = math.Log(num + 1)
		if den > 0 {
			den = math.Log(den)
		}
	}

	if den <= 0 {
		if num > 0 {
			return 1
		}
		return 0
	}
	return min(max(num/den, 0), 1)
}

// WidthFromScore scales width by score between a quarter and the whole of
// it. The style's min and max score must both be set; otherwise width is
// returned unchanged.
func WidthFromScore(st *style.Style, width, score float64) float64 {
	if st.MinScore == 0 || st.MaxScore == 0 {
		return width
	}
	num := score - st.MinScore
	den := st.MaxScore - st.MinScore

	var dx float64
	if den == 0 {
		dx = 0.25
		if num > 0 {
			dx = 1
		}
	} else {
		dx = 0.25 + 0.75*(num/den)
	}
	return width * min(max(dx, 0.25), 1)
}

// HeatColour blends from lo at norm 0 to hi at norm 1.
func HeatColour(lo, hi color.Color, norm float64) color.Color {
	norm = min(max(norm, 0), 1)
	r1, g1, b1, a1 := lo.RGBA()
	r2, g2, b2, a2 := hi.RGBA()
	mix := func(a, b uint32) uint8 {
		return uint8((float64(a)*(1-norm) + float64(b)*norm) / 257)
	}
	return color.NRGBA{R: mix(r1, r2), G: mix(g1, g2), B: mix(b1, b2), A: mix(a1, a2)}
}
