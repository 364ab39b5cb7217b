package gapped

import (
	"fmt"

	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/style"
)

// Colinearity classifies how well two adjacent matches continue one another
// in query coordinates. The values index style colinear colours.
type Colinearity uint8

// Colinearity classes.
const (
	Perfect     Colinearity = style.ColinearPerfect
	Colinear    Colinearity = style.ColinearClose
	NotColinear Colinearity = style.ColinearNot
)

var colinearityNames = [...]string{"perfect", "colinear", "not-colinear"}

func (c Colinearity) String() string {
	if int(c) < len(colinearityNames) {
		return colinearityNames[c]
	}
	return fmt.Sprintf("Colinearity(%d)", c)
}

// Classify compares the query end of one match with the query start of the
// next. A start exactly one past the end is Perfect; a start within
// threshold bases of that is Colinear; anything further is NotColinear.
func Classify(end1, start2, threshold int) Colinearity {
	diff := start2 - end1 - 1
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0:
		return Perfect
	case diff <= threshold:
		return Colinear
	default:
		return NotColinear
	}
}

// IntraColinearity classifies the gap between consecutive match blocks a
// and b of one alignment. When the query runs against the target, blocks
// later in target order come earlier in the query.
func IntraColinearity(a, b feature.MatchBlock, threshold int) Colinearity {
	if a.QStrand == a.TStrand {
		return Classify(a.Q2, b.Q1, threshold)
	}
	return Classify(b.Q2, a.Q1, threshold)
}

// InterColinearity classifies the join between two consecutive features of
// one alignment series, f then next in target order, using their aligned
// query ranges. It returns NotColinear when either lacks homology.
func InterColinearity(f, next *feature.Feature, threshold int) Colinearity {
	if f.Homol == nil || next.Homol == nil {
		return NotColinear
	}
	h1, h2 := f.Homol, next.Homol
	if f.Strand != f.Homol.Strand {
		h1, h2 = h2, h1
	}
	return Classify(h1.Y2, h2.Y1, threshold)
}
