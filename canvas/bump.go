package canvas

import (
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/style"
)

// bumps reports whether the column's mode spreads features into lanes.
func (fs *FeatureSet) bumps() bool {
	if fs.style == nil {
		return false
	}
	switch fs.style.Mode {
	case style.ModeBasic, style.ModeAlignment, style.ModeTranscript:
		return true
	}
	return false
}

// layout assigns each displayed feature a lane. Unbumped columns draw
// everything in lane 0. Bumped columns give each feature the first lane
// it fits in, keeping the members of an alignment series in one lane when
// they fit so that the colinearity lines between them stay straight.
func (fs *FeatureSet) layout() {
	fs.lanes = make(map[*feature.Feature]int, len(fs.display))
	fs.nLanes = 1
	if !fs.bumped || !fs.bumps() {
		return
	}

	var ends []int // last base used in each lane
	series := make(map[string]int)
	for _, f := range fs.display {
		lane := -1
		if l, ok := series[f.Name]; ok && f.Name != "" && ends[l] < f.X1 {
			lane = l
		}
		for l := 0; lane < 0 && l < len(ends); l++ {
			if ends[l] < f.X1 {
				lane = l
			}
		}
		if lane < 0 {
			lane = len(ends)
			ends = append(ends, 0)
		}
		ends[lane] = f.X2
		fs.lanes[f] = lane
		if f.Name != "" && !f.IsComposite() {
			series[f.Name] = lane
		}
	}
	fs.nLanes = max(len(ends), 1)
}
