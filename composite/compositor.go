package composite

import (
	"fmt"
	"slices"

	"github.com/biogo/biogo/seq"

	genome "github.com/gogpu/gg-genome"
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/style"
)

// Compositor builds composite features for feature sets. It keeps a
// consensus scratch buffer between passes, so a Compositor must not be
// used by more than one goroutine at a time.
type Compositor struct {
	opts options

	// tally is the consensus scratch buffer, five counters per base.
	tally []int
}

// New creates a Compositor.
func New(opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Compositor{opts: o}
}

// MinIntronLen returns the shortest gap recorded as a splice site.
func (c *Compositor) MinIntronLen() int { return c.opts.minIntronLen }

// MaxWobble returns the splice tolerance used by join.
func (c *Compositor) MaxWobble() int { return c.opts.maxWobble }

// Result is the outcome of one compositing pass.
type Result struct {
	// Composites are the features created by this pass, in creation order.
	Composites []*feature.Feature

	// Display holds the features to draw: composites and every source
	// feature not hidden behind one, ordered by start.
	Display []*feature.Feature

	// Splices holds the splice sites observed per strand.
	Splices map[seq.Strand]*SpliceSet
}

// Rebuild composites features drawn with st. Source features are reset
// first and then flagged and linked to the composite that hides them;
// their coordinates and sequences are never changed.
//
// If st is not an alignment style or enables none of squash, collapse and
// join, Rebuild only resets the features and displays every one.
func (c *Compositor) Rebuild(st *style.Style, features []*feature.Feature) *Result {
	res := &Result{Splices: make(map[seq.Strand]*SpliceSet)}
	for _, f := range features {
		f.Reset()
	}
	if !st.IsAlignment() || !st.Compresses() {
		res.Display = slices.Clone(features)
		slices.SortStableFunc(res.Display, byStart)
		return res
	}

	sorted := slices.Clone(features)
	for _, f := range sorted {
		if n := len(f.Blocks()); n == 1 {
			genome.Logger().Warn("composite: single block alignment treated as ungapped", "feature", f.ID)
		} else if n > 1 {
			if err := feature.CheckBlocks(f.Blocks()); err != nil {
				genome.Logger().Warn("composite: malformed alignment treated as ungapped", "feature", f.ID, "err", err)
			}
		}
	}
	Sort(sorted)

	for start := 0; start < len(sorted); {
		strand := sorted[start].Strand
		end := start
		for end < len(sorted) && sorted[end].Strand == strand {
			end++
		}
		run := sorted[start:end]

		split := 0
		for split < len(run) && gapped(run[split]) {
			split++
		}
		splices := &SpliceSet{}
		res.Splices[strand] = splices

		res.Composites = c.squash(st, run[:split], splices, res.Composites)
		res.Composites = c.merge(st, run[split:], splices, res.Composites)
		start = end
	}

	res.Display = make([]*feature.Feature, 0, len(features))
	for _, f := range sorted {
		if !f.Flags.Hidden() {
			res.Display = append(res.Display, f)
		}
	}
	res.Display = append(res.Display, res.Composites...)
	slices.SortStableFunc(res.Display, byStart)

	genome.Logger().Debug("composite: rebuild",
		"style", st.ID,
		"features", len(features),
		"composites", len(res.Composites),
		"display", len(res.Display))
	return res
}

func byStart(a, b *feature.Feature) int {
	if a.X1 != b.X1 {
		return a.X1 - b.X1
	}
	return b.X2 - a.X2
}

// full reports whether a composite of n members has reached the style's
// population cap.
func full(st *style.Style, n int) bool {
	return st.JoinMax > 0 && n >= st.JoinMax
}

// squash walks the gapped prefix of a strand run. Every gapped feature
// contributes its splice sites, whether or not it joins a composite.
func (c *Compositor) squash(st *style.Style, run []*feature.Feature, splices *SpliceSet, out []*feature.Feature) []*feature.Feature {
	for i := 0; i < len(run); {
		rep := run[i]
		y1, edge1 := rep.X1, rep.X1
		y2, edge2 := rep.X2, rep.X2
		var sqStart, sqEnd bool

		j := i + 1
		for st.Squash && j < len(run) && !full(st, j-i) && canSquash(rep, run[j]) {
			f := run[j]
			if f.X1 < y1 {
				y1, sqStart = f.X1, true
			}
			if f.X1 > edge1 {
				edge1, sqStart = f.X1, true
			}
			if f.X2 > y2 {
				y2, sqEnd = f.X2, true
			}
			if f.X2 < edge2 {
				edge2, sqEnd = f.X2, true
			}
			j++
		}

		if j-i == 1 {
			splices.AddGaps(rep.Blocks(), c.opts.minIntronLen)
			i = j
			continue
		}

		comp := derive(rep, y1, y2)
		comp.Flags.SquashedStart = sqStart
		comp.Flags.SquashedEnd = sqEnd
		if sqStart || sqEnd {
			comp.Homol.Blocks = makeGaps(rep, y1, edge1, y2, edge2)
		} else {
			comp.Homol.Blocks = slices.Clone(rep.Blocks())
		}
		c.finish(comp, run[i:j], func(f *feature.Feature) { f.Flags.Squashed = true })
		splices.AddGaps(comp.Homol.Blocks, c.opts.minIntronLen)
		out = append(out, comp)
		i = j
	}
	return out
}

// merge collapses or joins the ungapped remainder of a strand run.
func (c *Compositor) merge(st *style.Style, run []*feature.Feature, splices *SpliceSet, out []*feature.Feature) []*feature.Feature {
	join := st.Join
	collapse := st.Collapse && join <= 0
	if join <= 0 && !collapse {
		return out
	}

	for i := 0; i < len(run); {
		rep := run[i]
		y1, y2 := rep.X1, rep.X2

		j := i + 1
		for ; j < len(run) && !full(st, j-i); j++ {
			f := run[j]
			if collapse {
				if f.X1 != y1 || f.X2 != y2 {
					break
				}
				continue
			}
			if min(y2, f.X2)-f.X1+1 < join {
				break
			}
			ny2 := max(y2, f.X2)
			if splices.Crosses(y1, ny2, c.opts.maxWobble) {
				break
			}
			y2 = ny2
		}

		if j-i > 1 {
			comp := derive(rep, y1, y2)
			if comp.Homol != nil {
				comp.Homol.Blocks = nil
			}
			mark := func(f *feature.Feature) { f.Flags.Joined = true }
			if collapse {
				mark = func(f *feature.Feature) { f.Flags.Collapsed = true }
			}
			c.finish(comp, run[i:j], mark)
			out = append(out, comp)
		}
		i = j
	}
	return out
}

// derive starts a composite from its representative member. Only the
// fields that describe the merged feature as a whole carry over.
func derive(rep *feature.Feature, x1, x2 int) *feature.Feature {
	comp := &feature.Feature{
		X1:     x1,
		X2:     x2,
		Strand: rep.Strand,
		Kind:   rep.Kind,
		Style:  rep.Style,
	}
	comp.Homol = &feature.Homol{}
	if rep.Homol != nil {
		comp.Homol.Strand = rep.Homol.Strand
	}
	return comp
}

// finish names the composite, links its members and builds the consensus.
// members[0] is the representative.
func (c *Compositor) finish(comp *feature.Feature, members []*feature.Feature, mark func(*feature.Feature)) {
	n := len(members)
	rep := members[0]
	comp.ID = fmt.Sprintf("%d_reads_%s", n, rep.ID)
	comp.Name = fmt.Sprintf("Composite_%d_reads", n)
	comp.Population = n
	comp.Children = slices.Clone(members)
	for _, f := range members {
		mark(f)
		f.Composite = comp
	}

	if cons := c.Consensus(comp); cons != "" {
		comp.Homol.Sequence = cons
		// The query range runs one past the last consensus base.
		comp.Homol.Y1 = 1
		comp.Homol.Y2 = len(cons) + 1
		comp.Homol.Length = len(cons)
	}
}
