package glyph

import (
	genome "github.com/gogpu/gg-genome"
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/internal/cache"
	"github.com/gogpu/gg-genome/style"
)

// Engine builds glyph instances and caches those whose geometry does not
// depend on the exact score. The cache only grows; its size is bounded by
// the number of style, shape, strand and threshold combinations in use.
//
// An Engine is safe for concurrent use.
type Engine struct {
	instances *cache.Cache[string, *Instance]

	truncStart, truncEnd *style.Shape
	juncStart, juncEnd   *style.Shape
}

// NewEngine returns an engine with an empty cache.
func NewEngine() *Engine {
	start, end := TruncationShapes()
	jstart, jend := JunctionShapes()
	return &Engine{
		instances:  cache.New[string, *Instance](),
		truncStart: start,
		truncEnd:   end,
		juncStart:  jstart,
		juncEnd:    jend,
	}
}

// Get returns the glyph for one end of f drawn with st at the given score.
// The column width used for alignment and score scaling is st.Width.
// It returns nil when the style has no shape for that end or when the score
// puts the glyph below the visible range.
func (e *Engine) Get(st *style.Style, f *feature.Feature, end End, score float64) *Instance {
	if st == nil {
		return nil
	}
	shape := shapeFor(st, f.Strand, end)
	if shape == nil {
		if end == EndWhole {
			genome.Logger().Warn("glyph: style has no shape", "style", st.ID, "feature", f.ID)
		}
		return nil
	}

	sig := Signature(st, f.Strand, end, score)
	if sig == "" {
		return e.build(st, shape, f, end, score)
	}
	return e.instances.GetOrCreate(sig, func() *Instance {
		genome.Logger().Debug("glyph: new instance", "sig", sig)
		return e.build(st, shape, f, end, score)
	})
}

// Truncation returns the marker drawn where a feature is clipped at the
// start or end of the visible span.
func (e *Engine) Truncation(atStart bool) *Instance {
	if atStart {
		return e.fixed("truncation_start", e.truncStart)
	}
	return e.fixed("truncation_end", e.truncEnd)
}

// Junction returns the marker drawn at the start or end of a splice
// junction.
func (e *Engine) Junction(atStart bool) *Instance {
	if atStart {
		return e.fixed("junction_start", e.juncStart)
	}
	return e.fixed("junction_end", e.juncEnd)
}

func (e *Engine) fixed(sig string, shape *style.Shape) *Instance {
	return e.instances.GetOrCreate(sig, func() *Instance {
		return &Instance{
			Sig:    sig,
			Shape:  shape,
			Width:  1,
			Height: 1,
			Points: Instantiate(shape, 1, 1, 0),
		}
	})
}

// Stats returns the cache statistics.
func (e *Engine) Stats() cache.Stats {
	return e.instances.Stats()
}

func (e *Engine) build(st *style.Style, shape *style.Shape, f *feature.Feature, end End, score float64) *Instance {
	var w, h, origin float64
	if st.Splice {
		w, h, origin = SpliceScale(shape, st, score, st.Width)
	} else {
		var ok bool
		w, h, origin, ok = Scale(st, f.Strand, score, st.Width)
		if !ok {
			return nil
		}
	}

	colours := st.Colours
	if alternate(st, score) {
		colours = st.AltColours
	}
	return &Instance{
		Sig:     Signature(st, f.Strand, end, score),
		Shape:   shape,
		End:     end,
		Width:   w,
		Height:  h,
		Origin:  origin,
		Points:  Instantiate(shape, w, h, origin),
		Colours: colours,
	}
}
