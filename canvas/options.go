package canvas

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/gogpu/gg-genome/composite"
	"github.com/gogpu/gg-genome/focus"
	"github.com/gogpu/gg-genome/gapped"
	"github.com/gogpu/gg-genome/style"
)

// Option configures a Context during creation.
//
// Example:
//
//	ctx := canvas.New(
//		canvas.WithView(canvas.View{Start: 1, End: 5000, PixelsPerBase: 0.2}),
//		canvas.WithMaxWobble(2),
//	)
type Option func(*options)

type options struct {
	view         View
	composite    []composite.Option
	pool         *gapped.Pool
	focusColours map[focus.Group]style.Colours
	dna          gapped.DNA
	highlight    color.Color
}

func defaultOptions() options {
	return options{
		view:         View{Start: 1, End: 1000, PixelsPerBase: 1},
		focusColours: make(map[focus.Group]style.Colours),
		highlight:    colornames.Lightyellow,
	}
}

// WithView sets the initial view.
func WithView(v View) Option {
	return func(o *options) {
		o.view = v
	}
}

// WithMinIntronLen sets the shortest gap, in bases, recorded as a splice
// when compositing alignments.
func WithMinIntronLen(n int) Option {
	return func(o *options) {
		o.composite = append(o.composite, composite.WithMinIntronLen(n))
	}
}

// WithMaxWobble sets the tolerance, in bases, allowed around a splice when
// joining alignments.
func WithMaxWobble(n int) Option {
	return func(o *options) {
		o.composite = append(o.composite, composite.WithMaxWobble(n))
	}
}

// WithSegmentPool shares a segment pool between contexts. By default each
// context has its own.
func WithSegmentPool(p *gapped.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithFocusColours sets the colours drawn for members of focus group g.
func WithFocusColours(g focus.Group, c style.Colours) Option {
	return func(o *options) {
		o.focusColours[g] = c
	}
}

// WithDNA supplies the reference sequence used to flag non-canonical
// splices between alignment series members.
func WithDNA(dna gapped.DNA) Option {
	return func(o *options) {
		o.dna = dna
	}
}

// WithHighlightColour sets the background of the hot column.
func WithHighlightColour(c color.Color) Option {
	return func(o *options) {
		o.highlight = c
	}
}
