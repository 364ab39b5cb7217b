// Package gapped decomposes gapped alignments into drawable segments.
//
// [Decompose] turns a feature's match blocks into boxes and connecting
// lines in device space, relative to the feature's own top edge. Blocks
// that touch at the current zoom merge into one box; visible gaps become
// vertical lines, drawn broken when the gap is an intron. Each intron line
// carries a [Colinearity] that says how well the query coordinates on
// either side of it continue one another.
//
// Segment lists are short-lived and rebuilt on zoom, so they are drawn from
// a [Pool] owned by the rendering context.
package gapped
