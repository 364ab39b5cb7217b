// Package glyph instantiates glyph shape templates into device points.
//
// A glyph is a small fixed-pixel shape anchored to a genomic position:
// splice markers, homology-incompleteness markers, truncation marks. The
// [Engine] scales and flips a [style.Shape] for a feature's strand and score
// and caches the result by signature when the result does not depend on the
// exact score.
//
// # Signatures
//
// The signature combines style id, shape id, strand sign and whether the
// score is below the style's alternate-colour threshold:
//
//	rnaseq_rnaseq:glyph-5+N
//
// Styles that scale glyphs continuously by score get no signature and their
// glyphs are built on every call.
package glyph
