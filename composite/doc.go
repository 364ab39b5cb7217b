// Package composite merges duplicate and overlapping alignments of one
// feature set into composite features.
//
// # Policies
//
// Three policies are configured per style and may be combined:
//
//   - Squash merges gapped alignments whose internal match block boundaries
//     are identical. Only the outer edges may differ; the composite keeps the
//     shared internal geometry and gains synthesised edge blocks.
//   - Collapse merges ungapped alignments with identical extents.
//   - Join merges ungapped alignments that overlap by at least the style's
//     join distance, unless the merged span would bridge a splice site seen
//     among the gapped alignments of the same strand.
//
// When join is enabled collapse is ignored; join subsumes it.
//
// # Usage
//
//	c := composite.New(composite.WithMinIntronLen(50))
//	res := c.Rebuild(st, features)
//	for _, f := range res.Display {
//		// paint f
//	}
//
// Rebuild is idempotent: source features are reset before each pass and
// the composite identifiers depend only on the input.
package composite
