// Package style describes how a feature set is displayed and composited.
//
// A [Style] is looked up per feature set. It selects the renderable kind
// (basic box, alignment, transcript, glyph or graph), the compositing
// policies for alignments (squash, collapse, join), score scaling, density
// binning parameters and glyph shapes.
//
// # Style sheets
//
// Styles are usually loaded from a TOML style sheet:
//
//	[[style]]
//	id = "RNASeq"
//	mode = "alignment"
//	width = 9
//	fill = "lightsteelblue"
//	border = "#203080"
//	squash = true
//	join = 12
//	join-max = 200
//
//	[[style]]
//	id = "splice-marks"
//	mode = "glyph"
//	glyph-5 = "<-4,0; 0,4; 4,0>"
//	glyph-3 = "<-4,0; 0,-4; 4,0>"
//	glyph-strand = "flip-y"
//
// Style ids are case-insensitive; [Sheet.Lookup] folds case before matching.
//
// # Glyph shapes
//
// Shapes use the style language syntax parsed by [ParseShape]:
// "<x,y; x,y; ...>" draws lines (a polygon if the path closes),
// "/" separates disjoint line segments and "(x1,y1; x2,y2)" is an arc
// inside the given bounding box.
package style
