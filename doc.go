// Package genome is the root of gg-genome, the feature-set rendering and
// compositing engine for genome annotation columns.
//
// # Overview
//
// gg-genome turns collections of biological features (alignments,
// transcripts, glyph markers, per-base graph data) anchored to genomic
// coordinates into device-space geometry that can be drawn with
// github.com/gogpu/gg and picked interactively.
//
// # Packages
//
//   - geom: world to canvas transforms, bounding boxes, hit distances
//   - feature: the feature model (features, match blocks, flags)
//   - style: display styles, glyph shapes and TOML style sheets
//   - glyph: glyph shape instancing, signature caching and hit testing
//   - composite: squash, collapse and join of short-read alignments
//   - gapped: gapped-alignment box and line decomposition with colinearity
//   - density: zoom-dependent re-binning of dense graph data
//   - focus: the focus and highlight set
//   - canvas: feature-set columns, renderable kinds and painting
//   - load: SAM and GFF readers for the command line tool
//
// # Quick Start
//
//	sheet, err := style.Load("styles.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctx := canvas.New(canvas.WithView(canvas.View{Start: 1, End: 2000, PixelsPerBase: 0.5}))
//	col := ctx.NewFeatureSet("rnaseq", sheet.Lookup("rnaseq"), 1, 2000)
//	col.Add(features...)
//	col.Bump(true)
//	col.Rebuild()
//	ctx.Layout(4, 4)
//
//	dc := gg.NewContext(400, 1000)
//	if err := ctx.Paint(dc); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("column.png")
//
// # Coordinate System
//
// Genomic coordinates are 1-based and inclusive. The genomic axis runs down
// the canvas (Y); columns are laid out across it (X). A base b covers the
// world interval [b, b+1).
//
// # Logging
//
// Nothing is logged by default. See [SetLogger].
package genome

// Version information
const (
	// Version is the current version of the module.
	Version = "0.3.0"

	// VersionMajor is the major version.
	VersionMajor = 0

	// VersionMinor is the minor version.
	VersionMinor = 3

	// VersionPatch is the patch version.
	VersionPatch = 0
)
