// Package canvas draws feature-set columns.
//
// # Overview
//
// A [Context] is the rendering context of one view. It owns every cache the
// engines use: the glyph instance cache, the gap segment pool, the
// alignment compositor and the focus set. Nothing is held in package state,
// so two views never share or race on a cache.
//
// Each column is a [FeatureSet] created with [Context.NewFeatureSet]. Its
// style's mode picks the [Kind] that paints it:
//
//   - basic and transcript features are boxes, with exons and introns for
//     transcripts
//   - alignments are composited, bumped into lanes and drawn gapped with
//     colinearity lines between the members of an alignment series
//   - glyph features are drawn from cached glyph instances
//   - graphs are drawn as histograms, lines or heatmaps, re-binned on zoom
//
// # Drawing
//
// Columns paint onto a [Painter], which *gg.Context satisfies:
//
//	dc := gg.NewContext(400, 1000)
//	ctx := canvas.New(canvas.WithView(canvas.View{Start: 1, End: 10_000, PixelsPerBase: 0.1}))
//	col := ctx.NewFeatureSet("est", sheet.Lookup("est"), 1, 10_000)
//	col.Add(features...)
//	col.Bump(true)
//	if err := col.Paint(dc); err != nil {
//		log.Fatal(err)
//	}
//
// # Interaction
//
// [FeatureSet.Pick] finds the feature and sub-part under a device point
// using an interval index over the displayed features.
// [FeatureSet.Select] adds it to the focus set as the hot item, which makes
// its column the hot column.
package canvas
