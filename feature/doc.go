// Package feature is the feature model read by the rendering engine.
//
// Features are owned by the caller. The engine only reads coordinates and
// sequence; it may set [Flags] and the Composite back-reference as a side
// effect of compositing, and it creates derived composite features of its
// own.
//
// Coordinates are 1-based and inclusive on the genomic (target) axis.
package feature
