// Package geom provides the stateless coordinate and distance math used by
// the rendering engine.
//
// # Spaces
//
// World space has genomic bases along Y and column pixels along X. Device
// space is the pixel grid of the drawing surface. A [Transform] maps one to
// the other; WorldToCanvas rounds half up so that it and CanvasToWorld agree
// modulo rounding.
//
// # Hit testing
//
// None of the functions here fail. Degenerate input yields degenerate but
// defined output: an empty point set has a zero bounding box and an empty
// polygon is [MaxDistance] away from every point.
package geom
