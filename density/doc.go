// Package density re-bins dense per-base data for zoomed-out display.
//
// At low zoom a coverage track can hold far more features than the screen
// has pixels. [Bins] groups the features of a graph column into bins at
// least a few pixels high and keeps, for each bin, the score of greatest
// magnitude and the feature it came from. Bins are recomputed from scratch
// on every zoom change.
package density
