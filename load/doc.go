// Package load reads features from SAM and GFF files.
//
// SAM records become alignments whose match blocks are taken from the
// CIGAR string. GFF records, with attributes written as "Tag value"
// pairs, become basic features, gapped alignments
// (from the Target and Gap attributes), transcripts (from exon children)
// or boundary glyphs (from *_site features).
//
// Coordinates are converted to the module's 1-based inclusive convention.
package load
