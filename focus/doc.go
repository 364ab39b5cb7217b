// Package focus tracks the user's selection across feature columns.
//
// A [Set] holds focus items keyed by column, feature and sub-part. Each
// item belongs to one or more groups: the primary selection ([Focus]),
// highlighted evidence, and masked or filtered features. One item may be
// the hot item, and its column is then the hot column, which is drawn with
// a highlighted background.
//
// Group colours configured with [Set.SetColours] are resolved at paint time
// by [Set.Colours].
package focus
