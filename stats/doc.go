// Package stats computes descriptive statistics of a value sequence.
//
// [Calculate] returns the minimum, maximum, mean, and count of a slice.
// [Describe] extends the summary with second-moment measures, and
// [Streaming] accumulates the same results incrementally across blocks.
package stats
