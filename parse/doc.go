// Package parse converts free-form (x, y) text into a [curve.Series].
//
// The accepted format is one data point per line. Blank lines and lines
// starting with '#' are skipped. Within a line the separators space,
// comma, tab, and semicolon are tried in that order; the first one that
// splits the line into at least two fields wins, and fields beyond the
// second are ignored.
package parse
