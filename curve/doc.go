// Package curve defines the Series data model shared by the parsing,
// smoothing, statistics, and export packages.
//
// A [Series] is an ordered pair of equal-length coordinate slices with at
// least two points. After normalization its X values are non-decreasing,
// which is what the interpolation kernels require. Transformations never
// mutate a Series in place; each one returns a fresh value.
package curve
