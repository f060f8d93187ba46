// Package export renders a raw point series and its smoothed curve into
// an image file.
//
// [Save] writes PNG, JPEG, SVG, or PDF depending on the file extension.
// The raw points are drawn as a scatter overlay on top of the smoothed
// line, mirroring what the interactive plot shows.
package export
