package curve

import (
	"errors"
	"sort"
)

// Errors returned by Series constructors.
var (
	ErrLengthMismatch = errors.New("curve: x and y must have the same length")
	ErrTooFewPoints   = errors.New("curve: need at least 2 points")
)

// Series is an ordered set of (x, y) data points.
//
// A Series built through [New] is normalized: X is sorted ascending with
// ties keeping their original relative order. Duplicate X values are kept,
// not rejected; whether they are acceptable is up to the consumer.
type Series struct {
	X []float64
	Y []float64
}

// New copies x and y into a normalized Series.
//
// It fails with [ErrLengthMismatch] if the slices differ in length and with
// [ErrTooFewPoints] if fewer than 2 points are given.
func New(x, y []float64) (Series, error) {
	if len(x) != len(y) {
		return Series{}, ErrLengthMismatch
	}

	if len(x) < 2 {
		return Series{}, ErrTooFewPoints
	}

	s := Series{
		X: append([]float64(nil), x...),
		Y: append([]float64(nil), y...),
	}

	return s.Normalize(), nil
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.X)
}

// MinX returns the smallest x value. The Series must be normalized.
func (s Series) MinX() float64 {
	return s.X[0]
}

// MaxX returns the largest x value. The Series must be normalized.
func (s Series) MaxX() float64 {
	return s.X[len(s.X)-1]
}

// Sorted reports whether X is strictly increasing.
func (s Series) Sorted() bool {
	for i := 1; i < len(s.X); i++ {
		if s.X[i-1] >= s.X[i] {
			return false
		}
	}

	return true
}

// Normalize returns a Series whose points are stably sorted by x.
//
// When X is already strictly increasing the receiver is returned as is.
// Points with equal x keep their original relative order.
func (s Series) Normalize() Series {
	if s.Sorted() {
		return s
	}

	idx := make([]int, len(s.X))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return s.X[idx[a]] < s.X[idx[b]]
	})

	out := Series{
		X: make([]float64, len(s.X)),
		Y: make([]float64, len(s.Y)),
	}

	for i, j := range idx {
		out.X[i] = s.X[j]
		out.Y[i] = s.Y[j]
	}

	return out
}

// Linspace returns n values evenly spaced over [start, stop], endpoints
// included. For n == 1 the single value is start; n < 1 yields nil.
func Linspace(start, stop float64, n int) []float64 {
	if n < 1 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	// Pin the endpoint so accumulated rounding never overshoots stop.
	out[n-1] = stop

	return out
}
