// Package smooth resamples a point series onto a dense, evenly spaced
// grid using one of the interpolation methods from [interp].
//
// The entry point is [Series]. When the requested kernel cannot be built
// for the given data (too few points for the method, duplicate knots),
// the result falls back to linear interpolation instead of failing; the
// returned [Curve] reports the substitution through FellBack and
// FallbackCause so callers can warn the user.
//
// [Lowpass] additionally offers FFT-based noise smoothing of an already
// resampled curve.
package smooth
