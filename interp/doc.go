// Package interp provides the interpolation kernels used to resample a
// point series onto a dense grid.
//
// Available methods, from cheapest to smoothest:
//
//   - [MethodLinear]:    piecewise linear between neighbor knots
//   - [MethodQuadratic]: C1 piecewise-quadratic spline
//   - [MethodCubic]:     natural cubic spline
//   - [MethodAkima]:     Akima spline (reduced overshoot near steps)
//
// All kernels implement [Interpolator]. Construction validates the knot
// vector; evaluation is total and clamps to the boundary segments, so a
// built kernel never fails.
package interp
