package smooth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-curve/curve"
	"github.com/cwbudde/algo-curve/interp"
)

// ErrTooFewPoints indicates a series with fewer than 2 points.
var ErrTooFewPoints = errors.New("smooth: need at least 2 points")

// DefaultNumPoints is the sample count used when no option overrides it.
const DefaultNumPoints = 1000

// Curve is a resampled series: X holds evenly spaced positions over the
// span of the input, Y the interpolated values.
type Curve struct {
	X []float64
	Y []float64

	// Method is the kernel that actually produced Y. When FellBack is
	// set this is [interp.MethodLinear] regardless of what was asked for,
	// and FallbackCause holds the failure that triggered the substitution.
	Method        interp.Method
	FellBack      bool
	FallbackCause error
}

// Series resamples s onto an evenly spaced grid using the named method
// (one of "linear", "quadratic", "cubic", "akima"; exact match).
//
// The method name is validated before the data is touched; an unknown
// name fails with [interp.ErrUnknownMethod] and a series of fewer than 2
// points with [ErrTooFewPoints]. Kernel construction failures fall back
// to linear unless [WithoutFallback] is given.
func Series(s curve.Series, method string, opts ...Option) (Curve, error) {
	m, err := interp.ParseMethod(method)
	if err != nil {
		return Curve{}, err
	}

	if s.Len() < 2 {
		return Curve{}, ErrTooFewPoints
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	grid := curve.Linspace(s.MinX(), s.MaxX(), cfg.numPoints)

	itp, err := interp.New(m, s.X, s.Y)
	if err != nil {
		if cfg.noFallback || m == interp.MethodLinear {
			return Curve{}, fmt.Errorf("smooth: %w", err)
		}

		lin, lerr := interp.New(interp.MethodLinear, s.X, s.Y)
		if lerr != nil {
			return Curve{}, fmt.Errorf("smooth: linear fallback: %w", lerr)
		}

		return Curve{
			X:             grid,
			Y:             lin.EvalAll(grid, nil),
			Method:        interp.MethodLinear,
			FellBack:      true,
			FallbackCause: err,
		}, nil
	}

	return Curve{
		X:      grid,
		Y:      itp.EvalAll(grid, nil),
		Method: m,
	}, nil
}

// Len returns the number of samples.
func (c Curve) Len() int {
	return len(c.X)
}
