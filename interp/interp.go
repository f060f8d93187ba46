package interp

import (
	"errors"
	"fmt"
	"sort"
)

// Errors returned by kernel constructors.
var (
	ErrTooFewPoints  = errors.New("interp: too few points for method")
	ErrNotIncreasing = errors.New("interp: x values must be strictly increasing")
)

// Interpolator evaluates a fitted curve at arbitrary positions.
//
// Evaluation outside the knot span clamps to the boundary segment, so
// Eval is defined for every finite x.
type Interpolator interface {
	// Eval returns the curve value at x.
	Eval(x float64) float64
	// EvalAll evaluates every position in xs. If out has the same length
	// as xs it is filled and returned, otherwise a new slice is allocated.
	EvalAll(xs []float64, out []float64) []float64
}

// New builds the kernel for method m over the knots (x, y).
//
// x and y must have equal length with at least [Method.MinPoints] entries,
// and x must be strictly increasing (MethodLinear tolerates duplicates).
// The slices are copied; the kernel keeps no reference to the input.
func New(m Method, x, y []float64) (Interpolator, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("interp: knot count mismatch: %d x vs %d y", len(x), len(y))
	}

	if len(x) < m.MinPoints() {
		return nil, fmt.Errorf("%w: %s needs %d points, have %d",
			ErrTooFewPoints, m, m.MinPoints(), len(x))
	}

	switch m {
	case MethodLinear:
		return newLinear(x, y)
	case MethodQuadratic:
		return newQuadratic(x, y)
	case MethodCubic:
		return newCubic(x, y)
	case MethodAkima:
		return newAkima(x, y)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, m.String())
	}
}

// checkIncreasing verifies the knot vector. With strict set, equal
// neighbors are rejected as well.
func checkIncreasing(x []float64, strict bool) error {
	for i := 1; i < len(x); i++ {
		if x[i-1] > x[i] || (strict && x[i-1] == x[i]) {
			return fmt.Errorf("%w: x[%d]=%v, x[%d]=%v", ErrNotIncreasing, i-1, x[i-1], i, x[i])
		}
	}

	return nil
}

// segment returns the index i of the knot interval [x[i], x[i+1]]
// containing v, clamped to the boundary intervals. Zero-width intervals
// are never returned for interior v.
func segment(x []float64, v float64) int {
	n := len(x)
	if v <= x[0] {
		return 0
	}

	if v >= x[n-1] {
		return n - 2
	}

	// First knot >= v; v lies in the interval ending there.
	i := sort.SearchFloat64s(x, v)

	return i - 1
}

type linear struct {
	x []float64
	y []float64
}

func newLinear(x, y []float64) (*linear, error) {
	if err := checkIncreasing(x, false); err != nil {
		return nil, err
	}

	return &linear{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
	}, nil
}

func (l *linear) Eval(v float64) float64 {
	n := len(l.x)
	if v <= l.x[0] {
		return l.y[0]
	}

	if v >= l.x[n-1] {
		return l.y[n-1]
	}

	i := sort.SearchFloat64s(l.x, v)
	if l.x[i] == v {
		return l.y[i]
	}

	// x[i-1] < v < x[i], so the interval has nonzero width even when the
	// knot vector contains duplicates.
	i--
	t := (v - l.x[i]) / (l.x[i+1] - l.x[i])

	return l.y[i] + t*(l.y[i+1]-l.y[i])
}

func (l *linear) EvalAll(xs, out []float64) []float64 {
	return evalAll(l, xs, out)
}

func evalAll(itp Interpolator, xs, out []float64) []float64 {
	if len(out) != len(xs) {
		out = make([]float64, len(xs))
	}

	for i, v := range xs {
		out[i] = itp.Eval(v)
	}

	return out
}
