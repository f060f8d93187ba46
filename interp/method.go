package interp

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod indicates a method name outside the supported set.
var ErrUnknownMethod = errors.New("interp: unknown method")

// Method selects an interpolation kernel.
type Method int

const (
	// MethodLinear is piecewise-linear interpolation.
	MethodLinear Method = iota
	// MethodQuadratic is a C1 piecewise-quadratic spline.
	MethodQuadratic
	// MethodCubic is a natural cubic spline.
	MethodCubic
	// MethodAkima is Akima's piecewise-cubic method.
	MethodAkima
)

var methodNames = map[Method]string{
	MethodLinear:    "linear",
	MethodQuadratic: "quadratic",
	MethodCubic:     "cubic",
	MethodAkima:     "akima",
}

// String returns the canonical lower-case method name.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("method(%d)", int(m))
}

// MinPoints returns the smallest knot count the method accepts.
func (m Method) MinPoints() int {
	switch m {
	case MethodQuadratic, MethodCubic:
		return 3
	case MethodAkima:
		return 5
	default:
		return 2
	}
}

// ParseMethod maps a method name to its [Method]. Matching is exact; no
// case folding is applied.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Methods lists the supported methods in canonical order.
func Methods() []Method {
	return []Method{MethodLinear, MethodQuadratic, MethodCubic, MethodAkima}
}
