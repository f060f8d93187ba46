package interp

import "math"

// akima implements Akima's 1970 piecewise-cubic method. Knot derivatives
// are weighted averages of neighbor segment slopes, with the weights
// chosen so that local straight runs stay straight and overshoot near
// abrupt changes stays small. Segments are evaluated as cubic Hermite
// polynomials.
type akima struct {
	x []float64
	y []float64
	t []float64 // derivative at each knot
}

func newAkima(x, y []float64) (*akima, error) {
	if err := checkIncreasing(x, true); err != nil {
		return nil, err
	}

	n := len(x)
	a := &akima{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
		t: make([]float64, n),
	}

	// Segment slopes padded with two linearly extrapolated slopes on
	// each side, as in Akima's original formulation.
	d := make([]float64, n+3)
	for i := 0; i < n-1; i++ {
		d[i+2] = (a.y[i+1] - a.y[i]) / (a.x[i+1] - a.x[i])
	}

	d[1] = 2*d[2] - d[3]
	d[0] = 2*d[1] - d[2]
	d[n+1] = 2*d[n] - d[n-1]
	d[n+2] = 2*d[n+1] - d[n]

	for i := range n {
		// Slopes around knot i: d[i] d[i+1] | d[i+2] d[i+3].
		w1 := math.Abs(d[i+3] - d[i+2])
		w2 := math.Abs(d[i+1] - d[i])

		if w1+w2 == 0 {
			// Flat neighborhood; fall back to the average slope.
			a.t[i] = (d[i+1] + d[i+2]) / 2
			continue
		}

		a.t[i] = (w1*d[i+1] + w2*d[i+2]) / (w1 + w2)
	}

	return a, nil
}

func (a *akima) Eval(v float64) float64 {
	i := segment(a.x, v)
	h := a.x[i+1] - a.x[i]
	t := v - a.x[i]
	d := (a.y[i+1] - a.y[i]) / h

	c2 := (3*d - 2*a.t[i] - a.t[i+1]) / h
	c3 := (a.t[i] + a.t[i+1] - 2*d) / (h * h)

	return a.y[i] + t*(a.t[i]+t*(c2+t*c3))
}

func (a *akima) EvalAll(xs, out []float64) []float64 {
	return evalAll(a, xs, out)
}
