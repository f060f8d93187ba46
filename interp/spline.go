package interp

// quadratic is a C1 piecewise-quadratic spline. On segment i it evaluates
//
//	q(v) = y[i] + b[i]*t + c[i]*t^2, t = v - x[i]
//
// with slopes chained so q' is continuous across knots. The first segment
// starts from its own secant slope, which makes it exactly linear.
type quadratic struct {
	x []float64
	y []float64
	b []float64
	c []float64
}

func newQuadratic(x, y []float64) (*quadratic, error) {
	if err := checkIncreasing(x, true); err != nil {
		return nil, err
	}

	n := len(x)
	q := &quadratic{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
		b: make([]float64, n-1),
		c: make([]float64, n-1),
	}

	for i := 0; i < n-1; i++ {
		h := q.x[i+1] - q.x[i]
		d := (q.y[i+1] - q.y[i]) / h

		if i == 0 {
			q.b[0] = d
		} else {
			// Continuity of the first derivative at knot i.
			q.b[i] = 2*((q.y[i]-q.y[i-1])/(q.x[i]-q.x[i-1])) - q.b[i-1]
		}

		q.c[i] = (d - q.b[i]) / h
	}

	return q, nil
}

func (q *quadratic) Eval(v float64) float64 {
	i := segment(q.x, v)
	t := v - q.x[i]

	return q.y[i] + t*(q.b[i]+t*q.c[i])
}

func (q *quadratic) EvalAll(xs, out []float64) []float64 {
	return evalAll(q, xs, out)
}

// cubic is a natural cubic spline: second derivatives at both end knots
// are zero. The m slice holds the second derivative at each knot, found
// by solving the standard tridiagonal system with the Thomas algorithm.
type cubic struct {
	x []float64
	y []float64
	m []float64
}

func newCubic(x, y []float64) (*cubic, error) {
	if err := checkIncreasing(x, true); err != nil {
		return nil, err
	}

	n := len(x)
	c := &cubic{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
		m: make([]float64, n),
	}

	// Interior equations:
	//   h[i-1]*m[i-1] + 2*(h[i-1]+h[i])*m[i] + h[i]*m[i+1] = rhs[i]
	// with natural boundary m[0] = m[n-1] = 0.
	diag := make([]float64, n)
	rhs := make([]float64, n)
	upper := make([]float64, n)

	diag[0] = 1
	diag[n-1] = 1

	for i := 1; i < n-1; i++ {
		h0 := c.x[i] - c.x[i-1]
		h1 := c.x[i+1] - c.x[i]
		diag[i] = 2 * (h0 + h1)
		upper[i] = h1
		rhs[i] = 6 * ((c.y[i+1]-c.y[i])/h1 - (c.y[i]-c.y[i-1])/h0)
	}

	// Forward elimination. The lower band entry for row i is h[i-1],
	// except rows 1 and n-1 which border the unit boundary rows.
	for i := 1; i < n-1; i++ {
		lower := c.x[i] - c.x[i-1]
		if i == 1 {
			lower = 0 // m[0] is pinned to zero
		}

		f := lower / diag[i-1]
		diag[i] -= f * upper[i-1]
		rhs[i] -= f * rhs[i-1]
	}

	for i := n - 2; i >= 1; i-- {
		c.m[i] = (rhs[i] - upper[i]*c.m[i+1]) / diag[i]
	}

	return c, nil
}

func (c *cubic) Eval(v float64) float64 {
	i := segment(c.x, v)
	h := c.x[i+1] - c.x[i]
	t := v - c.x[i]

	b := (c.y[i+1]-c.y[i])/h - h/6*(2*c.m[i]+c.m[i+1])

	return c.y[i] + t*(b+t*(c.m[i]/2+t*(c.m[i+1]-c.m[i])/(6*h)))
}

func (c *cubic) EvalAll(xs, out []float64) []float64 {
	return evalAll(c, xs, out)
}
