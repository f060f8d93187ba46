package stats

import (
	"errors"
	"math"
)

// ErrEmptyInput indicates statistics were requested for no data.
var ErrEmptyInput = errors.New("stats: empty input")

// Summary holds the basic descriptive statistics of a value sequence.
type Summary struct {
	Min   float64
	Max   float64
	Mean  float64
	Count int
}

// Description extends Summary with spread measures.
type Description struct {
	Summary
	Variance float64 // population variance
	StdDev   float64
}

// Calculate returns the min, max, mean, and count of values.
// It fails with [ErrEmptyInput] on an empty slice.
func Calculate(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptyInput
	}

	out := Summary{
		Min:   values[0],
		Max:   values[0],
		Count: len(values),
	}

	// Kahan summation keeps the mean stable on long inputs.
	var sum, comp float64

	for _, v := range values {
		y := v - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t

		if v < out.Min {
			out.Min = v
		}

		if v > out.Max {
			out.Max = v
		}
	}

	out.Mean = sum / float64(out.Count)

	return out, nil
}

// Describe returns the full description of values, computing the second
// moment with Welford's online algorithm for numerical stability.
func Describe(values []float64) (Description, error) {
	sum, err := Calculate(values)
	if err != nil {
		return Description{}, err
	}

	var mean, m2 float64

	for i, v := range values {
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}

	variance := m2 / float64(len(values))

	return Description{
		Summary:  sum,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}

// Streaming accumulates summary statistics incrementally across multiple
// blocks of values. The zero value is ready to use.
type Streaming struct {
	count int
	sum   float64
	comp  float64
	min   float64
	max   float64
}

// Update adds a block of values to the running statistics.
func (s *Streaming) Update(values []float64) {
	for _, v := range values {
		if s.count == 0 {
			s.min = v
			s.max = v
		} else {
			if v < s.min {
				s.min = v
			}

			if v > s.max {
				s.max = v
			}
		}

		s.count++

		y := v - s.comp
		t := s.sum + y
		s.comp = (t - s.sum) - y
		s.sum = t
	}
}

// Result returns the summary of everything fed to Update so far. It fails
// with [ErrEmptyInput] before the first value.
func (s *Streaming) Result() (Summary, error) {
	if s.count == 0 {
		return Summary{}, ErrEmptyInput
	}

	return Summary{
		Min:   s.min,
		Max:   s.max,
		Mean:  s.sum / float64(s.count),
		Count: s.count,
	}, nil
}

// Reset clears the accumulator for reuse.
func (s *Streaming) Reset() {
	*s = Streaming{}
}
