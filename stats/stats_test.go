package stats

import (
	"errors"
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	sum, err := Calculate([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if sum.Min != 1 || sum.Max != 4 || sum.Mean != 2.5 || sum.Count != 4 {
		t.Fatalf("got %+v, want {Min:1 Max:4 Mean:2.5 Count:4}", sum)
	}
}

func TestCalculateEmpty(t *testing.T) {
	for _, values := range [][]float64{nil, {}} {
		_, err := Calculate(values)
		if !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("err = %v, want ErrEmptyInput", err)
		}
	}
}

func TestCalculateSingle(t *testing.T) {
	sum, err := Calculate([]float64{-7.5})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if sum.Min != -7.5 || sum.Max != -7.5 || sum.Mean != -7.5 || sum.Count != 1 {
		t.Fatalf("got %+v", sum)
	}
}

func TestCalculateNegativeValues(t *testing.T) {
	sum, err := Calculate([]float64{-3, -1, -2})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if sum.Min != -3 || sum.Max != -1 || sum.Mean != -2 {
		t.Fatalf("got %+v", sum)
	}
}

func TestCalculateMeanStability(t *testing.T) {
	// A large constant plus a tiny alternating ripple; naive summation
	// loses the ripple, compensated summation must not drift.
	values := make([]float64, 1_000_000)
	for i := range values {
		values[i] = 1e9
		if i%2 == 0 {
			values[i] += 1
		}
	}

	sum, err := Calculate(values)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if diff := math.Abs(sum.Mean - (1e9 + 0.5)); diff > 1e-6 {
		t.Fatalf("mean = %v, drift %v", sum.Mean, diff)
	}
}

func TestDescribe(t *testing.T) {
	d, err := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}

	if d.Mean != 5 {
		t.Fatalf("mean = %v, want 5", d.Mean)
	}

	if math.Abs(d.Variance-4) > 1e-12 {
		t.Fatalf("variance = %v, want 4", d.Variance)
	}

	if math.Abs(d.StdDev-2) > 1e-12 {
		t.Fatalf("stddev = %v, want 2", d.StdDev)
	}
}

func TestDescribeEmpty(t *testing.T) {
	_, err := Describe(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestStreamingMatchesCalculate(t *testing.T) {
	values := []float64{3, -1, 2, 8, 0, -4, 5, 5, 1}

	want, err := Calculate(values)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	var s Streaming
	s.Update(values[:4])
	s.Update(values[4:7])
	s.Update(values[7:])

	got, err := s.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}

	if got != want {
		t.Fatalf("streaming %+v != one-shot %+v", got, want)
	}
}

func TestStreamingEmpty(t *testing.T) {
	var s Streaming

	_, err := s.Result()
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestStreamingReset(t *testing.T) {
	var s Streaming
	s.Update([]float64{1, 2, 3})
	s.Reset()

	s.Update([]float64{10})

	got, err := s.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}

	if got.Count != 1 || got.Mean != 10 {
		t.Fatalf("got %+v after reset", got)
	}
}
