package stats

import (
	"math"
	"strconv"
	"testing"
)

func makeBenchValues(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(0.01 * float64(i))
	}

	return out
}

func BenchmarkCalculate(b *testing.B) {
	for _, n := range []int{64, 1024, 16384, 262144} {
		values := makeBenchValues(n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				if _, err := Calculate(values); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDescribe(b *testing.B) {
	values := makeBenchValues(16384)

	b.ReportAllocs()

	for range b.N {
		if _, err := Describe(values); err != nil {
			b.Fatal(err)
		}
	}
}
