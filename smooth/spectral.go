package smooth

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidCutoff indicates a cutoff outside (0, 1].
var ErrInvalidCutoff = errors.New("smooth: cutoff must be in (0, 1]")

// lowpassOrder is the Butterworth order of the spectral weight. Order 4
// gives a reasonably sharp transition without ringing in the time domain.
const lowpassOrder = 4

// Lowpass attenuates frequency content of a resampled curve above the
// normalized cutoff (1 = Nyquist of the sample grid) and returns the
// smoothed copy. The input curve is not modified.
//
// The curve is mirror-extended before the transform so that the periodic
// boundary of the FFT does not bleed the endpoints into each other.
func Lowpass(c Curve, cutoff float64) (Curve, error) {
	if c.Len() < 2 {
		return Curve{}, ErrTooFewPoints
	}

	if cutoff <= 0 || cutoff > 1 {
		return Curve{}, fmt.Errorf("%w: %v", ErrInvalidCutoff, cutoff)
	}

	n := c.Len()
	fftSize := nextPow2(2 * n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Curve{}, fmt.Errorf("smooth: FFT plan: %w", err)
	}

	// Even periodic extension with period 2n.
	buf := make([]complex128, fftSize)
	for i := range buf {
		j := i % (2 * n)
		if j >= n {
			j = 2*n - 1 - j
		}

		buf[i] = complex(c.Y[j], 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, buf); err != nil {
		return Curve{}, fmt.Errorf("smooth: forward FFT: %w", err)
	}

	applyLowpassWeight(spectrum, cutoff)

	if err := plan.Inverse(buf, spectrum); err != nil {
		return Curve{}, fmt.Errorf("smooth: inverse FFT: %w", err)
	}

	out := Curve{
		X:             append([]float64(nil), c.X...),
		Y:             make([]float64, n),
		Method:        c.Method,
		FellBack:      c.FellBack,
		FallbackCause: c.FallbackCause,
	}

	for i := range out.Y {
		out.Y[i] = real(buf[i])
	}

	return out, nil
}

// applyLowpassWeight scales each bin by a Butterworth magnitude response
// centered on DC. The weight is symmetric in the bin index, so a
// Hermitian input spectrum stays Hermitian and the inverse transform
// remains real.
func applyLowpassWeight(spectrum []complex128, cutoff float64) {
	size := len(spectrum)
	half := size / 2

	re := make([]float64, size)
	im := make([]float64, size)

	for i, v := range spectrum {
		re[i] = real(v)
		im[i] = imag(v)
	}

	w := make([]float64, size)
	for i := range w {
		bin := i
		if bin > half {
			bin = size - bin
		}

		f := float64(bin) / float64(half)
		w[i] = 1 / (1 + math.Pow(f/cutoff, 2*lowpassOrder))
	}

	vecmath.MulBlockInPlace(re, w)
	vecmath.MulBlockInPlace(im, w)

	for i := range spectrum {
		spectrum[i] = complex(re[i], im[i])
	}
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
