package hilbert

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

var errTransform = errors.New("hilbert: transform failed")

// Analytic returns the analytic signal x + j·H{x} of a real sequence.
// An empty input yields an empty result.
func Analytic(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return []complex128{}, nil
	}

	t, err := newTransform(n)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	bins := make([]complex128, n)
	if err := t.Forward(bins, in); err != nil {
		return nil, fmt.Errorf("%w: forward: %w", errTransform, err)
	}

	applyAnalyticMask(bins)

	out := make([]complex128, n)
	if err := inverse(t, out, bins); err != nil {
		return nil, fmt.Errorf("%w: inverse: %w", errTransform, err)
	}

	return out, nil
}

// applyAnalyticMask keeps DC (and Nyquist for even n), doubles the positive
// frequencies and clears the negative ones.
func applyAnalyticMask(bins []complex128) {
	n := len(bins)
	half := n / 2
	if n%2 == 0 {
		for i := 1; i < half; i++ {
			bins[i] *= 2
		}
		for i := half + 1; i < n; i++ {
			bins[i] = 0
		}
		return
	}

	for i := 1; i <= half; i++ {
		bins[i] *= 2
	}
	for i := half + 1; i < n; i++ {
		bins[i] = 0
	}
}

// Envelope returns |Analytic(x)|, the instantaneous amplitude of x.
// The result has the same length as x and is non-negative.
func Envelope(x []float64) ([]float64, error) {
	z, err := Analytic(x)
	if err != nil {
		return nil, err
	}

	re := make([]float64, len(z))
	im := make([]float64, len(z))
	for i, v := range z {
		re[i] = real(v)
		im[i] = imag(v)
	}

	out := make([]float64, len(z))
	if len(z) > 0 {
		vecmath.Magnitude(out, re, im)
	}
	return out, nil
}
