package hilbert

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-envelope/dsp/core"
)

// transform is an unnormalized forward DFT of a fixed length.
type transform interface {
	Forward(dst, src []complex128) error
	Len() int
}

type planTransform struct {
	plan *algofft.Plan[complex128]
	n    int
}

func (t *planTransform) Forward(dst, src []complex128) error {
	return t.plan.Forward(dst, src)
}

func (t *planTransform) Len() int { return t.n }

type gonumTransform struct {
	fft *fourier.CmplxFFT
	n   int
}

func (t *gonumTransform) Forward(dst, src []complex128) error {
	t.fft.Coefficients(dst, src)
	return nil
}

func (t *gonumTransform) Len() int { return t.n }

// newTransform picks the FFT backend for length n.
func newTransform(n int) (transform, error) {
	if core.IsPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("hilbert: failed to create FFT plan: %w", err)
		}
		return &planTransform{plan: plan, n: n}, nil
	}
	return &gonumTransform{fft: fourier.NewCmplxFFT(n), n: n}, nil
}

// inverse computes the normalized inverse DFT of src into dst using the
// forward transform: ifft(X) = conj(fft(conj(X))) / n.
func inverse(t transform, dst, src []complex128) error {
	n := t.Len()
	conj := make([]complex128, n)
	for i, v := range src {
		conj[i] = complex(real(v), -imag(v))
	}
	if err := t.Forward(dst, conj); err != nil {
		return err
	}
	scale := 1 / float64(n)
	for i, v := range dst {
		dst[i] = complex(real(v)*scale, -imag(v)*scale)
	}
	return nil
}
