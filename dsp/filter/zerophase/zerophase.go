// Package zerophase applies biquad cascades forward and backward over a
// complete signal so the result carries no phase delay.
//
// Both ends are extended with an odd-symmetric reflection before filtering
// and each pass starts from the cascade's steady state for its first sample,
// which keeps the start-up transient out of the cropped output.
package zerophase

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-envelope/dsp/core"
	"github.com/cwbudde/algo-envelope/dsp/filter/biquad"
)

// DefaultPadSeconds is the edge extension used by PadLength, in seconds.
const DefaultPadSeconds = 0.25

// ErrNegativePad is returned for a pad length below zero.
var ErrNegativePad = errors.New("zerophase: pad length must be >= 0")

// PadLength returns the edge extension for a signal of n samples:
// min(n-1, DefaultPadSeconds*sampleRate) truncated to an integer, and 1 for
// signals of at most one sample.
func PadLength(n int, sampleRate float64) int {
	if n <= 1 {
		return 1
	}
	return int(math.Min(float64(n-1), sampleRate*DefaultPadSeconds))
}

// Filter runs the cascade described by coeffs over x forward and backward
// and returns a new slice of len(x) samples. padLen is capped at len(x)-1.
func Filter(coeffs []biquad.Coefficients, x []float64, padLen int) ([]float64, error) {
	if padLen < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativePad, padLen)
	}
	n := len(x)
	if n == 0 {
		return []float64{}, nil
	}
	if padLen > n-1 {
		padLen = n - 1
	}

	ext := OddExtend(x, padLen)
	zi := biquad.SteadyState(coeffs)
	chain := biquad.NewChain(coeffs)

	chain.SetScaledState(zi, ext[0])
	chain.ProcessBlock(ext)

	core.Reverse(ext)
	chain.SetScaledState(zi, ext[0])
	chain.ProcessBlock(ext)
	core.Reverse(ext)

	out := make([]float64, n)
	copy(out, ext[padLen:padLen+n])
	return out, nil
}

// OddExtend returns x with padLen samples of odd-symmetric reflection about
// the first and last sample added at either end. padLen must not exceed
// len(x)-1.
func OddExtend(x []float64, padLen int) []float64 {
	n := len(x)
	out := make([]float64, n+2*padLen)
	first, last := x[0], x[n-1]

	for i := 0; i < padLen; i++ {
		out[i] = 2*first - x[padLen-i]
	}
	copy(out[padLen:], x)
	for j := 1; j <= padLen; j++ {
		out[padLen+n-1+j] = 2*last - x[n-1-j]
	}
	return out
}
