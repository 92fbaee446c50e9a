package pass

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-envelope/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
// Returns nil for a non-positive order or a cutoff outside (0, sampleRate/2).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validFreq(freq, sampleRate) {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, lowpassRBJ(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderLP(freq, sampleRate))
	}
	return sections
}

// ButterworthBP designs a bandpass Butterworth cascade passing low..high Hz.
//
// order is the prototype order: the result has order sections and a total
// filter order of 2*order. Both band edges sit at -3 dB and the response is
// unity at the geometric center of the prewarped edges. Every section has
// one zero at DC and one at Nyquist.
func ButterworthBP(low, high float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if order <= 0 {
		return nil, fmt.Errorf("%w: order must be > 0: %d", ErrInvalidParams, order)
	}
	if !validFreq(low, sampleRate) || !validFreq(high, sampleRate) {
		return nil, fmt.Errorf("%w: band %g..%g Hz outside (0, %g)", ErrInvalidParams, low, high, sampleRate/2)
	}
	if low >= high {
		return nil, fmt.Errorf("%w: band requires low < high: %g >= %g", ErrInvalidParams, low, high)
	}

	wl := prewarp(low, sampleRate)
	wh := prewarp(high, sampleRate)
	analog, gain := lowpassToBandpass(butterworthPrototype(order), math.Sqrt(wl*wh), wh-wl)
	digital, bilinearGain := bilinearPoles(analog, order, sampleRate)
	gain *= bilinearGain

	pairs := pairPoles(digital)
	if len(pairs) != order {
		return nil, fmt.Errorf("%w: expected %d pole pairs, got %d", ErrInvalidParams, order, len(pairs))
	}

	sections := make([]biquad.Coefficients, order)
	for i, pair := range pairs {
		a1, a2 := denominator(pair)
		sections[i] = biquad.Coefficients{B0: 1, B1: 0, B2: -1, A1: a1, A2: a2}
	}
	sections[0].B0 *= gain
	sections[0].B2 *= gain

	return sections, nil
}
