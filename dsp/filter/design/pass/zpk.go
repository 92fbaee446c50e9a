package pass

import (
	"math"
	"math/cmplx"
	"sort"
)

// realTol decides when a pole's imaginary part is rounding noise.
const realTol = 1e-12

// butterworthPrototype returns the poles of the order-N analog Butterworth
// low-pass prototype with a cutoff of 1 rad/s. The prototype has no finite
// zeros and unity gain.
func butterworthPrototype(order int) []complex128 {
	poles := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		theta := math.Pi * float64(m) / float64(2*order)
		poles = append(poles, -cmplx.Exp(complex(0, theta)))
	}
	return poles
}

// prewarp maps a digital frequency (Hz) to the analog frequency (rad/s) that
// the bilinear transform sends back onto it.
func prewarp(freq, sampleRate float64) float64 {
	return 2 * sampleRate * math.Tan(math.Pi*freq/sampleRate)
}

// lowpassToBandpass applies s -> (s² + w0²)/(s·bw) to prototype poles.
// Every prototype pole yields two band-pass poles; the N prototype zeros at
// infinity become N zeros at s = 0 (the rest stay at infinity). The returned
// gain multiplies the prototype gain.
func lowpassToBandpass(proto []complex128, w0, bw float64) ([]complex128, float64) {
	poles := make([]complex128, 0, 2*len(proto))
	w0sq := complex(w0*w0, 0)
	for _, p := range proto {
		pl := p * complex(bw/2, 0)
		d := cmplx.Sqrt(pl*pl - w0sq)
		poles = append(poles, pl+d, pl-d)
	}
	return poles, math.Pow(bw, float64(len(proto)))
}

// bilinearPoles maps analog poles to the z-plane with fs2 = 2·sampleRate and
// returns the gain factor prod(fs2 - z)/prod(fs2 - p) for zeros at the origin.
func bilinearPoles(poles []complex128, zerosAtOrigin int, sampleRate float64) ([]complex128, float64) {
	fs2 := complex(2*sampleRate, 0)
	out := make([]complex128, len(poles))
	den := complex(1, 0)
	for i, p := range poles {
		out[i] = (fs2 + p) / (fs2 - p)
		den *= fs2 - p
	}
	num := cmplx.Pow(fs2, complex(float64(zerosAtOrigin), 0))
	return out, real(num / den)
}

// pairPoles groups z-plane poles into second-order denominators. Complex
// poles are paired with their conjugates; real poles are paired with each
// other, and a lone real pole yields a first-order denominator.
func pairPoles(poles []complex128) [][2]complex128 {
	var upper []complex128
	var reals []float64
	for _, p := range poles {
		switch {
		case math.Abs(imag(p)) <= realTol*math.Max(1, cmplx.Abs(p)):
			reals = append(reals, real(p))
		case imag(p) > 0:
			upper = append(upper, p)
		}
	}

	// Sections closest to the unit circle go last.
	sort.Slice(upper, func(i, j int) bool { return cmplx.Abs(upper[i]) < cmplx.Abs(upper[j]) })
	sort.Float64s(reals)

	pairs := make([][2]complex128, 0, (len(poles)+1)/2)
	for i := 0; i+1 < len(reals); i += 2 {
		pairs = append(pairs, [2]complex128{complex(reals[i], 0), complex(reals[i+1], 0)})
	}
	if len(reals)%2 != 0 {
		pairs = append(pairs, [2]complex128{complex(reals[len(reals)-1], 0), 0})
	}
	for _, p := range upper {
		pairs = append(pairs, [2]complex128{p, cmplx.Conj(p)})
	}
	return pairs
}

// denominator expands (1 - p1 z^-1)(1 - p2 z^-1) into A1, A2.
func denominator(pair [2]complex128) (float64, float64) {
	return -real(pair[0] + pair[1]), real(pair[0] * pair[1])
}
