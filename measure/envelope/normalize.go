package envelope

import "github.com/cwbudde/algo-vecmath"

// SafePeak returns the largest absolute value in x, or 1 when x is empty or
// all zero. It is the single peak policy for waveform and curves alike.
func SafePeak(x []float64) float64 {
	if len(x) == 0 {
		return 1
	}
	p := vecmath.MaxAbs(x)
	if p == 0 {
		return 1
	}
	return p
}

// Normalize returns a new slice holding curve scaled so that its absolute
// peak equals the absolute peak of reference. Applying it twice with the
// same reference gives the same result.
func Normalize(curve, reference []float64) []float64 {
	out := make([]float64, len(curve))
	if len(curve) == 0 {
		return out
	}
	vecmath.ScaleBlock(out, curve, SafePeak(reference)/SafePeak(curve))
	return out
}
