package envelope

import (
	"fmt"

	"github.com/cwbudde/algo-envelope/dsp/filter/hilbert"
	"github.com/cwbudde/algo-envelope/dsp/filter/zerophase"
)

// ExtractEnvelope returns the instantaneous amplitude |analytic(x)| of sig.
func ExtractEnvelope(sig Signal) ([]float64, error) {
	env, err := hilbert.Envelope(sig.Samples)
	if err != nil {
		return nil, fmt.Errorf("envelope: hilbert: %w", err)
	}
	return env, nil
}

// Apply runs d forward and backward over x with the default odd padding for
// sampleRate. The result has the same length as x and no phase shift.
func (d FilterDesign) Apply(x []float64, sampleRate int) ([]float64, error) {
	pad := zerophase.PadLength(len(x), float64(sampleRate))
	y, err := zerophase.Filter(d.Sections, x, pad)
	if err != nil {
		return nil, fmt.Errorf("envelope: zero-phase %s: %w", d.Kind, err)
	}
	return y, nil
}
