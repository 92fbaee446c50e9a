package envelope

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	dspsignal "github.com/cwbudde/algo-envelope/dsp/signal"
)

// Condition turns decoded frames into a mono signal ready for envelope
// extraction:
//
//   - multi-channel frames are averaged to mono (a trailing partial frame is dropped),
//   - integer sources are divided by their absolute peak (by 1 when silent),
//   - the first floor(discardSeconds*SampleRate) samples are dropped,
//   - the mean of what remains is subtracted.
//
// Discarding more than the recording holds yields an empty Signal, not an error.
func Condition(raw Raw, discardSeconds float64) (Signal, error) {
	if raw.SampleRate <= 0 {
		return Signal{}, fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidInput, raw.SampleRate)
	}
	if raw.Channels <= 0 {
		return Signal{}, fmt.Errorf("%w: channel count must be > 0: %d", ErrInvalidInput, raw.Channels)
	}
	if math.IsNaN(discardSeconds) || math.IsInf(discardSeconds, 0) || discardSeconds < 0 {
		return Signal{}, fmt.Errorf("%w: discard seconds must be finite and >= 0: %g", ErrInvalidInput, discardSeconds)
	}

	mono := downmix(raw.Samples, raw.Channels)

	if raw.Integer && len(mono) > 0 {
		peak := vecmath.MaxAbs(mono)
		if peak == 0 {
			peak = 1
		}
		vecmath.ScaleBlock(mono, mono, 1/peak)
	}

	n0 := int(math.Floor(discardSeconds * float64(raw.SampleRate)))
	if n0 >= len(mono) {
		return Signal{SampleRate: raw.SampleRate, Samples: []float64{}}, nil
	}

	samples, err := dspsignal.RemoveDC(mono[n0:])
	if err != nil {
		return Signal{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return Signal{SampleRate: raw.SampleRate, Samples: samples}, nil
}

// downmix averages interleaved frames into one channel. Mono input is copied.
func downmix(samples []float64, channels int) []float64 {
	if channels == 1 {
		return append([]float64(nil), samples...)
	}

	frames := len(samples) / channels
	out := make([]float64, frames)
	scale := 1 / float64(channels)
	for f := range out {
		sum := 0.0
		for _, v := range samples[f*channels : (f+1)*channels] {
			sum += v
		}
		out[f] = sum * scale
	}
	return out
}
