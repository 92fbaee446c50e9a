// Package envelope extracts amplitude envelope curves of a recorded waveform
// at several smoothing resolutions so slow modulation trends can be compared
// against each other and against the raw signal.
//
// The pipeline is linear:
//
//   - [Condition] reduces raw frames to a mono, peak-normalized, DC-free [Signal]
//     with an optional lead-in removed.
//   - [ExtractEnvelope] takes the magnitude of the analytic signal.
//   - Each [Cutoff] (low-pass or band-pass) is validated against the Nyquist
//     frequency, turned into a 4th-order Butterworth [FilterDesign] and applied
//     forward and backward to the envelope.
//   - [Normalize] rescales every filtered curve to the waveform's peak.
//
// # Usage
//
//	sig, err := envelope.Condition(raw, 2.3)
//	ex := envelope.NewExtractor(envelope.WithFailFast(false))
//	res, err := ex.Run(context.Background(), sig, []envelope.Cutoff{envelope.LowPass(1), envelope.BandPass(4, 8)})
//	for _, c := range res.Curves {
//		fmt.Println(c.Label, len(c.Samples))
//	}
package envelope
