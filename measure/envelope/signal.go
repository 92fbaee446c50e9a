package envelope

// Raw holds decoded samples before conditioning.
type Raw struct {
	// Samples are interleaved frames: Samples[f*Channels+c].
	Samples    []float64
	Channels   int
	SampleRate int
	// Integer marks integer-quantized sources, which are peak-normalized
	// during conditioning.
	Integer bool
}

// Signal is a conditioned mono waveform.
type Signal struct {
	SampleRate int
	Samples    []float64
}

// Len returns the number of samples.
func (s Signal) Len() int { return len(s.Samples) }

// Nyquist returns half the sample rate in Hz.
func (s Signal) Nyquist() float64 { return float64(s.SampleRate) / 2 }

// Duration returns the signal length in seconds.
func (s Signal) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// Time returns the time of sample i in seconds.
func (s Signal) Time(i int) float64 {
	return float64(i) / float64(s.SampleRate)
}

// TimeAxis returns i/SampleRate for every sample.
func (s Signal) TimeAxis() []float64 {
	t := make([]float64, len(s.Samples))
	for i := range t {
		t[i] = s.Time(i)
	}
	return t
}
