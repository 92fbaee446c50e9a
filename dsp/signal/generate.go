package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-envelope/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the current noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate("sine", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// LinearSweep generates a sine whose instantaneous frequency moves linearly
// from startHz to endHz over the requested number of samples.
//
// The phase is the running sum of the instantaneous frequency, so the sweep
// stays continuous at every sample.
func (g *Generator) LinearSweep(startHz, endHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate("sweep", samples); err != nil {
		return nil, err
	}
	if startHz < 0 || endHz < 0 {
		return nil, fmt.Errorf("sweep frequencies must be >= 0: %f, %f", startHz, endHz)
	}
	nyquist := g.cfg.Nyquist()
	if startHz >= nyquist || endHz >= nyquist {
		return nil, fmt.Errorf("sweep frequencies must be < nyquist %f: %f, %f", nyquist, startHz, endHz)
	}

	out := make([]float64, samples)
	span := 0.0
	if samples > 1 {
		span = (endHz - startHz) / float64(samples-1)
	}
	phase := 0.0
	for i := range out {
		f := startHz + span*float64(i)
		phase += 2 * math.Pi * f / g.cfg.SampleRate
		out[i] = amplitude * math.Sin(phase)
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

func (g *Generator) validate(kind string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", kind, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("%s sample rate must be > 0: %f", kind, g.cfg.SampleRate)
	}
	return nil
}

// RemoveDC subtracts the arithmetic mean and returns a new slice.
func RemoveDC(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, errors.New("remove dc input must not be empty")
	}

	mean := stat.Mean(data, nil)
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v - mean
	}
	return out, nil
}
