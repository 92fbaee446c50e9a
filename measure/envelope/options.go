package envelope

import (
	"image/color"
	"runtime"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-envelope/internal/render"
)

// ExtractorConfig holds the settings of an Extractor.
type ExtractorConfig struct {
	Logger *zap.Logger
	// Palette[0] colors the raw waveform; curve i uses Palette[(i+1)%len].
	Palette []color.RGBA
	// FailFast aborts on the first invalid cutoff. When false, invalid cutoffs
	// are skipped and reported in Result.Rejected.
	FailFast bool
	// Workers bounds how many cutoffs are filtered concurrently.
	Workers int
}

// Option mutates an ExtractorConfig.
type Option func(*ExtractorConfig)

// DefaultExtractorConfig returns fail-fast settings with the default palette,
// a no-op logger and one worker per CPU.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Logger:   zap.NewNop(),
		Palette:  render.DefaultPalette(),
		FailFast: true,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *ExtractorConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithPalette sets the color palette. An empty palette is ignored.
func WithPalette(p []color.RGBA) Option {
	return func(cfg *ExtractorConfig) {
		if len(p) > 0 {
			cfg.Palette = append([]color.RGBA(nil), p...)
		}
	}
}

// WithFailFast selects between aborting on the first invalid cutoff (true)
// and collecting rejections (false).
func WithFailFast(v bool) Option {
	return func(cfg *ExtractorConfig) {
		cfg.FailFast = v
	}
}

// WithWorkers bounds the per-cutoff fan-out. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(cfg *ExtractorConfig) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// ApplyExtractorOptions applies opts on top of DefaultExtractorConfig.
func ApplyExtractorOptions(opts ...Option) ExtractorConfig {
	cfg := DefaultExtractorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
