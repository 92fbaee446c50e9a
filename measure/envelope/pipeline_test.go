package envelope

import (
	"context"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cwbudde/algo-envelope/dsp/core"
	dspsignal "github.com/cwbudde/algo-envelope/dsp/signal"
	"github.com/cwbudde/algo-envelope/internal/render"
	"github.com/cwbudde/algo-envelope/internal/testutil"
)

func sweepSignal(t *testing.T) Signal {
	t.Helper()

	gen := dspsignal.NewGenerator(core.WithSampleRate(1000))
	sweep, err := gen.LinearSweep(5, 50, 0.8, 10000)
	require.NoError(t, err)

	sig, err := Condition(Raw{Samples: sweep, Channels: 1, SampleRate: 1000}, 0)
	require.NoError(t, err)
	return sig
}

func TestRunSweepEndToEnd(t *testing.T) {
	sig := sweepSignal(t)

	res, err := NewExtractor().Run(context.Background(), sig, []Cutoff{LowPass(1), BandPass(4, 8)})
	require.NoError(t, err)
	require.Empty(t, res.Rejected)
	require.Len(t, res.Curves, 2)
	require.Len(t, res.Envelope, sig.Len())

	for _, v := range res.Envelope {
		require.GreaterOrEqual(t, v, 0.0)
	}

	wantPeak := SafePeak(sig.Samples)
	for i, c := range res.Curves {
		require.Equal(t, i, c.Index)
		require.Len(t, c.Samples, 10000)
		testutil.RequireFinite(t, c.Samples)
		require.InDelta(t, wantPeak, SafePeak(c.Samples), 1e-9)
	}

	// the 1 Hz low-pass of a constant-amplitude sweep stays positive away from the edges
	lp := res.Curves[0].Samples
	for _, v := range lp[1000:9000] {
		require.Greater(t, v, 0.0)
	}

	require.Equal(t, "Envelope (Hilbert + LP 1 Hz), scaled", res.Curves[0].Label)
	require.Equal(t, "Envelope (Hilbert + BP 4–8 Hz), scaled", res.Curves[1].Label)
}

func TestRunColorsSkipWaveformEntry(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, A: 255},
		{R: 2, A: 255},
		{R: 3, A: 255},
	}
	sig := sweepSignal(t)
	cutoffs := []Cutoff{LowPass(1), LowPass(2), LowPass(4)}

	res, err := NewExtractor(WithPalette(palette)).Run(context.Background(), sig, cutoffs)
	require.NoError(t, err)
	require.Equal(t, palette[0], res.WaveformColor)
	require.Equal(t, palette[1], res.Curves[0].Color)
	require.Equal(t, palette[2], res.Curves[1].Color)
	require.Equal(t, palette[0], res.Curves[2].Color, "palette wraps around")
}

func TestRunFailFast(t *testing.T) {
	sig := sweepSignal(t)

	_, err := NewExtractor().Run(context.Background(), sig, []Cutoff{LowPass(1), LowPass(600), BandPass(4, 8)})
	require.ErrorIs(t, err, ErrAboveNyquist)
}

func TestRunCollectRejections(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	sig := sweepSignal(t)
	cutoffs := []Cutoff{LowPass(1), LowPass(600), BandPass(8, 4)}

	res, err := NewExtractor(WithFailFast(false), WithLogger(zap.New(obs))).
		Run(context.Background(), sig, cutoffs)
	require.NoError(t, err)

	require.Len(t, res.Curves, 1)
	require.Equal(t, 0, res.Curves[0].Index)
	require.Len(t, res.Rejected, 2)
	require.Equal(t, 1, res.Rejected[0].Index)
	require.ErrorIs(t, res.Rejected[0].Err, ErrAboveNyquist)
	require.Equal(t, 2, res.Rejected[1].Index)
	require.ErrorIs(t, res.Rejected[1].Err, ErrInvertedBand)
	require.ErrorIs(t, res.RejectedErr(), ErrInvertedBand)

	require.Equal(t, 2, logs.FilterMessage("cutoff skipped").Len())
}

func TestRunAllZeroSignal(t *testing.T) {
	sig := Signal{SampleRate: 1000, Samples: make([]float64, 2048)}

	res, err := NewExtractor().Run(context.Background(), sig, []Cutoff{LowPass(10), BandPass(4, 8)})
	require.NoError(t, err)
	for _, c := range res.Curves {
		for _, v := range c.Samples {
			require.False(t, math.IsNaN(v))
			require.Zero(t, v)
		}
	}
}

func TestRunPreservesPeakTiming(t *testing.T) {
	const n = 4000
	bump := testutil.GaussianPulse(n, 2000, 300)
	carrier := testutil.DeterministicSine(50, 1000, 1, n)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = bump[i] * carrier[i]
	}
	sig := Signal{SampleRate: 1000, Samples: samples}

	res, err := NewExtractor().Run(context.Background(), sig, []Cutoff{LowPass(2)})
	require.NoError(t, err)
	require.InDelta(t, 2000, testutil.PeakIndex(res.Curves[0].Samples), 25)
}

func TestRunErrors(t *testing.T) {
	ex := NewExtractor()
	sig := Signal{SampleRate: 1000, Samples: []float64{1, 2, 3}}

	_, err := ex.Run(context.Background(), sig, nil)
	require.ErrorIs(t, err, ErrNoCutoffs)

	_, err = ex.Run(context.Background(), Signal{SampleRate: 1000}, []Cutoff{LowPass(1)})
	require.ErrorIs(t, err, ErrEmptySignal)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ex.Run(ctx, sweepSignal(t), []Cutoff{LowPass(1)})
	require.ErrorIs(t, err, context.Canceled)
}

func TestResultRenderRequest(t *testing.T) {
	sig := sweepSignal(t)
	res, err := NewExtractor().Run(context.Background(), sig, []Cutoff{LowPass(1), BandPass(4, 8)})
	require.NoError(t, err)

	req := res.RenderRequest(render.Panels, true, false)
	require.Equal(t, render.Panels, req.Mode)
	require.True(t, req.Legend)
	require.False(t, req.Axes)
	require.Len(t, req.Time, sig.Len())
	require.Len(t, req.Curves, 2)
	require.Equal(t, res.Curves[1].Label, req.Curves[1].Label)
	require.Equal(t, render.DefaultPalette()[0], req.WaveformColor)
}

func TestExtractorOptions(t *testing.T) {
	cfg := NewExtractor(WithWorkers(0), WithPalette(nil), WithLogger(nil)).Config()
	def := DefaultExtractorConfig()
	require.Equal(t, def.Workers, cfg.Workers)
	require.Equal(t, def.Palette, cfg.Palette)
	require.NotNil(t, cfg.Logger)
	require.True(t, cfg.FailFast)

	cfg = NewExtractor(WithWorkers(3), WithFailFast(false)).Config()
	require.Equal(t, 3, cfg.Workers)
	require.False(t, cfg.FailFast)
}
