package envelope

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-envelope/internal/render"
)

// Curve is one filtered, peak-matched envelope.
type Curve struct {
	Index   int // position in the requested cutoff list
	Cutoff  Cutoff
	Design  FilterDesign
	Label   string
	Color   color.RGBA
	Samples []float64
}

// Rejection records a cutoff skipped in collect mode.
type Rejection struct {
	Index  int
	Cutoff Cutoff
	Err    error
}

// Result is the output of one Extractor run.
type Result struct {
	Signal        Signal
	Envelope      []float64
	Curves        []Curve
	Rejected      []Rejection
	WaveformColor color.RGBA
}

// Extractor turns a conditioned signal and a list of cutoffs into
// render-ready envelope curves. It is safe for concurrent use.
type Extractor struct {
	cfg ExtractorConfig
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ...Option) *Extractor {
	return &Extractor{cfg: ApplyExtractorOptions(opts...)}
}

// Config returns the extractor settings.
func (e *Extractor) Config() ExtractorConfig { return e.cfg }

// Run extracts the envelope of sig once and derives one curve per valid
// cutoff. Curves keep the order of cutoffs.
func (e *Extractor) Run(ctx context.Context, sig Signal, cutoffs []Cutoff) (Result, error) {
	log := e.cfg.Logger
	start := time.Now()

	if len(cutoffs) == 0 {
		return Result{}, ErrNoCutoffs
	}
	if sig.Len() == 0 {
		return Result{}, ErrEmptySignal
	}
	if sig.SampleRate <= 0 {
		return Result{}, fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidInput, sig.SampleRate)
	}

	res := Result{Signal: sig, WaveformColor: e.cfg.Palette[0]}

	accepted := make([]int, 0, len(cutoffs))
	for i, c := range cutoffs {
		if _, _, err := c.Validate(sig.Nyquist()); err != nil {
			if e.cfg.FailFast {
				log.Error("cutoff rejected", zap.Int("index", i), zap.Stringer("cutoff", c), zap.Error(err))
				return Result{}, err
			}
			log.Warn("cutoff skipped", zap.Int("index", i), zap.Stringer("cutoff", c), zap.Error(err))
			res.Rejected = append(res.Rejected, Rejection{Index: i, Cutoff: c, Err: err})
			continue
		}
		accepted = append(accepted, i)
	}

	env, err := ExtractEnvelope(sig)
	if err != nil {
		return Result{}, err
	}
	res.Envelope = env

	slots := make([]Curve, len(cutoffs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for _, i := range accepted {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			curve, err := e.curve(i, cutoffs[i], env, sig)
			if err != nil {
				return err
			}
			slots[i] = curve
			log.Debug("curve ready",
				zap.Int("index", i),
				zap.String("label", curve.Label),
				zap.Float64s("normalized", curve.Design.Normalized),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res.Curves = make([]Curve, 0, len(accepted))
	for _, i := range accepted {
		res.Curves = append(res.Curves, slots[i])
	}

	log.Info("envelope curves extracted",
		zap.Int("samples", sig.Len()),
		zap.Int("sample_rate", sig.SampleRate),
		zap.Int("curves", len(res.Curves)),
		zap.Int("rejected", len(res.Rejected)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

func (e *Extractor) curve(i int, c Cutoff, env []float64, sig Signal) (Curve, error) {
	design, err := c.Design(sig.SampleRate)
	if err != nil {
		return Curve{}, fmt.Errorf("envelope: cutoff %d (%s): %w", i, c, err)
	}
	filtered, err := design.Apply(env, sig.SampleRate)
	if err != nil {
		return Curve{}, fmt.Errorf("envelope: cutoff %d (%s): %w", i, c, err)
	}
	return Curve{
		Index:   i,
		Cutoff:  c,
		Design:  design,
		Label:   c.Label(),
		Color:   e.cfg.Palette[(i+1)%len(e.cfg.Palette)],
		Samples: Normalize(filtered, sig.Samples),
	}, nil
}

// RejectedErr joins the errors of all rejected cutoffs, or returns nil.
func (r Result) RejectedErr() error {
	errs := make([]error, 0, len(r.Rejected))
	for _, rej := range r.Rejected {
		errs = append(errs, fmt.Errorf("cutoff %d (%s): %w", rej.Index, rej.Cutoff, rej.Err))
	}
	return errors.Join(errs...)
}

// RenderRequest assembles the figure description for r.
func (r Result) RenderRequest(mode render.Mode, legend, axes bool) render.Request {
	series := make([]render.Series, len(r.Curves))
	for i, c := range r.Curves {
		series[i] = render.Series{Label: c.Label, Color: c.Color, Samples: c.Samples}
	}
	return render.Request{
		Time:          r.Signal.TimeAxis(),
		Waveform:      r.Signal.Samples,
		WaveformColor: r.WaveformColor,
		Curves:        series,
		Mode:          mode,
		Legend:        legend,
		Axes:          axes,
	}
}
