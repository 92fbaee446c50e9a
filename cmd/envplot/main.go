// Command envplot draws amplitude envelope curves of a recording at several
// smoothing resolutions.
//
// Usage:
//
//	envplot [flags] [cutoff ...]
//
// A cutoff is either a low-pass frequency ("8") or a band ("4-8" or "4:8").
// Without cutoffs it draws 1, 4-8 and 20-50.
//
// Examples:
//
//	envplot -in take1.wav -discard 2.3
//	envplot -in take1.wav -mode same -colors "#a8c6db,orange,red" 0.5 4-8
//	envplot -demo -out demo.png
//	envplot -config job.yaml -fail-fast=false
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-envelope/dsp/core"
	dspsignal "github.com/cwbudde/algo-envelope/dsp/signal"
	"github.com/cwbudde/algo-envelope/internal/config"
	"github.com/cwbudde/algo-envelope/internal/logging"
	"github.com/cwbudde/algo-envelope/internal/render"
	"github.com/cwbudde/algo-envelope/internal/wavfile"
	"github.com/cwbudde/algo-envelope/measure/envelope"
	timestats "github.com/cwbudde/algo-envelope/stats/time"
)

const (
	demoSampleRate = 1000
	demoSeconds    = 10
	demoStartHz    = 5
	demoEndHz      = 50
	demoAmplitude  = 0.8
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	job, err := parseJob(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	log, err := logging.New(logging.WithLevel(job.LogLevel), logging.WithOutput(zapSyncer(stderr)))
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	if err := plot(ctx, job, log, stdout); err != nil {
		log.Error("envplot failed", zap.Error(err))
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// parseJob merges defaults, the optional job file, explicit flags and
// positional cutoffs, in that order.
func parseJob(args []string, stderr io.Writer) (config.Job, error) {
	def := config.Default()

	fs := flag.NewFlagSet("envplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "input WAV file")
	demo := fs.Bool("demo", false, "use a synthetic 10 s sweep (5-50 Hz at 1 kHz) instead of -in")
	cfgPath := fs.String("config", "", "YAML job file; explicit flags override its values")
	mode := fs.String("mode", def.Mode, "layout: same (one panel) or multi (one panel per curve)")
	legend := fs.Bool("legend", def.Legend, "draw a legend")
	axes := fs.Bool("axes", def.Axes, "draw axes and time labels")
	discard := fs.Float64("discard", def.Discard, "seconds to drop from the start of the recording")
	colors := fs.String("colors", strings.Join(def.Colors, ","), "comma separated palette; the first color is the waveform")
	out := fs.String("out", def.Output, "output PNG path")
	failFast := fs.Bool("fail-fast", def.FailFast, "abort on the first invalid cutoff instead of skipping it")
	logLevel := fs.String("log-level", def.LogLevel, "log level: debug, info, warn or error")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: envplot [flags] [cutoff ...]\n\n")
		_, _ = fmt.Fprintf(stderr, "Draws Hilbert envelope curves filtered at each cutoff.\n")
		_, _ = fmt.Fprintf(stderr, "A cutoff is a low-pass frequency (8) or a band (4-8 or 4:8).\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  envplot -in take1.wav -discard 2.3\n")
		_, _ = fmt.Fprintf(stderr, "  envplot -in take1.wav -mode same 0.5 4-8\n")
		_, _ = fmt.Fprintf(stderr, "  envplot -demo -out demo.png\n")
	}
	if err := fs.Parse(args); err != nil {
		return config.Job{}, err
	}

	job := def
	if *cfgPath != "" {
		loaded, err := config.Read(*cfgPath)
		if err != nil {
			return config.Job{}, err
		}
		job = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			job.Input = *in
		case "demo":
			job.Demo = *demo
		case "mode":
			job.Mode = *mode
		case "legend":
			job.Legend = *legend
		case "axes":
			job.Axes = *axes
		case "discard":
			job.Discard = *discard
		case "colors":
			job.Colors = strings.Split(*colors, ",")
		case "out":
			job.Output = *out
		case "fail-fast":
			job.FailFast = *failFast
		case "log-level":
			job.LogLevel = *logLevel
		}
	})
	if fs.NArg() > 0 {
		job.Cutoffs = fs.Args()
	}

	if err := job.Validate(); err != nil {
		return config.Job{}, err
	}
	return job, nil
}

func plot(ctx context.Context, job config.Job, log *zap.Logger, stdout io.Writer) error {
	raw, err := loadInput(job)
	if err != nil {
		return err
	}
	log.Info("input loaded",
		zap.String("input", inputName(job)),
		zap.Int("sample_rate", raw.SampleRate),
		zap.Int("channels", raw.Channels),
	)

	sig, err := envelope.Condition(raw, job.Discard)
	if err != nil {
		return err
	}

	cutoffs, err := job.ParsedCutoffs()
	if err != nil {
		return err
	}
	palette, err := job.Palette()
	if err != nil {
		return err
	}
	mode, err := job.RenderMode()
	if err != nil {
		return err
	}

	ex := envelope.NewExtractor(
		envelope.WithLogger(log),
		envelope.WithPalette(palette),
		envelope.WithFailFast(job.FailFast),
	)
	res, err := ex.Run(ctx, sig, cutoffs)
	if err != nil {
		return err
	}
	if len(res.Curves) == 0 {
		return fmt.Errorf("every cutoff was rejected: %w", res.RejectedErr())
	}

	if err := writeFigure(job, res.RenderRequest(mode, job.Legend, job.Axes)); err != nil {
		return err
	}
	log.Info("figure written", zap.String("output", job.Output), zap.Stringer("mode", mode))

	return printSummary(stdout, res)
}

func loadInput(job config.Job) (envelope.Raw, error) {
	if job.Input != "" {
		return wavfile.Load(job.Input)
	}

	gen := dspsignal.NewGenerator(core.WithSampleRate(demoSampleRate))
	sweep, err := gen.LinearSweep(demoStartHz, demoEndHz, demoAmplitude, demoSampleRate*demoSeconds)
	if err != nil {
		return envelope.Raw{}, fmt.Errorf("demo signal: %w", err)
	}
	return envelope.Raw{Samples: sweep, Channels: 1, SampleRate: demoSampleRate}, nil
}

func inputName(job config.Job) string {
	if job.Input != "" {
		return job.Input
	}
	return "demo"
}

func writeFigure(job config.Job, req render.Request) error {
	f, err := os.Create(job.Output)
	if err != nil {
		return fmt.Errorf("create figure: %w", err)
	}
	if err := render.Render(f, req, render.WithSize(job.Width, job.PanelHeight)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printSummary(w io.Writer, res envelope.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "#\tCurve\tKind\tNormalized\tPeak\tRMS\tCrest [dB]\tCorr\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-\t-----\t----\t----------\t----\t---\t----------\t----\n"); err != nil {
		return err
	}
	if len(res.Envelope) > 0 {
		s := timestats.Calculate(res.Envelope)
		if _, err := fmt.Fprintf(tw, "-\tEnvelope (Hilbert), raw\t-\t-\t%.4f\t%.4f\t%.2f\t-\n", s.Peak, s.RMS, s.CrestFactor_dB); err != nil {
			return err
		}
	}
	for _, c := range res.Curves {
		norm := make([]string, len(c.Design.Normalized))
		for i, v := range c.Design.Normalized {
			norm[i] = fmt.Sprintf("%.5f", v)
		}
		s := timestats.Calculate(c.Samples)
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.4f\t%.4f\t%.2f\t%.3f\n",
			c.Index,
			c.Label,
			c.Design.Kind,
			strings.Join(norm, ".."),
			s.Peak,
			s.RMS,
			s.CrestFactor_dB,
			timestats.Correlation(c.Samples, res.Envelope),
		); err != nil {
			return err
		}
	}
	for _, r := range res.Rejected {
		if _, err := fmt.Fprintf(tw, "%d\t%s\trejected\t%v\t-\t-\t-\t-\n", r.Index, r.Cutoff, r.Err); err != nil {
			return err
		}
	}
	return tw.Flush()
}
