// Package config loads envplot job files.
//
// A job file is YAML; fields left out keep their defaults:
//
//	input: recording.wav
//	discard: 2.3
//	mode: multi
//	cutoffs: ["1", "4-8", "20-50"]
//	colors: ["#a8c6db", orange, red]
//	output: figure.png
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-envelope/internal/logging"
	"github.com/cwbudde/algo-envelope/internal/render"
	"github.com/cwbudde/algo-envelope/measure/envelope"
)

// ErrInvalidJob is returned by Validate.
var ErrInvalidJob = errors.New("config: invalid job")

// Job describes one envelope plot.
type Job struct {
	Input       string   `yaml:"input"`
	Demo        bool     `yaml:"demo"`
	Discard     float64  `yaml:"discard"`
	Mode        string   `yaml:"mode"`
	Legend      bool     `yaml:"legend"`
	Axes        bool     `yaml:"axes"`
	Colors      []string `yaml:"colors"`
	Cutoffs     []string `yaml:"cutoffs"`
	Output      string   `yaml:"output"`
	FailFast    bool     `yaml:"fail_fast"`
	LogLevel    string   `yaml:"log_level"`
	Width       int      `yaml:"width"`
	PanelHeight int      `yaml:"panel_height"`
}

// Default returns the built-in job: the 1 Hz, 4-8 Hz and 20-50 Hz curves
// overlaid in one panel with legend and axes.
func Default() Job {
	return Job{
		Mode:        "same",
		Legend:      true,
		Axes:        true,
		Colors:      []string{"#a8c6db", "orange", "red", "#4aa000"},
		Cutoffs:     []string{"1", "4-8", "20-50"},
		Output:      "envelope.png",
		FailFast:    true,
		LogLevel:    "info",
		Width:       render.DefaultConfig().Width,
		PanelHeight: render.DefaultConfig().PanelHeight,
	}
}

// Load reads a YAML job file on top of Default and validates it.
func Load(path string) (Job, error) {
	job, err := Read(path)
	if err != nil {
		return Job{}, err
	}
	if err := job.Validate(); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Read reads a YAML job file on top of Default without validating it, so
// callers can override fields before calling Validate.
func Read(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Decode(data)
}

// Parse decodes YAML job data on top of Default and validates it.
func Parse(data []byte) (Job, error) {
	job, err := Decode(data)
	if err != nil {
		return Job{}, err
	}
	if err := job.Validate(); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Decode decodes YAML job data on top of Default without validating it.
func Decode(data []byte) (Job, error) {
	job := Default()
	if err := yaml.Unmarshal(data, &job); err != nil {
		return Job{}, fmt.Errorf("config: decode: %w", err)
	}
	return job, nil
}

// Validate checks every field that can be checked without a signal.
// Cutoffs are only parsed here; their range depends on the sample rate.
func (j Job) Validate() error {
	var errs []error
	if j.Input == "" && !j.Demo {
		errs = append(errs, errors.New("either input or demo is required"))
	}
	if math.IsNaN(j.Discard) || math.IsInf(j.Discard, 0) || j.Discard < 0 {
		errs = append(errs, fmt.Errorf("discard must be finite and >= 0: %g", j.Discard))
	}
	if _, err := render.ParseMode(j.Mode); err != nil {
		errs = append(errs, err)
	}
	if _, err := j.Palette(); err != nil {
		errs = append(errs, err)
	}
	if len(j.Cutoffs) == 0 {
		errs = append(errs, envelope.ErrNoCutoffs)
	} else if _, err := j.ParsedCutoffs(); err != nil {
		errs = append(errs, err)
	}
	if j.Output == "" {
		errs = append(errs, errors.New("output path is required"))
	}
	if _, err := logging.ParseLevel(j.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if j.Width <= 0 || j.PanelHeight <= 0 {
		errs = append(errs, fmt.Errorf("figure size must be positive: %dx%d", j.Width, j.PanelHeight))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidJob, errors.Join(errs...))
	}
	return nil
}

// RenderMode returns the parsed layout mode.
func (j Job) RenderMode() (render.Mode, error) {
	return render.ParseMode(j.Mode)
}

// Palette returns the parsed colors. An empty list means the default palette.
func (j Job) Palette() ([]color.RGBA, error) {
	if len(j.Colors) == 0 {
		return render.DefaultPalette(), nil
	}
	out := make([]color.RGBA, len(j.Colors))
	for i, s := range j.Colors {
		c, err := render.ParseColor(s)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// ParsedCutoffs returns the cutoffs as envelope values.
func (j Job) ParsedCutoffs() ([]envelope.Cutoff, error) {
	return envelope.ParseCutoffs(j.Cutoffs)
}
