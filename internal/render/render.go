package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"
)

var (
	// ErrNothingToRender is returned for a request without curves.
	ErrNothingToRender = errors.New("render: no curves to draw")
	// ErrUnknownMode is returned for a mode without a layout.
	ErrUnknownMode = errors.New("render: unknown mode")
	// ErrLengthMismatch is returned when a series does not match the time axis.
	ErrLengthMismatch = errors.New("render: series length does not match time axis")
)

// Mode selects how curves are laid out.
type Mode int

const (
	// Overlay draws all curves into a single panel.
	Overlay Mode = iota
	// Panels draws one panel per curve, stacked vertically.
	Panels
)

func (m Mode) String() string {
	switch m {
	case Overlay:
		return "same"
	case Panels:
		return "multi"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "same" or "overlay" for Overlay and "multi" or "panels"
// for Panels.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "same", "overlay":
		return Overlay, nil
	case "multi", "panels":
		return Panels, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Series is one labeled curve.
type Series struct {
	Label   string
	Color   color.RGBA
	Samples []float64
}

// Request describes a figure.
type Request struct {
	Time          []float64
	Waveform      []float64
	WaveformColor color.RGBA
	Curves        []Series
	Mode          Mode
	Legend        bool
	Axes          bool
}

// Config holds canvas settings.
type Config struct {
	Width       int
	PanelHeight int
	Background  color.RGBA
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a 1200 px wide canvas with 320 px panels on white.
func DefaultConfig() Config {
	return Config{
		Width:       1200,
		PanelHeight: 320,
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// WithSize sets the canvas width and the height of each panel.
func WithSize(width, panelHeight int) Option {
	return func(cfg *Config) {
		if width > 0 {
			cfg.Width = width
		}
		if panelHeight > 0 {
			cfg.PanelHeight = panelHeight
		}
	}
}

// WithBackground sets the canvas color.
func WithBackground(c color.RGBA) Option {
	return func(cfg *Config) {
		cfg.Background = c
	}
}

// panel is one plotting area produced by a layout.
type panel struct {
	curves   []Series
	waveform bool
}

type layoutFunc func(req Request) []panel

var layouts = map[Mode]layoutFunc{
	Overlay: func(req Request) []panel {
		return []panel{{curves: req.Curves}}
	},
	Panels: func(req Request) []panel {
		out := make([]panel, len(req.Curves))
		for i, s := range req.Curves {
			out[i] = panel{curves: []Series{s}, waveform: len(req.Waveform) > 0}
		}
		return out
	},
}

// Render draws req and writes it to w as PNG.
func Render(w io.Writer, req Request, opts ...Option) error {
	img, err := Draw(req, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// Draw lays out req and returns the figure.
func Draw(req Request, opts ...Option) (*image.RGBA, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(req.Curves) == 0 {
		return nil, ErrNothingToRender
	}
	layout, ok := layouts[req.Mode]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, req.Mode)
	}
	if err := checkLengths(req); err != nil {
		return nil, err
	}

	panels := layout(req)
	height := len(panels)*cfg.PanelHeight + bottomMargin
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: cfg.Background}, image.Point{}, draw.Src)

	for i, p := range panels {
		area := image.Rect(leftMargin, i*cfg.PanelHeight+topMargin, cfg.Width-rightMargin, (i+1)*cfg.PanelHeight)
		c := newCanvas(img, area, req.Time, panelRange(req, p))

		if p.waveform {
			wc := req.WaveformColor
			wc.A = waveformAlpha
			c.series(req.Waveform, wc)
		}
		for _, s := range p.curves {
			c.series(s.Samples, s.Color)
		}
		if req.Axes {
			c.axes(i == len(panels)-1)
		}
		if req.Legend {
			c.legend(p.curves)
		}
	}
	return img, nil
}

func checkLengths(req Request) error {
	n := len(req.Time)
	if len(req.Waveform) > 0 && len(req.Waveform) != n {
		return fmt.Errorf("%w: waveform has %d samples, time axis %d", ErrLengthMismatch, len(req.Waveform), n)
	}
	for _, s := range req.Curves {
		if len(s.Samples) != n {
			return fmt.Errorf("%w: %q has %d samples, time axis %d", ErrLengthMismatch, s.Label, len(s.Samples), n)
		}
	}
	return nil
}
