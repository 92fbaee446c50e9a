package envelope

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-envelope/dsp/filter/biquad"
	"github.com/cwbudde/algo-envelope/dsp/filter/design/pass"
)

// FilterOrder is the Butterworth prototype order used for every cutoff.
const FilterOrder = 4

// FilterKind selects the response of a cutoff filter.
type FilterKind int

const (
	// KindLowPass keeps frequencies below a single cutoff.
	KindLowPass FilterKind = iota + 1
	// KindBandPass keeps frequencies between a low and a high edge.
	KindBandPass
)

func (k FilterKind) String() string {
	switch k {
	case KindLowPass:
		return "lowpass"
	case KindBandPass:
		return "bandpass"
	default:
		return "unknown"
	}
}

// Cutoff is one requested smoothing resolution. Build it with [LowPass] or
// [BandPass]; the zero value is invalid.
type Cutoff struct {
	kind FilterKind
	low  float64
	high float64
}

// LowPass requests a low-pass filter at hz.
func LowPass(hz float64) Cutoff {
	return Cutoff{kind: KindLowPass, high: hz}
}

// BandPass requests a band-pass filter between low and high Hz.
func BandPass(low, high float64) Cutoff {
	return Cutoff{kind: KindBandPass, low: low, high: high}
}

// Kind returns the filter response of c.
func (c Cutoff) Kind() FilterKind { return c.kind }

// Hz returns the low-pass cutoff frequency. It is 0 for band-pass cutoffs.
func (c Cutoff) Hz() float64 {
	if c.kind != KindLowPass {
		return 0
	}
	return c.high
}

// Band returns the band edges. Both are 0 for low-pass cutoffs.
func (c Cutoff) Band() (low, high float64) {
	if c.kind != KindBandPass {
		return 0, 0
	}
	return c.low, c.high
}

// Frequencies returns the cutoff values in Hz: one for low-pass, two for band-pass.
func (c Cutoff) Frequencies() []float64 {
	switch c.kind {
	case KindLowPass:
		return []float64{c.high}
	case KindBandPass:
		return []float64{c.low, c.high}
	default:
		return nil
	}
}

// Validate checks c against the Nyquist frequency and returns the filter
// kind with the cutoffs normalized to nyquist, each strictly inside (0, 1).
//
// Failures are reported as *CutoffError wrapping ErrNonFinite,
// ErrNonPositive, ErrInvertedBand or ErrAboveNyquist.
func (c Cutoff) Validate(nyquist float64) (FilterKind, []float64, error) {
	if math.IsNaN(nyquist) || math.IsInf(nyquist, 0) || nyquist <= 0 {
		return 0, nil, &CutoffError{Cutoff: c, Param: "nyquist", Value: nyquist, Nyquist: nyquist, Err: ErrInvalidNyquist}
	}

	switch c.kind {
	case KindLowPass:
		if err := c.checkValue("cutoff", c.high, nyquist); err != nil {
			return 0, nil, err
		}
		return KindLowPass, []float64{c.high / nyquist}, nil

	case KindBandPass:
		if err := c.checkValue("low", c.low, -1); err != nil {
			return 0, nil, err
		}
		if err := c.checkValue("high", c.high, -1); err != nil {
			return 0, nil, err
		}
		if c.low >= c.high {
			return 0, nil, &CutoffError{Cutoff: c, Param: "low", Value: c.low, Nyquist: nyquist, Err: ErrInvertedBand}
		}
		if c.high >= nyquist {
			return 0, nil, &CutoffError{Cutoff: c, Param: "high", Value: c.high, Nyquist: nyquist, Err: ErrAboveNyquist}
		}
		return KindBandPass, []float64{c.low / nyquist, c.high / nyquist}, nil

	default:
		return 0, nil, &CutoffError{Cutoff: c, Param: "cutoff", Nyquist: nyquist, Err: ErrUnknownKind}
	}
}

// checkValue applies the finite, positive and below-nyquist rules to one
// value. A negative nyquist skips the upper bound.
func (c Cutoff) checkValue(param string, v, nyquist float64) error {
	fail := func(err error) error {
		return &CutoffError{Cutoff: c, Param: param, Value: v, Nyquist: nyquist, Err: err}
	}
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fail(ErrNonFinite)
	case v <= 0:
		return fail(ErrNonPositive)
	case nyquist > 0 && v >= nyquist:
		return fail(ErrAboveNyquist)
	}
	return nil
}

// FilterDesign is a validated, ready-to-apply cutoff filter.
type FilterDesign struct {
	Kind       FilterKind
	Order      int
	Normalized []float64
	Sections   []biquad.Coefficients
}

// Design validates c at sampleRate and builds the 4th-order Butterworth
// second-order sections for it.
func (c Cutoff) Design(sampleRate int) (FilterDesign, error) {
	nyquist := float64(sampleRate) / 2
	kind, normalized, err := c.Validate(nyquist)
	if err != nil {
		return FilterDesign{}, err
	}

	var sections []biquad.Coefficients
	switch kind {
	case KindLowPass:
		sections = pass.ButterworthLP(c.high, FilterOrder, float64(sampleRate))
		if sections == nil {
			return FilterDesign{}, fmt.Errorf("envelope: low-pass design failed for %g Hz", c.high)
		}
	case KindBandPass:
		sections, err = pass.ButterworthBP(c.low, c.high, FilterOrder, float64(sampleRate))
		if err != nil {
			return FilterDesign{}, fmt.Errorf("envelope: band-pass design failed: %w", err)
		}
	}

	return FilterDesign{
		Kind:       kind,
		Order:      FilterOrder,
		Normalized: normalized,
		Sections:   sections,
	}, nil
}

// Label returns the legend text for a curve filtered with c.
func (c Cutoff) Label() string {
	switch c.kind {
	case KindLowPass:
		return fmt.Sprintf("Envelope (Hilbert + LP %s Hz), scaled", formatHz(c.high))
	case KindBandPass:
		return fmt.Sprintf("Envelope (Hilbert + BP %s–%s Hz), scaled", formatHz(c.low), formatHz(c.high))
	default:
		return "Envelope (Hilbert), scaled"
	}
}

// String returns the command-line form accepted by ParseCutoff.
func (c Cutoff) String() string {
	switch c.kind {
	case KindLowPass:
		return formatHz(c.high)
	case KindBandPass:
		return formatHz(c.low) + "-" + formatHz(c.high)
	default:
		return "<invalid>"
	}
}

// ParseCutoff parses "8" as an 8 Hz low-pass and "4-8" or "4:8" as a
// 4 to 8 Hz band-pass. Values are not range-checked; use Validate.
func ParseCutoff(s string) (Cutoff, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Cutoff{}, fmt.Errorf("%w: empty cutoff", ErrInvalidInput)
	}

	sep := strings.IndexByte(s, ':')
	if sep < 0 {
		sep = bandDash(s)
	}

	if sep < 0 {
		hz, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Cutoff{}, fmt.Errorf("%w: cutoff %q: %w", ErrInvalidInput, s, err)
		}
		return LowPass(hz), nil
	}

	lo, err := strconv.ParseFloat(strings.TrimSpace(s[:sep]), 64)
	if err != nil {
		return Cutoff{}, fmt.Errorf("%w: band low edge %q: %w", ErrInvalidInput, s, err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(s[sep+1:]), 64)
	if err != nil {
		return Cutoff{}, fmt.Errorf("%w: band high edge %q: %w", ErrInvalidInput, s, err)
	}
	return BandPass(lo, hi), nil
}

// ParseCutoffs parses every entry of list with ParseCutoff.
func ParseCutoffs(list []string) ([]Cutoff, error) {
	out := make([]Cutoff, 0, len(list))
	for _, s := range list {
		c, err := ParseCutoff(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// bandDash returns the index of the '-' separating two band edges, or -1.
// A leading sign and the sign of an exponent ("1e-3") are not separators.
func bandDash(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] != '-' {
			continue
		}
		if prev := s[i-1]; prev == 'e' || prev == 'E' {
			continue
		}
		return i
	}
	return -1
}

func formatHz(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
