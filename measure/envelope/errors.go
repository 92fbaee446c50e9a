package envelope

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports malformed raw samples or conditioning parameters.
	ErrInvalidInput = errors.New("envelope: invalid input")
	// ErrEmptySignal is returned when nothing is left to filter, e.g. after
	// discarding a lead-in longer than the recording.
	ErrEmptySignal = errors.New("envelope: empty signal")
	// ErrNoCutoffs is returned when a run is requested without any cutoff.
	ErrNoCutoffs = errors.New("envelope: no cutoffs requested")

	// ErrNonFinite rejects NaN or infinite cutoff frequencies.
	ErrNonFinite = errors.New("cutoff must be a finite number")
	// ErrNonPositive rejects cutoff frequencies at or below 0 Hz.
	ErrNonPositive = errors.New("cutoff must be > 0 Hz")
	// ErrInvertedBand rejects band-pass cutoffs whose low edge is not below the high edge.
	ErrInvertedBand = errors.New("band-pass requires low < high")
	// ErrAboveNyquist rejects cutoff frequencies at or above the Nyquist frequency.
	ErrAboveNyquist = errors.New("cutoff must be < nyquist")
	// ErrUnknownKind rejects a zero-value Cutoff.
	ErrUnknownKind = errors.New("cutoff has no filter kind")
	// ErrInvalidNyquist rejects a non-positive or non-finite Nyquist frequency.
	ErrInvalidNyquist = errors.New("nyquist must be a positive finite frequency")
)

// CutoffError describes why one cutoff was rejected. It wraps one of the
// cutoff sentinel errors, so callers can match with errors.Is.
type CutoffError struct {
	Cutoff  Cutoff
	Param   string // "cutoff", "low", "high" or "nyquist"
	Value   float64
	Nyquist float64
	Err     error
}

func (e *CutoffError) Error() string {
	switch e.Err {
	case ErrInvertedBand:
		low, high := e.Cutoff.Band()
		return fmt.Sprintf("envelope: %v, got %g >= %g", e.Err, low, high)
	case ErrAboveNyquist:
		return fmt.Sprintf("envelope: %s %v (%.2f Hz), got %g Hz", e.Param, e.Err, e.Nyquist, e.Value)
	default:
		return fmt.Sprintf("envelope: %s %v, got %g", e.Param, e.Err, e.Value)
	}
}

func (e *CutoffError) Unwrap() error { return e.Err }
