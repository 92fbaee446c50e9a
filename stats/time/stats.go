// Package time computes time-domain statistics of envelope curves and
// conditioned waveforms.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain statistics of one series.
//
//nolint:revive
type Stats struct {
	Length         int
	Mean           float64
	Variance       float64 // population variance
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max |x|
	Peak_dB        float64
	PeakPos        int
	Min            float64
	Max            float64
	CrestFactor    float64 // peak / RMS
	CrestFactor_dB float64
	ZeroCrossings  int
}

func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(a)
}

// Calculate computes Stats for x. An empty series yields zero values with
// -Inf for the dB fields and PeakPos -1.
func Calculate(x []float64) Stats {
	if len(x) == 0 {
		return Stats{
			PeakPos:        -1,
			RMS_dB:         math.Inf(-1),
			Peak_dB:        math.Inf(-1),
			CrestFactor_dB: math.Inf(-1),
		}
	}

	s := Stats{Length: len(x)}
	s.Mean, s.Variance = stat.PopMeanVariance(x, nil)
	s.Min = floats.Min(x)
	s.Max = floats.Max(x)
	s.RMS = math.Sqrt(floats.Dot(x, x) / float64(len(x)))

	s.Peak, s.PeakPos = math.Abs(s.Max), floats.MaxIdx(x)
	if math.Abs(s.Min) > s.Peak {
		s.Peak, s.PeakPos = math.Abs(s.Min), floats.MinIdx(x)
	}

	for i := 1; i < len(x); i++ {
		if (x[i-1] < 0 && x[i] >= 0) || (x[i-1] >= 0 && x[i] < 0) {
			s.ZeroCrossings++
		}
	}

	s.RMS_dB = ampTodB(s.RMS)
	s.Peak_dB = ampTodB(s.Peak)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
		s.CrestFactor_dB = ampTodB(s.CrestFactor)
	} else {
		s.CrestFactor_dB = math.Inf(-1)
	}
	return s
}

// RMS returns the root mean square of x, or 0 for an empty series.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(x, x) / float64(len(x)))
}

// Correlation returns the Pearson correlation of two equal-length series.
// It is NaN when either series is constant or the lengths differ.
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}
