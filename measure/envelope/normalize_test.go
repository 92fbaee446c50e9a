package envelope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafePeak(t *testing.T) {
	require.Equal(t, 1.0, SafePeak(nil))
	require.Equal(t, 1.0, SafePeak([]float64{0, 0, 0}))
	require.Equal(t, 3.0, SafePeak([]float64{1, -3, 2}))
	require.Equal(t, 0.25, SafePeak([]float64{0.25, -0.1}))
}

func TestNormalizeMatchesReferencePeak(t *testing.T) {
	ref := []float64{0.2, -0.8, 0.5}
	curve := []float64{1, 2, 4, 2}

	got := Normalize(curve, ref)
	require.InDeltaSlice(t, []float64{0.2, 0.4, 0.8, 0.4}, got, 1e-15)
	require.Equal(t, []float64{1, 2, 4, 2}, curve, "input must not be modified")
}

func TestNormalizeUsesAbsolutePeak(t *testing.T) {
	got := Normalize([]float64{-4, 1}, []float64{2})
	require.InDeltaSlice(t, []float64{-2, 0.5}, got, 1e-15)
}

func TestNormalizeIdempotent(t *testing.T) {
	ref := []float64{0.1, 0.7, -0.3}
	curve := []float64{3, -1, 5, 2}

	once := Normalize(curve, ref)
	twice := Normalize(once, ref)
	require.InDeltaSlice(t, once, twice, 1e-15)
}

func TestNormalizeDegenerate(t *testing.T) {
	zeros := make([]float64, 5)

	require.Equal(t, zeros, Normalize(zeros, []float64{0.5, -0.9}))
	// a silent reference counts as peak 1
	require.InDeltaSlice(t, []float64{1, -0.5}, Normalize([]float64{0.5, -0.25}, zeros), 1e-15)
	require.Empty(t, Normalize(nil, zeros))
}
