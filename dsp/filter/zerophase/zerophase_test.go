package zerophase

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-envelope/dsp/filter/biquad"
	"github.com/cwbudde/algo-envelope/dsp/filter/design/pass"
	"github.com/cwbudde/algo-envelope/internal/testutil"
)

func TestPadLength(t *testing.T) {
	cases := []struct {
		n    int
		sr   float64
		want int
	}{
		{n: 0, sr: 1000, want: 1},
		{n: 1, sr: 1000, want: 1},
		{n: 2, sr: 1000, want: 1},
		{n: 100, sr: 1000, want: 99},
		{n: 10000, sr: 1000, want: 250},
		{n: 10000, sr: 44100, want: 9999},
		{n: 10, sr: 2, want: 0},
	}
	for _, tc := range cases {
		if got := PadLength(tc.n, tc.sr); got != tc.want {
			t.Fatalf("PadLength(%d, %v) = %d, want %d", tc.n, tc.sr, got, tc.want)
		}
	}
}

func TestOddExtend(t *testing.T) {
	got := OddExtend([]float64{1, 2, 4, 7}, 2)
	want := []float64{-2, 0, 1, 2, 4, 7, 10, 12}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestFilterPreservesLength(t *testing.T) {
	coeffs := pass.ButterworthLP(8, 4, 1000)
	for _, n := range []int{1, 2, 3, 50, 1000} {
		x := testutil.DeterministicNoise(int64(n), 1, n)
		y, err := Filter(coeffs, x, PadLength(n, 1000))
		if err != nil {
			t.Fatalf("n=%d: Filter() error = %v", n, err)
		}
		if len(y) != n {
			t.Fatalf("n=%d: len=%d", n, len(y))
		}
		testutil.RequireFinite(t, y)
	}
}

func TestFilterEmpty(t *testing.T) {
	y, err := Filter(pass.ButterworthLP(8, 4, 1000), nil, 1)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if len(y) != 0 {
		t.Fatalf("len=%d, want 0", len(y))
	}
}

func TestFilterNegativePad(t *testing.T) {
	_, err := Filter(pass.ButterworthLP(8, 4, 1000), []float64{1, 2, 3}, -1)
	if !errors.Is(err, ErrNegativePad) {
		t.Fatalf("err=%v, want ErrNegativePad", err)
	}
}

func TestFilterConstantPassesLowpass(t *testing.T) {
	x := testutil.DC(0.6, 2000)
	y, err := Filter(pass.ButterworthLP(1, 4, 1000), x, PadLength(len(x), 1000))
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, y, x, 1e-9)
}

func TestFilterConstantBlockedByBandpass(t *testing.T) {
	coeffs, err := pass.ButterworthBP(4, 8, 4, 1000)
	if err != nil {
		t.Fatal(err)
	}
	x := testutil.DC(0.6, 2000)
	y, err := Filter(coeffs, x, PadLength(len(x), 1000))
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, y, make([]float64, len(x)), 1e-9)
}

func TestFilterKeepsPeakLocation(t *testing.T) {
	const (
		n      = 2001
		center = 1000
		sr     = 1000.0
	)
	x := testutil.GaussianPulse(n, center, 50)
	coeffs := pass.ButterworthLP(8, 4, sr)

	y, err := Filter(coeffs, x, PadLength(n, sr))
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if got := testutil.PeakIndex(y); math.Abs(float64(got-center)) > 1 {
		t.Fatalf("zero-phase peak at %d, want %d±1", got, center)
	}

	// A single causal pass delays the same pulse by tens of samples.
	causal := append([]float64(nil), x...)
	biquad.NewChain(coeffs).ProcessBlock(causal)
	if got := testutil.PeakIndex(causal); got-center < 10 {
		t.Fatalf("causal peak at %d, expected a visible delay past %d", got, center)
	}
}

func TestFilterIsLinear(t *testing.T) {
	coeffs, err := pass.ButterworthBP(20, 50, 4, 1000)
	if err != nil {
		t.Fatal(err)
	}
	a := testutil.DeterministicNoise(1, 1, 800)
	b := testutil.DeterministicNoise(2, 1, 800)
	sum := make([]float64, len(a))
	for i := range a {
		sum[i] = a[i] + 2*b[i]
	}

	pad := PadLength(len(a), 1000)
	ya, _ := Filter(coeffs, a, pad)
	yb, _ := Filter(coeffs, b, pad)
	ys, err := Filter(coeffs, sum, pad)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	for i := range ys {
		if math.Abs(ys[i]-(ya[i]+2*yb[i])) > 1e-9 {
			t.Fatalf("index %d: superposition violated: %v vs %v", i, ys[i], ya[i]+2*yb[i])
		}
	}
}
