package biquad

import (
	"math"
	"testing"
)

// twoSectionCoeffs returns two biquad sections for a 4th-order-like cascade.
func twoSectionCoeffs() []Coefficients {
	return []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	}
}

func TestNewChain(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	if c.NumSections() != 2 {
		t.Fatalf("NumSections: got %d, want 2", c.NumSections())
	}

	if c.Order() != 4 {
		t.Fatalf("Order: got %d, want 4", c.Order())
	}

	if c.Gain() != 1 {
		t.Fatalf("default gain: got %v, want 1", c.Gain())
	}
}

func TestNewChain_WithGain(t *testing.T) {
	c := NewChain(twoSectionCoeffs(), WithGain(0.5))
	if c.Gain() != 0.5 {
		t.Fatalf("gain: got %v, want 0.5", c.Gain())
	}
}

func TestChainProcessBlockMatchesSample(t *testing.T) {
	coeffs := twoSectionCoeffs()
	a := NewChain(coeffs, WithGain(2))
	b := NewChain(coeffs, WithGain(2))

	buf := []float64{1, 0, -1, 0.5, 0.25, 0, 0, 0}
	want := make([]float64, len(buf))
	for i, x := range buf {
		want[i] = a.ProcessSample(x)
	}
	b.ProcessBlock(buf)

	for i := range buf {
		if !almostEqual(buf[i], want[i], eps) {
			t.Fatalf("index %d: block=%v sample=%v", i, buf[i], want[i])
		}
	}
}

func TestChainStateRoundTrip(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	c.ProcessBlock([]float64{1, 0.5, -0.25})
	saved := c.State()

	c.Reset()
	for i, st := range c.State() {
		if st != [2]float64{} {
			t.Fatalf("section %d not reset: %v", i, st)
		}
	}

	c.SetState(saved)
	for i, st := range c.State() {
		if st != saved[i] {
			t.Fatalf("section %d state %v, want %v", i, st, saved[i])
		}
	}
}

func TestSteadyStateHoldsConstantInput(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewChain(coeffs)

	const x0 = 0.75
	c.SetScaledState(SteadyState(coeffs), x0)

	want := x0
	for i := range coeffs {
		want *= coeffs[i].DCGain()
	}

	buf := []float64{x0, x0, x0, x0, x0, x0}
	c.ProcessBlock(buf)
	for i, y := range buf {
		if !almostEqual(y, want, 1e-12) {
			t.Fatalf("sample %d: got %v, want steady %v", i, y, want)
		}
	}
}

func TestSteadyStateZeroDCGainSilencesLaterSections(t *testing.T) {
	// A section with zeros at DC blocks the constant input for everything after it.
	coeffs := []Coefficients{
		{B0: 0.5, B1: 0, B2: -0.5, A1: -0.3, A2: 0.2},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	}
	states := SteadyState(coeffs)
	if states[1] != [2]float64{} {
		t.Fatalf("second section state = %v, want zero", states[1])
	}
}

func TestChainResponseMatchesImpulse(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	ir := c.ImpulseResponse(256)

	// Sum of the impulse response equals the DC response.
	sum := 0.0
	for _, v := range ir {
		sum += v
	}
	dc := real(c.Response(0, 48000))
	if math.Abs(sum-dc) > 1e-9 {
		t.Fatalf("impulse sum %v, DC response %v", sum, dc)
	}

	if db := c.MagnitudeDB(0, 48000); math.Abs(db-20*math.Log10(dc)) > 1e-9 {
		t.Fatalf("MagnitudeDB(0) = %v, want %v", db, 20*math.Log10(dc))
	}
}
