package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestGaussianPulseSymmetric(t *testing.T) {
	p := GaussianPulse(101, 50, 8)
	if PeakIndex(p) != 50 {
		t.Fatalf("peak at %d, want 50", PeakIndex(p))
	}
	for i := 0; i < 50; i++ {
		if math.Abs(p[50-i]-p[50+i]) > 1e-15 {
			t.Fatalf("asymmetric at offset %d", i)
		}
	}
}

func TestDC(t *testing.T) {
	for i, v := range DC(0.5, 4) {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestPeakIndexEmpty(t *testing.T) {
	if PeakIndex(nil) != -1 {
		t.Fatal("PeakIndex(nil) should be -1")
	}
}
