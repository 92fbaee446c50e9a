// Package hilbert computes the analytic signal of a finite real sequence and
// its magnitude, the instantaneous amplitude envelope.
//
// The transform works on the whole sequence at once: the length-n DFT is
// taken, negative-frequency bins are zeroed, positive-frequency bins doubled,
// and the result transformed back. DC and, for even n, the Nyquist bin are
// kept as is, so the real part of the analytic signal equals the input.
//
// Power-of-two lengths run on an algo-fft plan; other lengths use gonum's
// mixed-radix complex FFT so no zero padding alters the result.
package hilbert
