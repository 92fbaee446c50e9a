// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters such as the Butterworth
// designs in dsp/filter/design/pass.
//
// [SteadyState] computes the per-section delay-line state reached after a
// unit step, which zero-phase filtering uses as initial conditions.
package biquad
