// Package pass designs Butterworth pass filters as cascades of biquad
// sections consumable by dsp/filter/biquad.
//
// Low-pass cascades use the RBJ cookbook sections with Butterworth Q values,
// which equals the bilinear transform of the analog prototype with the cutoff
// prewarped. Band-pass cascades go through the analog pole/zero form: the
// order-N prototype is shifted to the band with the low-pass to band-pass
// substitution, mapped with the prewarped bilinear transform and paired into
// N second-order sections (filter order 2N).
package pass
