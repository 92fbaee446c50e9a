package biquad

// SteadyState returns, for each section of the cascade, the delay-line state
// the section holds after the cascade has settled on a constant unit input.
//
// Section k sees a constant input equal to the product of the DC gains of
// sections 0..k-1. Scaling the result by x0 and loading it with
// Chain.SetScaledState starts a pass without the step transient a zero state
// would cause.
func SteadyState(coeffs []Coefficients) [][2]float64 {
	states := make([][2]float64, len(coeffs))
	scale := 1.0

	for i := range coeffs {
		c := &coeffs[i]
		y := c.DCGain()

		// With x = 1 and y constant the DF-II-T update becomes a fixed point:
		//	d1 = B2 - A2*y
		//	d0 = B1 - A1*y + d1
		d1 := c.B2 - c.A2*y
		d0 := c.B1 - c.A1*y + d1
		states[i] = [2]float64{d0 * scale, d1 * scale}

		scale *= y
	}

	return states
}
