package biquad

import "math/cmplx"

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
//
// For first-order sections (A2 == 0) the second pole is 0.
func (c *Coefficients) Poles() [2]complex128 {
	discriminant := complex(c.A1*c.A1-4*c.A2, 0)
	sq := cmplx.Sqrt(discriminant)
	return [2]complex128{
		(-complex(c.A1, 0) + sq) / 2,
		(-complex(c.A1, 0) - sq) / 2,
	}
}

// Stable reports whether every pole of the section lies strictly inside the
// unit circle.
func (c *Coefficients) Stable() bool {
	for _, p := range c.Poles() {
		if cmplx.Abs(p) >= 1 {
			return false
		}
	}
	return true
}
