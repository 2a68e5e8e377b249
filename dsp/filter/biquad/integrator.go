package biquad

// Integrator returns the first-order leaky integrator
//
//	C(z) = gain / (1 - pole*z^-1)
//
// as a biquad with B1 = B2 = A2 = 0. pole = 1 gives a pure integrator.
func Integrator(gain, pole float64) Coefficients {
	return Coefficients{B0: gain, A1: -pole}
}
