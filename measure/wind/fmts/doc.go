// Package fmts implements the Fourier-mode time-series wind estimator.
//
// Each spatial Fourier mode of the wavefront is tracked as a complex time
// series. A turbulence layer moving across the aperture shows up in every
// mode's temporal power spectrum as a peak whose center frequency is
// proportional to the layer velocity projected on the mode's spatial
// frequency. The estimator extracts those peaks one at a time by fitting
// the single-pole model
//
//	S(w) = variance / (1 - 2*alpha*cos(w - center) + alpha^2)
//
// to the residual spectrum, subtracting the accepted model and masking its
// neighbourhood before searching again. Modes are independent and are
// processed by a pool of workers.
//
// Mapping peak frequencies to layer velocities is left to the caller.
package fmts
