// Package biquad provides second-order IIR sections and their frequency
// responses.
//
// A [Section] implements Direct Form II Transposed processing for a single
// section defined by [Coefficients]. The wind estimators use it to model
// the adaptive-optics controller: [Integrator] builds the leaky integrator
// g/(1 - c z^-1) that drives the deformable mirror.
package biquad
