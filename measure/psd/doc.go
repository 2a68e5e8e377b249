// Package psd turns per-mode complex time series into corrected temporal
// power spectra.
//
// The stages run in strict order, but each is exported so it can be
// invoked on its own for diagnostics:
//
//  1. [RemoveTemporalMean] removes each mode's mean.
//  2. [Compute] builds a Welch periodogram per mode, scaled by a per-mode
//     compensation grid and stored in DC-centered order.
//  3. [LoopModel.Correction] and [Periodogram.ApplyCorrection] convert the
//     closed-loop spectrum to an open-loop phase spectrum.
//  4. [Periodogram.SplitNoise] estimates each mode's noise floor near
//     Nyquist and zeroes samples at or below it.
//
// [NewTemplate] computes the spectral shape of a single windowed tone. Its
// correlators locate peaks in residual spectra by circular correlation.
// [Pipeline] runs stages 1 to 4.
package psd
