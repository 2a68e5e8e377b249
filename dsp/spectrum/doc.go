// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package does not implement FFT itself. It operates on complex bins
// produced by an FFT backend and provides power extraction, accumulation,
// and conversion between natural (DC-first) and shifted (DC-centered) bin
// order.
package spectrum
