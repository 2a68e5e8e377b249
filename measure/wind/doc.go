// Package wind defines the shared contract of the turbulence wind
// estimators: the Estimator lifecycle, the telemetry it consumes, the
// results it produces, and the error taxonomy.
//
// Two estimators implement the contract:
//
//   - gaussnewton registers consecutive phase frames and tracks a single
//     dominant wind vector.
//   - fmts decomposes the temporal power spectrum of every spatial Fourier
//     mode into single-pole peaks, one per turbulence layer.
//
// Fatal errors (ErrShapeMismatch, ErrSingularSystem, ErrNotReady) are
// returned to the caller. Per-mode fit failures (ErrFitRejected,
// ErrNonConvergence) only end that mode's peak search and show up as
// shorter layer lists.
package wind
