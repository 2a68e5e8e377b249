// Package grid provides dense row-major containers for wavefront data.
//
// [Grid] holds a single real-valued phase frame, [Mask] an aperture support
// region, [Cube] a real spectral cube and [ComplexCube] a time series of
// complex spatial Fourier modes. All containers are flat slices with explicit
// dimensions so they can be handed to vector kernels without copying.
//
// Shape checks fail with [ErrShapeMismatch]; nothing in this package
// broadcasts silently.
package grid
