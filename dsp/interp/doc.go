// Package interp provides fractional interpolation primitives and
// sub-sample 2-D translation.
//
// Available 1-D kernels:
//
//   - 2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite (Catmull-Rom), exact on quadratics
//
// [Shift2D] applies them separably to translate a grid by a fractional
// offset, with the boundary rule chosen by [Boundary].
package interp
