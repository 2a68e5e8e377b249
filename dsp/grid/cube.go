package grid

import (
	"fmt"

	"github.com/cwbudde/algo-aowind/dsp/core"
)

// Cube is a dense real 3-D array indexed (f, k, l), used for per-mode
// spectra. Sample (f, k, l) lives at Data[(f*Kx+k)*Ky+l].
type Cube struct {
	F, Kx, Ky int
	Data      []float64
}

// NewCube returns a zero-filled f x kx x ky cube.
func NewCube(f, kx, ky int) *Cube {
	if f < 0 || kx < 0 || ky < 0 {
		f, kx, ky = 0, 0, 0
	}

	return &Cube{F: f, Kx: kx, Ky: ky, Data: make([]float64, f*kx*ky)}
}

// Dims returns the spatial (kx, ky) dimensions.
func (c *Cube) Dims() (rows, cols int) { return c.Kx, c.Ky }

// At returns sample (f, k, l).
func (c *Cube) At(f, k, l int) float64 { return c.Data[(f*c.Kx+k)*c.Ky+l] }

// Set stores sample (f, k, l).
func (c *Cube) Set(f, k, l int, v float64) { c.Data[(f*c.Kx+k)*c.Ky+l] = v }

// Column copies the spectrum of mode (k, l) into dst, allocating when dst
// is too short, and returns it.
func (c *Cube) Column(k, l int, dst []float64) []float64 {
	dst = core.EnsureLen(dst, c.F)

	stride := c.Kx * c.Ky
	off := k*c.Ky + l
	for f := range dst {
		dst[f] = c.Data[f*stride+off]
	}

	return dst
}

// SetColumn stores src as the spectrum of mode (k, l).
func (c *Cube) SetColumn(k, l int, src []float64) error {
	if len(src) != c.F {
		return fmt.Errorf("%w: column length %d, want %d", ErrShapeMismatch, len(src), c.F)
	}

	stride := c.Kx * c.Ky
	off := k*c.Ky + l
	for f, v := range src {
		c.Data[f*stride+off] = v
	}

	return nil
}

// ComplexCube is a dense complex 3-D array indexed (t, k, l): one complex
// time series per spatial Fourier mode.
type ComplexCube struct {
	T, Kx, Ky int
	Data      []complex128
}

// NewComplexCube returns a zero-filled t x kx x ky cube.
func NewComplexCube(t, kx, ky int) *ComplexCube {
	if t < 0 || kx < 0 || ky < 0 {
		t, kx, ky = 0, 0, 0
	}

	return &ComplexCube{T: t, Kx: kx, Ky: ky, Data: make([]complex128, t*kx*ky)}
}

// Dims returns the spatial (kx, ky) dimensions.
func (c *ComplexCube) Dims() (rows, cols int) { return c.Kx, c.Ky }

// At returns sample (t, k, l).
func (c *ComplexCube) At(t, k, l int) complex128 { return c.Data[(t*c.Kx+k)*c.Ky+l] }

// Set stores sample (t, k, l).
func (c *ComplexCube) Set(t, k, l int, v complex128) { c.Data[(t*c.Kx+k)*c.Ky+l] = v }

// Series copies the time series of mode (k, l) into dst, allocating when
// dst is too short, and returns it.
func (c *ComplexCube) Series(k, l int, dst []complex128) []complex128 {
	dst = core.EnsureLen(dst, c.T)

	stride := c.Kx * c.Ky
	off := k*c.Ky + l
	for t := range dst {
		dst[t] = c.Data[t*stride+off]
	}

	return dst
}

// SetSeries stores src as the time series of mode (k, l).
func (c *ComplexCube) SetSeries(k, l int, src []complex128) error {
	if len(src) != c.T {
		return fmt.Errorf("%w: series length %d, want %d", ErrShapeMismatch, len(src), c.T)
	}

	stride := c.Kx * c.Ky
	off := k*c.Ky + l
	for t, v := range src {
		c.Data[t*stride+off] = v
	}

	return nil
}
