// Package synth generates deterministic telemetry for tests and the
// windest demo: AR(1) Fourier-mode series, closed-loop residuals, and
// phase frames advected by a known wind.
package synth

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/cwbudde/algo-aowind/dsp/filter/biquad"
	"github.com/cwbudde/algo-aowind/dsp/grid"
)

// Layer is one frozen-flow component of a mode's time series: a complex
// AR(1) process x[t] = Alpha*e^(j*Omega)*x[t-1] + Sigma*n[t].
type Layer struct {
	Alpha float64
	Omega float64 // radians per sample
	Sigma float64
}

// Modes returns a t x kx x ky cube whose every mode is the sum of the given
// layers, driven by unit complex Gaussian noise from seed.
func Modes(seed int64, t, kx, ky int, layers ...Layer) *grid.ComplexCube {
	rng := rand.New(rand.NewSource(seed))
	return generate(t, kx, ky, layers, func(_ int, ly Layer) complex128 {
		return complex(rng.NormFloat64(), rng.NormFloat64()) * complex(ly.Sigma/math.Sqrt2, 0)
	})
}

// ImpulseModes returns a t x kx x ky cube whose every mode is the sum of the
// layers' impulse responses: each process is driven by Sigma at t=0 and by
// zero afterwards, so its spectrum over t samples is exactly single-pole
// once Alpha^t is negligible.
func ImpulseModes(t, kx, ky int, layers ...Layer) *grid.ComplexCube {
	return generate(t, kx, ky, layers, func(n int, ly Layer) complex128 {
		if n == 0 {
			return complex(ly.Sigma, 0)
		}
		return 0
	})
}

func generate(t, kx, ky int, layers []Layer, drive func(n int, ly Layer) complex128) *grid.ComplexCube {
	cube := grid.NewComplexCube(t, kx, ky)

	poles := make([]complex128, len(layers))
	for i, ly := range layers {
		poles[i] = complex(ly.Alpha, 0) * cmplx.Exp(complex(0, ly.Omega))
	}

	state := make([]complex128, len(layers))
	for k := 0; k < kx; k++ {
		for l := 0; l < ky; l++ {
			for i := range state {
				state[i] = 0
			}
			for n := 0; n < t; n++ {
				var v complex128
				for i, ly := range layers {
					state[i] = poles[i]*state[i] + drive(n, ly)
					v += state[i]
				}
				cube.Set(n, k, l, v)
			}
		}
	}

	return cube
}

// CloseLoop replaces every open-loop series in cube by the residual of a
// leaky-integrator loop with the given gain, pole and frame delay:
//
//	r[t] = x[t] - u[t-1-delay],  u[t] = gain*r[t] + pole*u[t-1]
//
// The real and imaginary channels run through independent controllers.
func CloseLoop(cube *grid.ComplexCube, gain, pole float64, delay int) {
	coeffs := biquad.Integrator(gain, pole)
	series := make([]complex128, cube.T)
	hist := make([]complex128, cube.T)

	for k := 0; k < cube.Kx; k++ {
		for l := 0; l < cube.Ky; l++ {
			re, im := biquad.NewSection(coeffs), biquad.NewSection(coeffs)
			series = cube.Series(k, l, series)

			for t, x := range series {
				var cmd complex128
				if j := t - 1 - delay; j >= 0 {
					cmd = hist[j]
				}
				r := x - cmd
				hist[t] = complex(re.ProcessSample(real(r)), im.ProcessSample(imag(r)))
				cube.Set(t, k, l, r)
			}
		}
	}
}

// Surface is a smooth test phase screen.
type Surface func(r, c float64) float64

// Wavy returns a fixed sum of plane waves with spatial frequencies below
// 0.5 rad/sample. Its gradient direction varies across any pupil wider
// than about ten samples, so both shift components are observable.
func Wavy() Surface {
	return func(r, c float64) float64 {
		return math.Sin(0.42*r+0.17*c) +
			0.8*math.Cos(0.13*r-0.39*c+0.5) +
			0.5*math.Sin(0.31*r+0.29*c+1.3)
	}
}

// Frames samples s on a rows x cols grid n times, advecting it by
// (vy, vx) samples per frame: frame t holds s(r - t*vy, c - t*vx).
func Frames(s Surface, rows, cols, n int, vy, vx float64) []*grid.Grid {
	out := make([]*grid.Grid, n)
	for t := range out {
		g := grid.New(rows, cols)
		dy, dx := float64(t)*vy, float64(t)*vx
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.Set(r, c, s(float64(r)-dy, float64(c)-dx))
			}
		}
		out[t] = g
	}
	return out
}

// Pupil returns a circular full mask of the given radius centered on a
// size x size grid, and the inner mask obtained by eroding it erode times
// with a 4-neighbour structuring element.
func Pupil(size int, radius float64, erode int) (full, inner *grid.Mask) {
	full = grid.NewMask(size, size)
	mid := float64(size-1) / 2
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			full.Set(r, c, math.Hypot(float64(r)-mid, float64(c)-mid) <= radius)
		}
	}

	inner = full
	for i := 0; i < erode; i++ {
		inner = Erode(inner)
	}
	if inner == full {
		inner = &grid.Mask{Rows: full.Rows, Cols: full.Cols, Data: append([]bool(nil), full.Data...)}
	}
	return full, inner
}

// Erode drops every valid sample with an invalid or out-of-grid
// 4-neighbour.
func Erode(m *grid.Mask) *grid.Mask {
	out := grid.NewMask(m.Rows, m.Cols)
	valid := func(r, c int) bool {
		return r >= 0 && r < m.Rows && c >= 0 && c < m.Cols && m.At(r, c)
	}
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			out.Set(r, c, valid(r, c) && valid(r-1, c) && valid(r+1, c) && valid(r, c-1) && valid(r, c+1))
		}
	}
	return out
}
