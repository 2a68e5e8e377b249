package psd

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-aowind/dsp/core"
	"github.com/cwbudde/algo-aowind/dsp/grid"
	"github.com/cwbudde/algo-aowind/dsp/spectrum"
	"github.com/cwbudde/algo-aowind/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Periodogram holds per-mode temporal power spectra in DC-centered order:
// index i of every column corresponds to Freq[i] = (i - L/2) * rate / L.
type Periodogram struct {
	Length     int
	SampleRate float64
	Freq       []float64
	Data       *grid.Cube
}

// Column copies the spectrum of mode (k, l) into dst and returns it.
func (p *Periodogram) Column(k, l int, dst []float64) []float64 {
	return p.Data.Column(k, l, dst)
}

// Omega returns the frequency axis in radians per sample.
func (p *Periodogram) Omega() []float64 {
	return OmegaAxis(p.Freq, p.SampleRate)
}

// RemoveTemporalMean subtracts each mode's time average in place.
func RemoveTemporalMean(cube *grid.ComplexCube) {
	if cube == nil || cube.T == 0 {
		return
	}

	modes := cube.Kx * cube.Ky
	mean := make([]complex128, modes)
	for t := 0; t < cube.T; t++ {
		slab := cube.Data[t*modes : (t+1)*modes]
		for i, v := range slab {
			mean[i] += v
		}
	}

	scale := complex(1/float64(cube.T), 0)
	for i := range mean {
		mean[i] *= scale
	}

	for t := 0; t < cube.T; t++ {
		slab := cube.Data[t*modes : (t+1)*modes]
		for i := range slab {
			slab[i] -= mean[i]
		}
	}
}

// Compute returns the Welch periodogram of every mode of cube. Each
// segment is windowed and transformed; the squared magnitudes are summed,
// divided by the segment count, the window power sum(w^2) and L, and
// multiplied by the mode's entry in comp. A nil comp means all ones.
func Compute(cube *grid.ComplexCube, comp *grid.Grid, cfg Config) (*Periodogram, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cube == nil {
		return nil, fmt.Errorf("%w: nil mode cube", ErrTooShort)
	}
	if comp != nil {
		if err := grid.SameShape(cube, comp); err != nil {
			return nil, fmt.Errorf("psd: compensation grid: %w", err)
		}
	}

	l := cfg.Length
	nseg, stride := cfg.Segments(cube.T)
	if nseg < 1 {
		return nil, fmt.Errorf("%w: %d samples, segment length %d", ErrTooShort, cube.T, l)
	}

	w := cfg.WindowCoeffs()
	norm := float64(nseg) * window.SumSquares(w) * float64(l)
	if norm == 0 {
		return nil, fmt.Errorf("%w: window has zero power", ErrInvalidConfig)
	}

	plan, err := algofft.NewPlan64(l)
	if err != nil {
		return nil, fmt.Errorf("psd: failed to create FFT plan: %w", err)
	}

	out := &Periodogram{
		Length:     l,
		SampleRate: cfg.SampleRate,
		Freq:       spectrum.FrequencyAxis(l, cfg.SampleRate),
		Data:       grid.NewCube(l, cube.Kx, cube.Ky),
	}

	series := make([]complex128, cube.T)
	buf := make([]complex128, l)
	acc := make([]float64, l)
	shifted := make([]float64, l)

	for k := 0; k < cube.Kx; k++ {
		for m := 0; m < cube.Ky; m++ {
			series = cube.Series(k, m, series)
			core.Zero(acc)

			for s := 0; s < nseg; s++ {
				seg := series[s*stride : s*stride+l]
				for i, v := range seg {
					buf[i] = v * complex(w[i], 0)
				}
				if err := plan.Forward(buf, buf); err != nil {
					return nil, fmt.Errorf("psd: forward FFT failed: %w", err)
				}
				spectrum.AccumulatePower(acc, buf)
			}

			scale := 1 / norm
			if comp != nil {
				scale *= comp.At(k, m)
			}
			spectrum.Shift(shifted, acc)
			vecmath.ScaleBlockInPlace(shifted, scale)
			if err := out.Data.SetColumn(k, m, shifted); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// OmegaAxis maps frequencies in Hz to radians per sample.
func OmegaAxis(freq []float64, rate float64) []float64 {
	out := make([]float64, len(freq))
	for i, f := range freq {
		out[i] = 2 * math.Pi * f / rate
	}
	return out
}
