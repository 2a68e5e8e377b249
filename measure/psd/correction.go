package psd

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-aowind/dsp/filter/biquad"
	"github.com/cwbudde/algo-vecmath"
)

// LoopModel describes the adaptive-optics control loop: a zero-order-hold
// sensor and actuator, a pure delay, and a leaky integrator controller.
type LoopModel struct {
	SampleRate float64 // Hz
	Delay      float64 // seconds
	Gain       float64 // integrator gain g
	Pole       float64 // integrator pole c
}

// Validate checks the loop parameters.
func (m LoopModel) Validate() error {
	switch {
	case !(m.SampleRate > 0):
		return fmt.Errorf("%w: sample rate %v", ErrInvalidLoop, m.SampleRate)
	case m.Gain == 0 || math.IsNaN(m.Gain) || math.IsInf(m.Gain, 0):
		return fmt.Errorf("%w: gain %v", ErrInvalidLoop, m.Gain)
	case m.Delay < 0 || math.IsNaN(m.Delay):
		return fmt.Errorf("%w: delay %v", ErrInvalidLoop, m.Delay)
	}
	return nil
}

// Correction returns the closed-to-open-loop power correction at each
// frequency:
//
//	|(1 + Hhold^2 * Hdelay * C) / C|^2
//
// with s = j*2*pi*f, Hhold = (1 - e^(-Ts*s)) / (Ts*s), Hdelay = e^(-tau*s)
// and C(z) = g / (1 - c*z^-1) at z^-1 = e^(-Ts*s). The DC bin is
// evaluated at f = 1 Hz with Hhold = 1.
func (m LoopModel) Correction(freq []float64) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	ts := 1 / m.SampleRate
	ctrl := biquad.Integrator(m.Gain, m.Pole)
	out := make([]float64, len(freq))

	for i, f := range freq {
		dc := f == 0
		if dc {
			f = 1
		}
		s := complex(0, 2*math.Pi*f)

		hold := complex(1, 0)
		if !dc {
			hold = (1 - cmplx.Exp(-complex(ts, 0)*s)) / (complex(ts, 0) * s)
		}
		delay := cmplx.Exp(-complex(m.Delay, 0) * s)
		c := ctrl.Response(f, m.SampleRate)

		r := (1 + hold*hold*delay*c) / c
		out[i] = real(r)*real(r) + imag(r)*imag(r)
	}

	return out, nil
}

// ApplyCorrection multiplies every mode's spectrum by factor, which must
// have one entry per frequency bin.
func (p *Periodogram) ApplyCorrection(factor []float64) error {
	if len(factor) != p.Length {
		return fmt.Errorf("%w: %d correction factors for %d bins", ErrInvalidConfig, len(factor), p.Length)
	}

	modes := p.Data.Kx * p.Data.Ky
	if modes == 0 {
		return nil
	}
	for f, v := range factor {
		vecmath.ScaleBlockInPlace(p.Data.Data[f*modes:(f+1)*modes], v)
	}
	return nil
}
