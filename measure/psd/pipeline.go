package psd

import (
	"fmt"

	"github.com/cwbudde/algo-aowind/dsp/grid"
	"github.com/cwbudde/algo-aowind/dsp/window"
	"github.com/go-logr/logr"
)

// Pipeline runs the spectral stages in order: mean removal, periodogram,
// loop correction and noise split.
type Pipeline struct {
	Config Config
	// Loop is the closed-loop model. Nil skips the correction, for
	// open-loop telemetry.
	Loop   *LoopModel
	Logger logr.Logger
}

// Run processes a copy of cube; the input is not modified.
func (p Pipeline) Run(cube *grid.ComplexCube, comp *grid.Grid) (*Periodogram, *NoiseFloor, error) {
	log := p.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	if cube == nil {
		return nil, nil, fmt.Errorf("%w: nil mode cube", ErrTooShort)
	}

	work := &grid.ComplexCube{T: cube.T, Kx: cube.Kx, Ky: cube.Ky, Data: append([]complex128(nil), cube.Data...)}
	RemoveTemporalMean(work)

	per, err := Compute(work, comp, p.Config)
	if err != nil {
		return nil, nil, err
	}
	if log.V(1).Enabled() {
		nseg, _ := p.Config.Segments(cube.T)
		enbw, _ := window.EquivalentNoiseBandwidth(p.Config.WindowCoeffs())
		log.V(1).Info("periodogram computed", "length", per.Length, "segments", nseg, "modes", cube.Kx*cube.Ky, "enbwBins", enbw)
	}

	if p.Loop != nil {
		factor, err := p.Loop.Correction(per.Freq)
		if err != nil {
			return nil, nil, err
		}
		if err := per.ApplyCorrection(factor); err != nil {
			return nil, nil, err
		}
		log.V(1).Info("loop correction applied", "gain", p.Loop.Gain, "pole", p.Loop.Pole, "delay", p.Loop.Delay)
	}

	nf := per.SplitNoise()
	log.V(1).Info("noise split", "zeroed", nf.Zeroed, "of", per.Length*cube.Kx*cube.Ky)

	return per, nf, nil
}
