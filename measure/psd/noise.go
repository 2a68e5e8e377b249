package psd

import (
	"math"

	"github.com/cwbudde/algo-aowind/dsp/grid"
	frequencystats "github.com/cwbudde/algo-aowind/stats/frequency"
)

// NoiseFloor holds the per-mode noise statistics found by SplitNoise.
type NoiseFloor struct {
	Median *grid.Grid
	Std    *grid.Grid
	// Zeroed counts the spectrum samples at or below the threshold.
	Zeroed int
}

// Threshold returns the zeroing threshold median + 2*std of mode (k, l).
func (n *NoiseFloor) Threshold(k, l int) float64 {
	return n.Median.At(k, l) + 2*n.Std.At(k, l)
}

// NoiseBand returns the DC-centered bin indices used for the noise floor:
// L/8 bins centered on the Nyquist bin.
func (p *Periodogram) NoiseBand() []int {
	return frequencystats.NyquistBand(p.Length, p.Length/8)
}

// SplitNoise estimates each mode's noise floor as the median and
// population standard deviation over NoiseBand, then zeroes every sample
// of that mode at or below median + 2*std. NaN statistics count as zero.
func (p *Periodogram) SplitNoise() *NoiseFloor {
	kx, ky := p.Data.Kx, p.Data.Ky
	nf := &NoiseFloor{Median: grid.New(kx, ky), Std: grid.New(kx, ky)}
	band := p.NoiseBand()
	col := make([]float64, p.Length)

	for k := 0; k < kx; k++ {
		for l := 0; l < ky; l++ {
			col = p.Data.Column(k, l, col)
			med, std := frequencystats.BandStats(col, band)
			if math.IsNaN(med) {
				med = 0
			}
			if math.IsNaN(std) {
				std = 0
			}
			nf.Median.Set(k, l, med)
			nf.Std.Set(k, l, std)

			thr := med + 2*std
			for i, v := range col {
				if v <= thr || math.IsNaN(v) {
					p.Data.Set(i, k, l, 0)
					nf.Zeroed++
				}
			}
		}
	}

	return nf
}
