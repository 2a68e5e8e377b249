package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-aowind/dsp/grid"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NoiseGrid returns a rows x cols grid of DeterministicNoise.
func NoiseGrid(seed int64, amplitude float64, rows, cols int) *grid.Grid {
	g := grid.New(rows, cols)
	copy(g.Data, DeterministicNoise(seed, amplitude, rows*cols))
	return g
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
