// Package frequency computes statistics of two-sided power spectra stored
// in DC-centered order.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds frequency-domain statistics computed from a power spectrum.
type Stats struct {
	BinCount int
	Total    float64 // sum of power
	Max      float64
	MaxBin   int
	MaxFreq  float64
	Centroid float64 // power-weighted mean frequency
	Spread   float64 // power-weighted standard deviation around the centroid
	Flatness float64 // spectral flatness (Wiener entropy), 0..1
}

// Calculate computes all statistics of power sampled at freqs. Both slices
// must have the same length; negative power is treated as zero.
func Calculate(power, freqs []float64) Stats {
	n := len(power)
	s := Stats{BinCount: n, MaxBin: -1}
	if n == 0 || len(freqs) != n {
		return s
	}

	for i, v := range power {
		if v > 0 {
			s.Total += v
		}
		if s.MaxBin < 0 || v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
	}
	s.MaxFreq = freqs[s.MaxBin]
	s.Centroid = centroid(power, freqs, s.Total)
	s.Spread = spread(power, freqs, s.Centroid, s.Total)
	s.Flatness = Flatness(power)

	return s
}

// Centroid returns the power-weighted mean frequency.
//
//	centroid = sum(f_i * P_i) / sum(P_i)
func Centroid(power, freqs []float64) float64 {
	if len(power) == 0 || len(freqs) != len(power) {
		return 0
	}
	total := 0.0
	for _, v := range power {
		if v > 0 {
			total += v
		}
	}
	return centroid(power, freqs, total)
}

func centroid(power, freqs []float64, total float64) float64 {
	if total == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range power {
		if v > 0 {
			weighted += freqs[i] * v
		}
	}
	return weighted / total
}

func spread(power, freqs []float64, cent, total float64) float64 {
	if total == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range power {
		if v > 0 {
			d := freqs[i] - cent
			weighted += d * d * v
		}
	}
	return math.Sqrt(weighted / total)
}

// Flatness returns exp(mean(log P_i)) / mean(P_i) over the bins with
// positive power. If no bin is positive, 0 is returned.
func Flatness(power []float64) float64 {
	logSum := 0.0
	positive := make([]float64, 0, len(power))
	for _, v := range power {
		if v > 0 {
			logSum += math.Log(v)
			positive = append(positive, v)
		}
	}
	if len(positive) == 0 {
		return 0
	}

	n := float64(len(positive))
	mean := vecmath.Sum(positive) / n
	return math.Exp(logSum/n) / mean
}
