package frequency

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// NyquistBand returns the indices of width bins centered on the Nyquist
// bin of an n-bin DC-centered spectrum. In that order Nyquist sits at
// index 0, so the band wraps: it covers [n-width/2, n) and [0, width-width/2).
// width is clamped to [1, n].
func NyquistBand(n, width int) []int {
	if n <= 0 {
		return nil
	}
	width = max(1, min(width, n))

	out := make([]int, width)
	start := -(width / 2)
	for i := range out {
		out[i] = ((start+i)%n + n) % n
	}
	return out
}

// Median returns the median of values, averaging the two middle samples
// for even lengths. values is not modified. NaN samples count as zero.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	for i, v := range values {
		if !math.IsNaN(v) {
			sorted[i] = v
		}
	}
	sort.Float64s(sorted)

	m := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[m]
	}
	return 0.5 * (sorted[m-1] + sorted[m])
}

// BandStats returns the median and population standard deviation of
// column over the given indices. NaN samples count as zero.
func BandStats(column []float64, band []int) (median, std float64) {
	if len(band) == 0 {
		return 0, 0
	}

	vals := make([]float64, len(band))
	for i, idx := range band {
		if v := column[idx]; !math.IsNaN(v) {
			vals[i] = v
		}
	}

	_, std = stat.PopMeanStdDev(vals, nil)
	return Median(vals), std
}
