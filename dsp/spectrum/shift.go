package spectrum

// Shift reorders natural FFT bins into DC-centered order: natural bin k
// lands at index (k + n/2) mod n, so index n/2 holds DC. dst and src must
// have the same length and must not alias.
func Shift[T any](dst, src []T) {
	n := len(src)
	h := n / 2
	for k, v := range src {
		dst[(k+h)%n] = v
	}
}

// Unshift is the inverse of Shift.
func Unshift[T any](dst, src []T) {
	n := len(src)
	h := n / 2
	for i, v := range src {
		dst[(i-h+n)%n] = v
	}
}

// FrequencyAxis returns the frequencies of n DC-centered bins at the given
// sample rate: index i holds (i - n/2) * rate / n.
func FrequencyAxis(n int, rate float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	h := n / 2
	for i := range out {
		out[i] = float64(i-h) * rate / float64(n)
	}
	return out
}
