package core

// EnsureLen returns a slice of length n, reusing buf's capacity if
// possible. Reused elements keep their old values.
func EnsureLen[T any](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Zero sets all values in buf to the zero value.
func Zero[T any](buf []T) {
	var z T
	for i := range buf {
		buf[i] = z
	}
}
