package psd

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-aowind/dsp/window"
)

// Errors returned by the spectral pipeline.
var (
	ErrInvalidLength = errors.New("psd: periodogram length must be a power of two >= 4")
	ErrTooShort      = errors.New("psd: time series shorter than one segment")
	ErrInvalidLoop   = errors.New("psd: invalid loop model")
	ErrInvalidConfig = errors.New("psd: invalid configuration")
)

// Config describes the periodogram.
type Config struct {
	// Length is the segment and FFT length L.
	Length int
	// SampleRate is the time-series sample rate in Hz.
	SampleRate float64
	// Overlap selects half-overlapping segments (stride L/2) instead of
	// back-to-back segments (stride L).
	Overlap bool
	// Window is the segment taper. Ignored when Coeffs is set.
	Window window.Type
	// Coeffs optionally supplies explicit window samples of length L.
	Coeffs []float64
}

// DefaultConfig returns a 64-bin, half-overlap, Blackman-windowed
// periodogram at unit sample rate.
func DefaultConfig() Config {
	return Config{
		Length:     64,
		SampleRate: 1,
		Overlap:    true,
		Window:     window.TypeBlackman,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Length < 4 || c.Length&(c.Length-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, c.Length)
	}
	if !(c.SampleRate > 0) {
		return fmt.Errorf("%w: sample rate %v", ErrInvalidConfig, c.SampleRate)
	}
	if c.Coeffs != nil && len(c.Coeffs) != c.Length {
		return fmt.Errorf("%w: %d window coefficients for length %d", ErrInvalidConfig, len(c.Coeffs), c.Length)
	}
	return nil
}

// Segments returns the segment count and stride for a series of n samples.
// Partial trailing samples are discarded.
func (c Config) Segments(n int) (count, stride int) {
	if c.Overlap {
		stride = c.Length / 2
		count = n/stride - 1
	} else {
		stride = c.Length
		count = n / stride
	}
	return max(count, 0), stride
}

// WindowCoeffs returns the window samples used for each segment. The
// default cosine windows are generated in symmetric form.
func (c Config) WindowCoeffs() []float64 {
	if c.Coeffs != nil {
		return append([]float64(nil), c.Coeffs...)
	}
	return window.Generate(c.Window, c.Length)
}
