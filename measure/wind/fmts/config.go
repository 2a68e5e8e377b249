package fmts

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("fmts: invalid fitting config")

// Config controls the per-mode peak search. Frequencies are in radians
// per sample.
type Config struct {
	// SearchRadius bounds the bins used to fit a candidate peak.
	SearchRadius float64
	// MaskRadius is the neighbourhood of an accepted peak excluded from
	// later searches.
	MaskRadius float64
	// InitialAlpha is the starting pole magnitude of every fit.
	InitialAlpha float64
	// MinAlpha and MaxAlpha bound accepted pole magnitudes.
	MinAlpha, MaxAlpha float64
	// FloatPeak lets the fit move the peak center away from the
	// correlation estimate.
	FloatPeak bool
	// MaxLayers caps the records returned per mode.
	MaxLayers int
}

// DefaultConfig returns the default fitting configuration.
func DefaultConfig() Config {
	return Config{
		SearchRadius: 0.25,
		MaskRadius:   0.25,
		InitialAlpha: 0.9,
		MinAlpha:     0,
		MaxAlpha:     1,
		FloatPeak:    false,
		MaxLayers:    6,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	switch {
	case !(c.SearchRadius > 0):
		return fmt.Errorf("%w: search radius %v", ErrInvalidConfig, c.SearchRadius)
	case !(c.MaskRadius > 0):
		return fmt.Errorf("%w: mask radius %v", ErrInvalidConfig, c.MaskRadius)
	case !(c.MinAlpha >= 0 && c.MinAlpha < c.MaxAlpha && c.MaxAlpha <= 1):
		return fmt.Errorf("%w: alpha range [%v, %v]", ErrInvalidConfig, c.MinAlpha, c.MaxAlpha)
	case !(c.InitialAlpha >= 0 && c.InitialAlpha < 1):
		return fmt.Errorf("%w: initial alpha %v", ErrInvalidConfig, c.InitialAlpha)
	case c.MaxLayers < 1:
		return fmt.Errorf("%w: max layers %d", ErrInvalidConfig, c.MaxLayers)
	}
	return nil
}
