package wind

import (
	"fmt"

	"github.com/cwbudde/algo-aowind/dsp/grid"
)

// Aperture pairs the full pupil mask with its edge-trimmed inner mask.
// The masks are referenced, not copied.
type Aperture struct {
	Full  *grid.Mask
	Inner *grid.Mask
}

// NewAperture validates that full and inner have the same shape and that
// inner lies within full.
func NewAperture(full, inner *grid.Mask) (Aperture, error) {
	if full == nil || inner == nil {
		return Aperture{}, fmt.Errorf("%w: nil mask", ErrInvalidAperture)
	}
	if err := grid.SameShape(full, inner); err != nil {
		return Aperture{}, fmt.Errorf("wind: aperture: %w", err)
	}
	if !inner.Subset(full) {
		return Aperture{}, ErrInvalidAperture
	}

	return Aperture{Full: full, Inner: inner}, nil
}

// Dims returns the aperture shape.
func (a Aperture) Dims() (rows, cols int) {
	if a.Full == nil {
		return 0, 0
	}
	return a.Full.Dims()
}
