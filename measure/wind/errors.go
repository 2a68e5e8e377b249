package wind

import (
	"errors"

	"github.com/cwbudde/algo-aowind/dsp/grid"
)

// Errors returned by the wind estimators.
var (
	// ErrShapeMismatch reports grids whose dimensions disagree with the
	// aperture or with each other.
	ErrShapeMismatch = grid.ErrShapeMismatch

	ErrSingularSystem  = errors.New("wind: singular normal equations")
	ErrFitRejected     = errors.New("wind: peak fit rejected")
	ErrNonConvergence  = errors.New("wind: peak fit did not converge")
	ErrNotReady        = errors.New("wind: estimator not set up")
	ErrInvalidAperture = errors.New("wind: inner mask is not a subset of the full mask")
)
