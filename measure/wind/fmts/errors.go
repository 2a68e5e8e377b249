package fmts

import (
	"errors"

	"github.com/cwbudde/algo-aowind/measure/wind"
)

// isFatal reports whether a stop reason must abort the whole pass. Fit
// rejection, non-convergence and exhausted signal are local to a mode.
func isFatal(err error) bool {
	return !errors.Is(err, wind.ErrFitRejected) &&
		!errors.Is(err, wind.ErrNonConvergence) &&
		!errors.Is(err, errNoSignal)
}
