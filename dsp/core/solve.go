package core

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when a linear system has no unique solution.
var ErrSingular = errors.New("core: singular system")

// singularTol bounds |det| relative to the magnitude of its two products.
const singularTol = 1e-12

// Solve2x2 solves a*x = b for a 2x2 system. It fails with ErrSingular when
// the determinant vanishes relative to the matrix scale or when the solver
// reports the matrix as numerically singular.
func Solve2x2(a [2][2]float64, b [2]float64) ([2]float64, error) {
	var x [2]float64

	if !Finite(a[0][0], a[0][1], a[1][0], a[1][1], b[0], b[1]) {
		return x, fmt.Errorf("%w: non-finite input", ErrSingular)
	}

	det := a[0][0]*a[1][1] - a[0][1]*a[1][0]
	scale := math.Abs(a[0][0]*a[1][1]) + math.Abs(a[0][1]*a[1][0])
	if scale == 0 || math.Abs(det) <= singularTol*scale {
		return x, fmt.Errorf("%w: det=%g", ErrSingular, det)
	}

	A := mat.NewDense(2, 2, []float64{a[0][0], a[0][1], a[1][0], a[1][1]})
	var sol mat.VecDense
	if err := sol.SolveVec(A, mat.NewVecDense(2, []float64{b[0], b[1]})); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return x, fmt.Errorf("%w: condition number %g", ErrSingular, float64(cond))
		}
		return x, fmt.Errorf("core: solve failed: %w", err)
	}

	x[0], x[1] = sol.AtVec(0), sol.AtVec(1)
	return x, nil
}
