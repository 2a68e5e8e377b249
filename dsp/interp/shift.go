package interp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-aowind/dsp/grid"
)

// Boundary selects how samples outside the grid are read.
type Boundary int

const (
	// BoundaryConstant reads zero outside the grid.
	BoundaryConstant Boundary = iota
	// BoundaryNearest repeats the edge sample.
	BoundaryNearest
	// BoundaryReflect mirrors about the edge (d c b a | a b c d | d c b a).
	BoundaryReflect
	// BoundaryWrap treats the grid as periodic.
	BoundaryWrap
)

// String returns the boundary name.
func (b Boundary) String() string {
	switch b {
	case BoundaryConstant:
		return "constant"
	case BoundaryNearest:
		return "nearest"
	case BoundaryReflect:
		return "reflect"
	case BoundaryWrap:
		return "wrap"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// ParseBoundary maps a boundary name to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "", "constant":
		return BoundaryConstant, nil
	case "nearest":
		return BoundaryNearest, nil
	case "reflect":
		return BoundaryReflect, nil
	case "wrap":
		return BoundaryWrap, nil
	default:
		return 0, fmt.Errorf("interp: unknown boundary %q", s)
	}
}

// Shift2D translates src by (dy, dx) samples into dst so that
// dst[r][c] = src[r-dy][c-dx], interpolating fractional positions.
// The shift is applied separably, columns first. dst may alias src.
func Shift2D(dst, src *grid.Grid, dy, dx float64, order Order, boundary Boundary) error {
	if err := grid.SameShape(dst, src); err != nil {
		return err
	}
	kern, err := NewKernel(order)
	if err != nil {
		return err
	}

	rows, cols := src.Rows, src.Cols
	if rows == 0 || cols == 0 {
		return nil
	}

	tmp := make([]float64, rows*cols)
	s := &lineShifter{kern: kern, boundary: boundary, taps: make([]float64, kern.Taps())}

	for r := 0; r < rows; r++ {
		s.shift(tmp[r*cols:(r+1)*cols], src.Data[r*cols:(r+1)*cols], dx)
	}

	line := make([]float64, rows)
	out := make([]float64, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			line[r] = tmp[r*cols+c]
		}
		s.shift(out, line, dy)
		for r := 0; r < rows; r++ {
			dst.Data[r*cols+c] = out[r]
		}
	}

	return nil
}

type lineShifter struct {
	kern     Kernel
	boundary Boundary
	taps     []float64
}

// shift writes dst[i] = src(i - d) with src read through the boundary rule.
func (s *lineShifter) shift(dst, src []float64, d float64) {
	n := len(src)
	origin := s.kern.Origin()
	for i := range dst {
		x := float64(i) - d

		if s.kern.Order() == OrderNearest {
			dst[i] = sample1D(src, int(math.Floor(x+0.5)), n, s.boundary)
			continue
		}

		i0 := int(math.Floor(x))
		for k := range s.taps {
			s.taps[k] = sample1D(src, i0+origin+k, n, s.boundary)
		}
		dst[i] = s.kern.Eval(s.taps, x-float64(i0))
	}
}

func sample1D(src []float64, i, n int, boundary Boundary) float64 {
	if i >= 0 && i < n {
		return src[i]
	}

	switch boundary {
	case BoundaryNearest:
		if i < 0 {
			return src[0]
		}
		return src[n-1]
	case BoundaryReflect:
		return src[reflectIndex(i, n)]
	case BoundaryWrap:
		return src[((i%n)+n)%n]
	default:
		return 0
	}
}

// reflectIndex folds i into [0, n) with half-sample symmetric reflection.
func reflectIndex(i, n int) int {
	period := 2 * n
	i = ((i % period) + period) % period
	if i >= n {
		i = period - 1 - i
	}
	return i
}
