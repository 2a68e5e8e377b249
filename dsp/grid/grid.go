package grid

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by grid constructors and shape checks.
var (
	ErrShapeMismatch = errors.New("grid: shape mismatch")
	ErrEmpty         = errors.New("grid: empty grid")
	ErrRagged        = errors.New("grid: ragged rows")
)

// Grid is a dense row-major 2-D real array.
type Grid struct {
	Rows, Cols int
	Data       []float64
}

// New returns a zero-filled rows x cols grid.
func New(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}

	return &Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// FromRows copies a [][]float64 into a new Grid.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	g := New(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, r, len(row), g.Cols)
		}
		copy(g.Data[r*g.Cols:], row)
	}

	return g, nil
}

// At returns the value at (r, c).
func (g *Grid) At(r, c int) float64 { return g.Data[r*g.Cols+c] }

// Set stores v at (r, c).
func (g *Grid) Set(r, c int, v float64) { g.Data[r*g.Cols+c] = v }

// Len returns the number of samples.
func (g *Grid) Len() int { return len(g.Data) }

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, Data: make([]float64, len(g.Data))}
	copy(out.Data, g.Data)
	return out
}

// Fill sets every sample to v.
func (g *Grid) Fill(v float64) {
	for i := range g.Data {
		g.Data[i] = v
	}
}

// Sum returns the plain sum of all samples.
func (g *Grid) Sum() float64 {
	if len(g.Data) == 0 {
		return 0
	}
	return vecmath.Sum(g.Data)
}

// Dot returns the elementwise product sum of g and o.
func (g *Grid) Dot(o *Grid) (float64, error) {
	if err := SameShape(g, o); err != nil {
		return 0, err
	}
	if len(g.Data) == 0 {
		return 0, nil
	}

	return vecmath.DotProduct(g.Data, o.Data), nil
}

// Shape describes the dimensions of a 2-D container.
type Shape interface {
	Dims() (rows, cols int)
}

// Dims returns the grid dimensions.
func (g *Grid) Dims() (rows, cols int) { return g.Rows, g.Cols }

// SameShape fails with ErrShapeMismatch unless every argument has the
// dimensions of the first one.
func SameShape(first Shape, rest ...Shape) error {
	r0, c0 := first.Dims()
	for _, s := range rest {
		r, c := s.Dims()
		if r != r0 || c != c0 {
			return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, r0, c0, r, c)
		}
	}

	return nil
}
