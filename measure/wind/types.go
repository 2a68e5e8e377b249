package wind

import (
	"fmt"
	"math"
)

// Vector is a wind velocity in grid samples per frame. X runs along
// columns, Y along rows.
type Vector struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector { return Vector{X: v.X + o.X, Y: v.Y + o.Y} }

// Norm returns the speed |v|.
func (v Vector) Norm() float64 { return math.Hypot(v.X, v.Y) }

// String formats v as "(x, y)".
func (v Vector) String() string { return fmt.Sprintf("(%.4g, %.4g)", v.X, v.Y) }

// LayerRecord describes one single-pole peak in a mode's temporal PSD.
type LayerRecord struct {
	Alpha    float64 // pole magnitude in [0, 1]
	Omega    float64 // peak center, radians per sample
	Variance float64 // model numerator
	RMS      float64 // sqrt of the model summed over the frequency axis
}

// LayerGrid is a Kx x Ky grid of per-mode layer lists. Each cell grows
// independently; cells are ordered by acceptance.
type LayerGrid struct {
	Kx, Ky int
	cells  [][]LayerRecord
}

// NewLayerGrid returns an empty kx x ky grid.
func NewLayerGrid(kx, ky int) *LayerGrid {
	if kx < 0 || ky < 0 {
		kx, ky = 0, 0
	}
	return &LayerGrid{Kx: kx, Ky: ky, cells: make([][]LayerRecord, kx*ky)}
}

// Dims returns (Kx, Ky).
func (g *LayerGrid) Dims() (rows, cols int) { return g.Kx, g.Ky }

// At returns the records of mode (k, l). The slice must not be modified.
func (g *LayerGrid) At(k, l int) []LayerRecord { return g.cells[k*g.Ky+l] }

// Append adds rec to mode (k, l).
func (g *LayerGrid) Append(k, l int, rec LayerRecord) {
	i := k*g.Ky + l
	g.cells[i] = append(g.cells[i], rec)
}

// Set replaces the records of mode (k, l).
func (g *LayerGrid) Set(k, l int, recs []LayerRecord) { g.cells[k*g.Ky+l] = recs }

// Count returns the total number of records.
func (g *LayerGrid) Count() int {
	n := 0
	for _, c := range g.cells {
		n += len(c)
	}
	return n
}
