package grid

import "fmt"

// Mask marks valid samples of a Grid.
type Mask struct {
	Rows, Cols int
	Data       []bool
}

// NewMask returns an all-false rows x cols mask.
func NewMask(rows, cols int) *Mask {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}

	return &Mask{Rows: rows, Cols: cols, Data: make([]bool, rows*cols)}
}

// MaskFromInts builds a mask from an integer grid; non-zero entries are valid.
func MaskFromInts(rows [][]int) (*Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	m := NewMask(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != m.Cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, r, len(row), m.Cols)
		}
		for c, v := range row {
			m.Data[r*m.Cols+c] = v != 0
		}
	}

	return m, nil
}

// Dims returns the mask dimensions.
func (m *Mask) Dims() (rows, cols int) { return m.Rows, m.Cols }

// At reports whether (r, c) is valid.
func (m *Mask) At(r, c int) bool { return m.Data[r*m.Cols+c] }

// Set marks (r, c) valid or invalid.
func (m *Mask) Set(r, c int, v bool) { m.Data[r*m.Cols+c] = v }

// Count returns the number of valid samples.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Data {
		if v {
			n++
		}
	}
	return n
}

// Subset reports whether every valid sample of m is also valid in of.
func (m *Mask) Subset(of *Mask) bool {
	if SameShape(m, of) != nil {
		return false
	}
	for i, v := range m.Data {
		if v && !of.Data[i] {
			return false
		}
	}
	return true
}

// Weights returns the mask as 0/1 float samples.
func (m *Mask) Weights() []float64 {
	w := make([]float64, len(m.Data))
	for i, v := range m.Data {
		if v {
			w[i] = 1
		}
	}
	return w
}

// Apply zeroes every sample of g outside the mask.
func (m *Mask) Apply(g *Grid) error {
	if err := SameShape(m, g); err != nil {
		return err
	}
	for i, v := range m.Data {
		if !v {
			g.Data[i] = 0
		}
	}
	return nil
}
