package conv

import (
	"fmt"

	"github.com/cwbudde/algo-aowind/dsp/grid"
	algofft "github.com/cwbudde/algo-fft"
)

// FFT2D performs "same" convolution by multiplying zero-padded 2-D spectra.
// The padded size is the next power of two covering the full result, so no
// circular wrap reaches the cropped window.
func FFT2D(src, kernel *grid.Grid) (*grid.Grid, error) {
	if src == nil || src.Len() == 0 {
		return nil, ErrEmptyInput
	}
	if kernel == nil || kernel.Len() == 0 {
		return nil, ErrEmptyKernel
	}

	h, w := src.Rows, src.Cols
	fh := nextPowerOf2(h + kernel.Rows - 1)
	fw := nextPowerOf2(w + kernel.Cols - 1)

	t, err := newTransform2D(fh, fw)
	if err != nil {
		return nil, err
	}

	a := make([]complex128, fh*fw)
	b := make([]complex128, fh*fw)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			a[r*fw+c] = complex(src.Data[r*w+c], 0)
		}
	}
	for r := 0; r < kernel.Rows; r++ {
		for c := 0; c < kernel.Cols; c++ {
			b[r*fw+c] = complex(kernel.Data[r*kernel.Cols+c], 0)
		}
	}

	if err := t.forward(a); err != nil {
		return nil, err
	}
	if err := t.forward(b); err != nil {
		return nil, err
	}
	for i := range a {
		a[i] *= b[i]
	}
	if err := t.inverse(a); err != nil {
		return nil, err
	}

	offR, offC := kernel.Rows/2, kernel.Cols/2
	out := grid.New(h, w)
	for r := 0; r < h; r++ {
		row := a[(r+offR)*fw+offC:]
		for c := 0; c < w; c++ {
			out.Data[r*w+c] = real(row[c])
		}
	}

	return out, nil
}

// transform2D runs separable row and column FFTs over a row-major buffer.
type transform2D struct {
	rows, cols int
	rowPlan    *algofft.Plan[complex128]
	colPlan    *algofft.Plan[complex128]
	col        []complex128
}

func newTransform2D(rows, cols int) (*transform2D, error) {
	rowPlan, err := algofft.NewPlan64(cols)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}
	colPlan := rowPlan
	if rows != cols {
		colPlan, err = algofft.NewPlan64(rows)
		if err != nil {
			return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
		}
	}

	return &transform2D{
		rows:    rows,
		cols:    cols,
		rowPlan: rowPlan,
		colPlan: colPlan,
		col:     make([]complex128, rows),
	}, nil
}

func (t *transform2D) forward(a []complex128) error { return t.run(a, true) }

func (t *transform2D) inverse(a []complex128) error { return t.run(a, false) }

func (t *transform2D) run(a []complex128, forward bool) error {
	apply := func(p *algofft.Plan[complex128], buf []complex128) error {
		if forward {
			return p.Forward(buf, buf)
		}
		return p.Inverse(buf, buf)
	}

	for r := 0; r < t.rows; r++ {
		row := a[r*t.cols : (r+1)*t.cols]
		if err := apply(t.rowPlan, row); err != nil {
			return fmt.Errorf("conv: row FFT failed: %w", err)
		}
	}

	for c := 0; c < t.cols; c++ {
		for r := 0; r < t.rows; r++ {
			t.col[r] = a[r*t.cols+c]
		}
		if err := apply(t.colPlan, t.col); err != nil {
			return fmt.Errorf("conv: column FFT failed: %w", err)
		}
		for r := 0; r < t.rows; r++ {
			a[r*t.cols+c] = t.col[r]
		}
	}

	return nil
}
