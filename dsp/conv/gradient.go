package conv

import "github.com/cwbudde/algo-aowind/dsp/grid"

// Gradient returns the central-difference derivatives of src along columns
// (gx) and rows (gy): gx[r][c] = (src[r][c+1] - src[r][c-1]) / 2, with zero
// padding outside the grid. The derivatives come from convolving with
// [-1/2, 0, 1/2] and its transpose and negating the result.
func Gradient(src *grid.Grid, method Method) (gx, gy *grid.Grid, err error) {
	kx := &grid.Grid{Rows: 1, Cols: 3, Data: []float64{-0.5, 0, 0.5}}
	ky := &grid.Grid{Rows: 3, Cols: 1, Data: []float64{-0.5, 0, 0.5}}

	gx, err = Convolve2D(src, kx, method)
	if err != nil {
		return nil, nil, err
	}
	gy, err = Convolve2D(src, ky, method)
	if err != nil {
		return nil, nil, err
	}

	for i := range gx.Data {
		gx.Data[i] = -gx.Data[i]
		gy.Data[i] = -gy.Data[i]
	}

	return gx, gy, nil
}
