package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-aowind/dsp/grid"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
	ErrUnknownMethod  = errors.New("conv: unknown method")
)

// Method selects the 2-D convolution algorithm.
type Method int

const (
	// MethodAuto picks direct convolution for small kernels and FFT otherwise.
	MethodAuto Method = iota

	// MethodDirect performs spatial-domain accumulation.
	MethodDirect

	// MethodFFT multiplies zero-padded spectra.
	MethodFFT
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a method name to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "auto":
		return MethodAuto, nil
	case "direct":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// directThreshold is the kernel sample count above which MethodAuto
// switches to FFT convolution.
const directThreshold = 64

// Convolve2D returns the "same"-size linear convolution of src with kernel
// under zero padding. Output (r, c) is full-convolution sample
// (r+kr/2, c+kc/2), matching the usual centered crop.
func Convolve2D(src, kernel *grid.Grid, method Method) (*grid.Grid, error) {
	if src == nil || src.Len() == 0 {
		return nil, ErrEmptyInput
	}
	if kernel == nil || kernel.Len() == 0 {
		return nil, ErrEmptyKernel
	}

	switch method {
	case MethodAuto:
		if kernel.Len() <= directThreshold {
			return Direct2D(src, kernel)
		}
		return FFT2D(src, kernel)
	case MethodDirect:
		return Direct2D(src, kernel)
	case MethodFFT:
		return FFT2D(src, kernel)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
}

// Direct2D performs spatial-domain "same" convolution. Each kernel tap adds
// a scaled, shifted copy of the source rows into the output.
func Direct2D(src, kernel *grid.Grid) (*grid.Grid, error) {
	if src == nil || src.Len() == 0 {
		return nil, ErrEmptyInput
	}
	if kernel == nil || kernel.Len() == 0 {
		return nil, ErrEmptyKernel
	}

	h, w := src.Rows, src.Cols
	offR, offC := kernel.Rows/2, kernel.Cols/2
	out := grid.New(h, w)
	temp := make([]float64, w)

	for i := 0; i < kernel.Rows; i++ {
		for j := 0; j < kernel.Cols; j++ {
			kv := kernel.At(i, j)
			if kv == 0 {
				continue
			}

			// out[r][c] += kv * src[r+offR-i][c+offC-j]
			dr := offR - i
			dc := offC - j
			c0 := max(0, -dc)
			c1 := min(w, w-dc)
			if c0 >= c1 {
				continue
			}
			n := c1 - c0

			for r := 0; r < h; r++ {
				sr := r + dr
				if sr < 0 || sr >= h {
					continue
				}
				srow := src.Data[sr*w+c0+dc : sr*w+c1+dc]
				drow := out.Data[r*w+c0 : r*w+c1]
				vecmath.ScaleBlock(temp[:n], srow, kv)
				vecmath.AddBlockInPlace(drow, temp[:n])
			}
		}
	}

	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
