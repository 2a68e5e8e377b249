package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-aowind/dsp/grid"
	"github.com/cwbudde/algo-aowind/internal/testutil"
)

func mustGrid(t *testing.T, rows [][]float64) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return g
}

func TestDirect2D(t *testing.T) {
	src := mustGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	tests := []struct {
		name     string
		kernel   [][]float64
		expected []float64
	}{
		{
			name:     "scalar",
			kernel:   [][]float64{{2}},
			expected: []float64{2, 4, 6, 8, 10, 12, 14, 16, 18},
		},
		{
			name:     "box 3x3",
			kernel:   [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
			expected: []float64{12, 21, 16, 27, 45, 33, 24, 39, 28},
		},
		{
			name:   "shift right",
			kernel: [][]float64{{0, 0, 1}},
			// out[r][c] = src[r][c-1]
			expected: []float64{0, 1, 2, 0, 4, 5, 0, 7, 8},
		},
		{
			name:   "shift down",
			kernel: [][]float64{{0}, {0}, {1}},
			// out[r][c] = src[r-1][c]
			expected: []float64{0, 0, 0, 1, 2, 3, 4, 5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Direct2D(src, mustGrid(t, tt.kernel))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, out.Data, tt.expected, 1e-12)
		})
	}
}

func TestConvolve2DErrors(t *testing.T) {
	src := grid.New(3, 3)
	k := grid.New(1, 1)

	if _, err := Convolve2D(grid.New(0, 0), k, MethodAuto); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Convolve2D(src, nil, MethodDirect); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
	if _, err := Convolve2D(src, k, Method(42)); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestFFT2DMatchesDirect(t *testing.T) {
	sizes := []struct {
		h, w, kh, kw int
	}{
		{9, 11, 3, 5},
		{16, 16, 1, 3},
		{7, 4, 5, 2},
		{12, 20, 9, 9},
	}

	for _, sz := range sizes {
		src := testutil.NoiseGrid(1, 1, sz.h, sz.w)
		kernel := testutil.NoiseGrid(2, 1, sz.kh, sz.kw)

		direct, err := Direct2D(src, kernel)
		if err != nil {
			t.Fatalf("direct: %v", err)
		}
		fft, err := FFT2D(src, kernel)
		if err != nil {
			t.Fatalf("fft: %v", err)
		}

		diff, err := testutil.MaxAbsDiff(direct.Data, fft.Data)
		if err != nil {
			t.Fatal(err)
		}
		if diff > 1e-9 {
			t.Errorf("%dx%d * %dx%d: max diff %g", sz.h, sz.w, sz.kh, sz.kw, diff)
		}
	}
}

func TestGradient(t *testing.T) {
	const rows, cols = 6, 7
	src := grid.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			src.Set(r, c, 3*float64(c)-2*float64(r))
		}
	}

	for _, method := range []Method{MethodDirect, MethodFFT} {
		t.Run(method.String(), func(t *testing.T) {
			gx, gy, err := Gradient(src, method)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for r := 1; r < rows-1; r++ {
				for c := 1; c < cols-1; c++ {
					if math.Abs(gx.At(r, c)-3) > 1e-9 {
						t.Fatalf("gx(%d,%d) = %v, want 3", r, c, gx.At(r, c))
					}
					if math.Abs(gy.At(r, c)+2) > 1e-9 {
						t.Fatalf("gy(%d,%d) = %v, want -2", r, c, gy.At(r, c))
					}
				}
			}

			// Zero padding: the left edge sees only its right neighbour.
			if want := src.At(2, 1) / 2; math.Abs(gx.At(2, 0)-want) > 1e-9 {
				t.Fatalf("gx(2,0) = %v, want %v", gx.At(2, 0), want)
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{MethodAuto, MethodDirect, MethodFFT} {
		got, err := ParseMethod(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMethod(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMethod("sobel"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestCircularCorrelator(t *testing.T) {
	const n = 16
	template := testutil.Impulse(n, 2)
	signal := testutil.Impulse(n, 5)

	c, err := NewCircularCorrelator(template)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	corr, err := c.Correlate(signal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx, val := FindPeak(corr)
	if idx != 3 {
		t.Fatalf("peak index = %d, want 3", idx)
	}
	if math.Abs(val-1) > 1e-12 {
		t.Fatalf("peak value = %v, want 1", val)
	}

	// Wraps around the end.
	corr, err = c.Correlate(testutil.Impulse(n, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx, _ := FindPeak(corr); idx != n-2 {
		t.Fatalf("wrapped peak index = %d, want %d", idx, n-2)
	}

	if _, err := c.Correlate(make([]float64, n-1)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestCircularCorrelatorClone(t *testing.T) {
	template := []float64{3, 1, 0, 0, 0, 0, 1, 2}
	c, err := NewCircularCorrelator(template)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, err := c.Clone()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	signal := []float64{0, 1, 4, 1, 0, 0, 0, 0}
	a, _ := c.Correlate(signal)
	want := append([]float64(nil), a...)
	b, _ := d.Correlate(signal)
	testutil.RequireSliceNearlyEqual(t, b, want, 1e-12)
}

func TestFindPeak(t *testing.T) {
	if idx, _ := FindPeak(nil); idx != -1 {
		t.Fatalf("empty peak index = %d, want -1", idx)
	}
	if idx, v := FindPeak([]float64{1, 5, 5, 2}); idx != 1 || v != 5 {
		t.Fatalf("FindPeak = (%d, %v), want (1, 5)", idx, v)
	}
}
