package biquad

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestProcessSample_DFIIT(t *testing.T) {
	// Hand-traced with B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04 and an
	// impulse input.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Fatalf("n=%d: got %v, want %v", i, y, w)
		}
	}
}

func TestProcessBlockMatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.3, B1: -0.1, B2: 0.05, A1: -0.6, A2: 0.2}
	for _, n := range []int{0, 1, 2, 7, 64} {
		input := make([]float64, n)
		for i := range input {
			input[i] = math.Sin(0.37 * float64(i))
		}

		ref := NewSection(c)
		want := make([]float64, n)
		for i, x := range input {
			want[i] = ref.ProcessSample(x)
		}

		s := NewSection(c)
		buf := append([]float64(nil), input...)
		s.ProcessBlock(buf)
		for i := range buf {
			if !almostEqual(buf[i], want[i], eps) {
				t.Fatalf("n=%d i=%d: got %v, want %v", n, i, buf[i], want[i])
			}
		}
		if s.State() != ref.State() {
			t.Fatalf("n=%d: state %v, want %v", n, s.State(), ref.State())
		}
	}
}

func TestResetAndState(t *testing.T) {
	s := NewSection(Integrator(1, 1))
	s.ProcessSample(2)
	saved := s.State()
	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("state after reset = %v", s.State())
	}
	s.SetState(saved)
	if y := s.ProcessSample(0); !almostEqual(y, 2, eps) {
		t.Fatalf("restored integrator output = %v, want 2", y)
	}
}
