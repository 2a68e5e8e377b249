package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeSquaredMatchesResponse(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.3}
	for _, f := range []float64{1, 50, 120, 249} {
		h := c.Response(f, 500)
		want := real(h)*real(h) + imag(h)*imag(h)
		if got := c.MagnitudeSquared(f, 500); !almostEqual(got, want, 1e-10) {
			t.Fatalf("f=%v: got %v, want %v", f, got, want)
		}
	}
}

func TestIntegratorResponse(t *testing.T) {
	const gain, pole, rate = 0.4, 0.99, 1000.0
	c := Integrator(gain, pole)

	for _, f := range []float64{0, 3, 77, 499} {
		w := 2 * math.Pi * f / rate
		want := complex(gain, 0) / (1 - complex(pole, 0)*cmplx.Exp(complex(0, -w)))
		if got := c.Response(f, rate); cmplx.Abs(got-want) > 1e-9 {
			t.Fatalf("f=%v: got %v, want %v", f, got, want)
		}
	}
}

func TestIntegratorImpulseResponse(t *testing.T) {
	s := NewSection(Integrator(0.5, 0.8))
	ir := s.ImpulseResponse(5)
	for n, v := range ir {
		want := 0.5 * math.Pow(0.8, float64(n))
		if !almostEqual(v, want, eps) {
			t.Fatalf("h[%d] = %v, want %v", n, v, want)
		}
	}
	if s.ImpulseResponse(0) != nil {
		t.Fatal("expected nil for n=0")
	}
}
