package window

import (
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	for typ := range typeNames {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64, WithAlpha(0.5))
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}

			// Symmetric form.
			for i := 0; i < 32; i++ {
				if math.Abs(w[i]-w[63-i]) > 1e-12 {
					t.Fatalf("w[%d]=%v != w[%d]=%v", i, w[i], 63-i, w[63-i])
				}
			}
		})
	}
}

func TestBlackmanEndpoints(t *testing.T) {
	w, err := Blackman(9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(w[0]) > 1e-12 || math.Abs(w[8]) > 1e-12 {
		t.Fatalf("endpoints = %v, %v, want 0", w[0], w[8])
	}
	if math.Abs(w[4]-1) > 1e-12 {
		t.Fatalf("center = %v, want 1", w[4])
	}

	if _, err := Blackman(0); err == nil {
		t.Fatal("expected error for zero length")
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	if a[1] == b[1] {
		t.Fatal("periodic and symmetric forms should differ")
	}
	// Periodic Hann peaks exactly at n = N/2.
	if math.Abs(b[8]-1) > 1e-12 {
		t.Fatalf("periodic center = %v, want 1", b[8])
	}
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	tests := []struct {
		typ  Type
		want float64
		tol  float64
	}{
		{TypeRectangular, 1, 1e-12},
		{TypeHann, 1.5, 1e-3},
		{TypeBlackman, 1.727, 2e-3},
	}

	for _, tt := range tests {
		enbw, err := EquivalentNoiseBandwidth(Generate(tt.typ, 4096, WithPeriodic()))
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.typ, err)
		}
		if math.Abs(enbw-tt.want) > tt.tol {
			t.Errorf("%v: ENBW = %v, want %v", tt.typ, enbw, tt.want)
		}
	}

	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}
}

func TestSumSquares(t *testing.T) {
	if got := SumSquares([]float64{1, 2, 3}); got != 14 {
		t.Fatalf("SumSquares = %v, want 14", got)
	}
	if got := SumSquares(nil); got != 0 {
		t.Fatalf("SumSquares(nil) = %v, want 0", got)
	}
}

func TestParseType(t *testing.T) {
	for typ, name := range typeNames {
		got, err := ParseType(name)
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v", name, got, err)
		}
	}
	if got, err := ParseType(" Blackman "); err != nil || got != TypeBlackman {
		t.Errorf("ParseType is not case-insensitive: %v, %v", got, err)
	}
	if _, err := ParseType("bartlett"); err == nil {
		t.Error("expected error for unknown window")
	}
}
