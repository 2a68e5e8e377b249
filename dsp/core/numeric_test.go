package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{name: "absolute", a: 1.0, b: 1.0 + 1e-13, eps: 1e-12, want: true},
		{name: "relative", a: 1e9, b: 1e9 + 1e-4, eps: 1e-12, want: true},
		{name: "different", a: 1.0, b: 1.1, eps: 1e-3, want: false},
		{name: "default eps", a: 0, b: 1e-13, eps: 0, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearlyEqual(tt.a, tt.b, tt.eps); got != tt.want {
				t.Fatalf("NearlyEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
			}
		})
	}
}

func TestFinite(t *testing.T) {
	if !Finite(0, -1, 1e308) {
		t.Fatal("expected finite values")
	}
	if Finite(1, math.NaN()) || Finite(math.Inf(-1)) {
		t.Fatal("expected non-finite detection")
	}
	if !Finite() {
		t.Fatal("empty input should be finite")
	}
}
