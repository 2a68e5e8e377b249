package core

import (
	"errors"
	"math"
	"testing"
)

func TestSolve2x2(t *testing.T) {
	tests := []struct {
		name string
		a    [2][2]float64
		b    [2]float64
		want [2]float64
	}{
		{name: "identity", a: [2][2]float64{{1, 0}, {0, 1}}, b: [2]float64{3, -4}, want: [2]float64{3, -4}},
		{name: "symmetric", a: [2][2]float64{{4, 1}, {1, 3}}, b: [2]float64{1, 2}, want: [2]float64{1.0 / 11, 7.0 / 11}},
		{name: "tiny scale", a: [2][2]float64{{2e-9, 0}, {0, 1e-9}}, b: [2]float64{2e-9, 3e-9}, want: [2]float64{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve2x2(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i := range got {
				if !NearlyEqual(got[i], tt.want[i], 1e-9) {
					t.Fatalf("x[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSolve2x2Singular(t *testing.T) {
	cases := [][2][2]float64{
		{{0, 0}, {0, 0}},
		{{1, 2}, {2, 4}},
		{{1, math.NaN()}, {0, 1}},
	}
	for _, a := range cases {
		if _, err := Solve2x2(a, [2]float64{1, 1}); !errors.Is(err, ErrSingular) {
			t.Errorf("Solve2x2(%v) error = %v, want ErrSingular", a, err)
		}
	}
}
