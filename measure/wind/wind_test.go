package wind

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-aowind/dsp/grid"
)

func TestNewAperture(t *testing.T) {
	full, _ := grid.MaskFromInts([][]int{{0, 1, 0}, {1, 1, 1}, {0, 1, 0}})
	inner, _ := grid.MaskFromInts([][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}})

	a, err := NewAperture(full, inner)
	if err != nil {
		t.Fatalf("NewAperture: %v", err)
	}
	if r, c := a.Dims(); r != 3 || c != 3 {
		t.Fatalf("Dims() = (%d, %d), want (3, 3)", r, c)
	}
	if a.Full != full || a.Inner != inner {
		t.Fatal("aperture copied its masks")
	}

	tests := []struct {
		name        string
		full, inner *grid.Mask
		want        error
	}{
		{"nil inner", full, nil, ErrInvalidAperture},
		{"swapped", inner, full, ErrInvalidAperture},
		{"shape", full, grid.NewMask(3, 4), ErrShapeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAperture(tt.full, tt.inner); !errors.Is(err, tt.want) {
				t.Fatalf("NewAperture() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLayerGrid(t *testing.T) {
	g := NewLayerGrid(2, 3)
	if r, c := g.Dims(); r != 2 || c != 3 {
		t.Fatalf("Dims() = (%d, %d)", r, c)
	}

	g.Append(1, 2, LayerRecord{Alpha: 0.5})
	g.Append(1, 2, LayerRecord{Alpha: 0.7})
	g.Set(0, 0, []LayerRecord{{Alpha: 0.1}})

	if got := g.At(1, 2); len(got) != 2 || got[1].Alpha != 0.7 {
		t.Fatalf("At(1, 2) = %v", got)
	}
	if got := g.At(0, 1); len(got) != 0 {
		t.Fatalf("At(0, 1) = %v, want empty", got)
	}
	if g.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", g.Count())
	}
}

func TestVector(t *testing.T) {
	v := Vector{X: 3, Y: -4}
	if v.Norm() != 5 {
		t.Fatalf("Norm() = %v", v.Norm())
	}
	if got := v.Add(Vector{X: 1, Y: 1}); got != (Vector{X: 4, Y: -3}) {
		t.Fatalf("Add() = %v", got)
	}
	if s := v.String(); s != "(3, -4)" {
		t.Fatalf("String() = %q", s)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{KindGaussNewton: "gauss-newton", KindFMTS: "fmts", Kind(0): "unknown"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestSystemLoopModel(t *testing.T) {
	s := System{SampleRate: 1000, Delay: 1e-3, Gain: 0.4, Pole: 0.99}
	m := s.LoopModel()
	if m.SampleRate != 1000 || m.Delay != 1e-3 || m.Gain != 0.4 || m.Pole != 0.99 {
		t.Fatalf("LoopModel() = %+v", m)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestFrames(t *testing.T) {
	f := Frames{grid.New(1, 1), grid.New(1, 1)}
	var src FrameSource = f
	if src.Len() != 2 || src.Frame(1) != f[1] {
		t.Fatal("Frames adapter mismatch")
	}
}
