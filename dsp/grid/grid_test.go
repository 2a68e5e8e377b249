package grid

import (
	"errors"
	"math"
	"testing"
)

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows != 2 || g.Cols != 3 {
		t.Fatalf("dims = %dx%d, want 2x3", g.Rows, g.Cols)
	}
	if g.At(1, 2) != 6 {
		t.Fatalf("At(1,2) = %v, want 6", g.At(1, 2))
	}
	if g.Sum() != 21 {
		t.Fatalf("Sum = %v, want 21", g.Sum())
	}
}

func TestFromRowsErrors(t *testing.T) {
	if _, err := FromRows(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if _, err := FromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrRagged) {
		t.Errorf("expected ErrRagged, got %v", err)
	}
}

func TestSameShape(t *testing.T) {
	a := New(4, 4)
	b := NewMask(4, 4)
	c := New(4, 5)

	if err := SameShape(a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SameShape(a, b, c); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestDot(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := FromRows([][]float64{{1, 1}, {2, 0.5}})

	d, err := a.Dot(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 11 {
		t.Fatalf("Dot = %v, want 11", d)
	}

	if _, err := a.Dot(New(3, 3)); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestMaskFromInts(t *testing.T) {
	m, err := MaskFromInts([][]int{{0, 1, 0}, {1, 1, 1}, {0, 2, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Count() != 5 {
		t.Fatalf("Count = %d, want 5", m.Count())
	}
	if !m.At(2, 1) || m.At(0, 0) {
		t.Fatalf("unexpected mask contents: %v", m.Data)
	}
}

func TestMaskSubset(t *testing.T) {
	full, _ := MaskFromInts([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	inner, _ := MaskFromInts([][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}})

	if !inner.Subset(full) {
		t.Fatal("inner should be a subset of full")
	}
	if full.Subset(inner) {
		t.Fatal("full should not be a subset of inner")
	}
	if inner.Subset(NewMask(2, 2)) {
		t.Fatal("masks of different shape are never subsets")
	}
}

func TestRemovePiston(t *testing.T) {
	g, _ := FromRows([][]float64{{1, 2}, {3, 10}})
	m, _ := MaskFromInts([][]int{{1, 1}, {1, 0}})

	out := New(2, 2)
	p, err := RemovePiston(out, g, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 2 {
		t.Fatalf("piston = %v, want 2", p)
	}

	want := []float64{-1, 0, 1, 8}
	for i, v := range out.Data {
		if math.Abs(v-want[i]) > 1e-12 {
			t.Fatalf("out[%d] = %v, want %v", i, v, want[i])
		}
	}

	if _, err := RemovePistonMasked(out, g, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Data[3] != 0 {
		t.Fatalf("masked sample = %v, want 0", out.Data[3])
	}
}

func TestPistonEmptyMask(t *testing.T) {
	g, _ := FromRows([][]float64{{5, 5}, {5, 5}})
	p, err := Piston(g, NewMask(2, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 0 {
		t.Fatalf("piston = %v, want 0 for an empty mask", p)
	}
}

func TestCubeColumnRoundTrip(t *testing.T) {
	c := NewCube(4, 2, 3)
	col := []float64{1, 2, 3, 4}
	if err := c.SetColumn(1, 2, col); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.At(3, 1, 2) != 4 {
		t.Fatalf("At(3,1,2) = %v, want 4", c.At(3, 1, 2))
	}
	got := c.Column(1, 2, nil)
	for i := range col {
		if got[i] != col[i] {
			t.Fatalf("column[%d] = %v, want %v", i, got[i], col[i])
		}
	}
	if err := c.SetColumn(0, 0, []float64{1}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestComplexCubeSeries(t *testing.T) {
	c := NewComplexCube(3, 2, 2)
	if err := c.SetSeries(0, 1, []complex128{1i, 2, 3 - 1i}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.At(2, 0, 1) != 3-1i {
		t.Fatalf("At(2,0,1) = %v, want 3-1i", c.At(2, 0, 1))
	}
	s := c.Series(0, 1, make([]complex128, 0, 8))
	if len(s) != 3 || s[0] != 1i {
		t.Fatalf("unexpected series: %v", s)
	}
}
