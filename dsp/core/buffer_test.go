package core

import "testing"

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 || cap(out) != cap(buf) {
		t.Fatalf("len=%d cap=%d, want 6 and %d", len(out), cap(out), cap(buf))
	}

	grown := EnsureLen([]complex128{1}, 3)
	if len(grown) != 3 {
		t.Fatalf("len = %d, want 3", len(grown))
	}

	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}

	flags := []bool{true, true}
	Zero(flags)
	if flags[0] || flags[1] {
		t.Fatalf("flags = %v, want all false", flags)
	}
}
