package core

import "testing"

func TestClamp(t *testing.T) {
	for _, tc := range []struct {
		v, min, max float64
		want        float64
	}{
		{v: 0.5, min: 0, max: 1, want: 0.5},
		{v: -1, min: 0, max: 1, want: 0},
		{v: 2, min: 0, max: 1, want: 1},
		{v: 0.5, min: 1, max: 0, want: 0.5}, // reversed bounds
	} {
		if got := Clamp(tc.v, tc.min, tc.max); got != tc.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenGrow(t *testing.T) {
	out := EnsureLen(make([]float64, 2), 16)
	if len(out) != 16 {
		t.Fatalf("len = %d, want 16", len(out))
	}
}
