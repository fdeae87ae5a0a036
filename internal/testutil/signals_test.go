package testutil

import (
	"math"
	"testing"
)

func TestDeterministicPrices(t *testing.T) {
	a := DeterministicPrices(42, 100, 256)
	b := DeterministicPrices(42, 100, 256)
	if len(a) != 256 {
		t.Fatalf("len = %d, want 256", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("prices not deterministic at index %d", i)
		}
		if a[i] <= 0 {
			t.Fatalf("a[%d] = %v, want > 0", i, a[i])
		}
	}
}

func TestDeterministicVolumesRange(t *testing.T) {
	v := DeterministicVolumes(7, 50, 128)
	for i, x := range v {
		if x < 0 || x >= 50 {
			t.Fatalf("v[%d] = %v out of [0, 50)", i, x)
		}
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(1, 0.5, 4)
	want := []float64{1, 1.5, 2, 2.5}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("r[%d] = %v, want %v", i, r[i], want[i])
		}
	}
}

func TestDC(t *testing.T) {
	d := DC(-2.5, 3)
	if len(d) != 3 || d[0] != -2.5 || d[2] != -2.5 {
		t.Fatalf("DC = %v, want [-2.5 -2.5 -2.5]", d)
	}
}

func TestSpecialContainsNegativeZero(t *testing.T) {
	s := Special()
	if !math.Signbit(s[1]) || s[1] != 0 {
		t.Fatalf("s[1] = %v, want -0", s[1])
	}
	if !math.IsNaN(s[4]) {
		t.Fatalf("s[4] = %v, want NaN", s[4])
	}
}
