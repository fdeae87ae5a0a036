package generic

import (
	"math"
	"testing"
)

func TestTransformMatchesFormula(t *testing.T) {
	src := []float64{0.25, 1, math.E, 10, 12345.678}
	dst := make([]float64, len(src))
	Transform(dst, src)

	for i, x := range src {
		want := math.Sqrt(math.Abs(math.Log(x))) + 0.5*x
		if dst[i] != want {
			t.Errorf("index %d: got %v, want %v", i, dst[i], want)
		}
	}
}

func TestTransformInPlace(t *testing.T) {
	buf := []float64{1, 4}
	Transform(buf, buf)

	if buf[0] != 0.5 {
		t.Errorf("buf[0] = %v, want 0.5", buf[0])
	}
	if want := math.Sqrt(math.Log(4)) + 2; buf[1] != want {
		t.Errorf("buf[1] = %v, want %v", buf[1], want)
	}
}

func TestTransformPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	Transform(make([]float64, 2), make([]float64, 3))
}
