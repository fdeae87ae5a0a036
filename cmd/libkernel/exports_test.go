package main

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-kernel/internal/marshal"
	"github.com/cwbudde/algo-kernel/internal/testutil"
)

// goHeap stands in for the C allocator.
func goHeap(n int) ([]float64, []float64) {
	buf := make([]float64, n)
	return buf, buf
}

func TestComputeDouble(t *testing.T) {
	host := []float64{1, 0, -1, 1.05}
	before := append([]float64(nil), host...)

	got := computeDouble(marshal.Floats(host), goHeap)

	want := []float64{0.5, math.Inf(1), math.NaN(), math.Sqrt(math.Log(1.05)) + 0.525}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
	testutil.RequireBitsEqual(t, host, before)
	if &got[0] == &host[0] {
		t.Fatal("result aliases host memory")
	}
}

func TestComputeDoubleEmpty(t *testing.T) {
	var calls, size int
	alloc := func(n int) ([]float64, []float64) {
		calls++
		size = n
		return goHeap(n)
	}
	got := computeDouble(marshal.Floats(nil), alloc)
	if len(got) != 0 || calls != 1 || size != 0 {
		t.Fatalf("got %v, alloc called %d times with n=%d", got, calls, size)
	}
}

func TestComputeVWAP(t *testing.T) {
	tests := []struct {
		name    string
		prices  []float64
		volumes []float64
		want    float64
	}{
		{"equal-weights", []float64{1, 2}, []float64{10, 10}, 1.5},
		{"mismatch", []float64{1}, []float64{1, 2}, 0},
		{"empty", nil, nil, 0},
		{"zero-weight", []float64{5}, []float64{0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeVWAP(marshal.Floats(tt.prices), marshal.Floats(tt.volumes), goHeap)
			if len(got) != 1 || got[0] != tt.want {
				t.Fatalf("computeVWAP = %v, want [%v]", got, tt.want)
			}
		})
	}
}

func TestComputeVWAPChecked(t *testing.T) {
	tests := []struct {
		name       string
		prices     []float64
		volumes    []float64
		wantValue  float64
		wantStatus int
	}{
		{"ok", []float64{1, 2}, []float64{10, 30}, 1.75, statusOK},
		{"mismatch", []float64{1}, []float64{1, 2}, 0, statusLengthMismatch},
		{"empty", nil, nil, 0, statusEmptyInput},
		{"all-skipped", []float64{math.NaN()}, []float64{1}, 0, statusZeroWeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, status := computeVWAPChecked(marshal.Floats(tt.prices), marshal.Floats(tt.volumes))
			if value != tt.wantValue || status != tt.wantStatus {
				t.Fatalf("computeVWAPChecked = (%v, %d), want (%v, %d)",
					value, status, tt.wantValue, tt.wantStatus)
			}
		})
	}
}
