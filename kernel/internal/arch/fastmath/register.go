//go:build fastmath

// Package fastmath provides an approximate transform backend built on
// algo-approx. It is compiled only with the fastmath build tag.
package fastmath

import (
	"math"

	"github.com/cwbudde/algo-kernel/kernel/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/meko-christian/algo-approx"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "fastmath",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,
		Transform: Transform,
	})
}

// Transform approximates sqrt(|ln(x)|) + 0.5*x.
//
// Only finite positive inputs outside the band around 1 take the
// approximate path. Near 1, ln(x) is close to zero and the square root
// magnifies FastLog's absolute error, so those inputs use math.Log.
// Zero, negatives and non-finite values go through package math so that
// NaN and Inf propagate exactly as in the generic backend.
func Transform(dst, src []float64) {
	if len(dst) != len(src) {
		panic("kernel: slice length mismatch")
	}
	for i, x := range src {
		if approximable(x) {
			dst[i] = approx.FastSqrt(math.Abs(approx.FastLog(x))) + 0.5*x
			continue
		}
		dst[i] = math.Sqrt(math.Abs(math.Log(x))) + 0.5*x
	}
}

// exactBand is the half-width of the interval around 1 evaluated with
// math.Log.
const exactBand = 0.1

func approximable(x float64) bool {
	return x > 0 && !math.IsInf(x, 1) && math.Abs(x-1) >= exactBand
}
