// Package generic provides the exact, pure-Go transform backend.
package generic

import (
	"math"

	"github.com/cwbudde/algo-kernel/kernel/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the generic implementation as the baseline fallback.
//
// Priority: 0 (lowest - used only when nothing else is registered)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Transform: Transform,
	})
}

// Transform writes sqrt(|ln(x)|) + 0.5*x for every x in src into dst.
// Slices must have equal length. Panics if lengths differ.
func Transform(dst, src []float64) {
	if len(dst) != len(src) {
		panic("kernel: slice length mismatch")
	}
	for i, x := range src {
		dst[i] = math.Sqrt(math.Abs(math.Log(x))) + 0.5*x
	}
}
