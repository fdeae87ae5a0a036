package kernel

import (
	"math"
	"sync"

	archregistry "github.com/cwbudde/algo-kernel/kernel/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	transformImpl     archregistry.TransformFn
	transformName     string
	transformInitOnce sync.Once
)

func initTransformKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no transform registered (missing generic fallback?)")
	}

	if entry.Transform == nil {
		panic("kernel: selected implementation missing Transform")
	}

	transformImpl = entry.Transform
	transformName = entry.Name
}

// Double returns sqrt(|ln(x)|) + 0.5*x.
//
// No input is special-cased: Double(0) is +Inf (ln(0) = -Inf), negative
// inputs, NaN and -Inf give NaN, and Double(+Inf) is +Inf.
func Double(x float64) float64 {
	return math.Sqrt(math.Abs(math.Log(x))) + 0.5*x
}

// Transform writes Double(src[i]) into dst[i] using the selected backend.
// Slices must have equal length and may alias. Panics if lengths differ.
func Transform(dst, src []float64) {
	if len(dst) != len(src) {
		panic("kernel: slice length mismatch")
	}
	transformInitOnce.Do(initTransformKernel)
	transformImpl(dst, src)
}

// ComputeDouble returns a new slice holding the transform of input.
// The result has len(input) elements and is never nil.
func ComputeDouble(input []float64) []float64 {
	out := make([]float64, len(input))
	Transform(out, input)
	return out
}

// Implementation reports the name of the selected transform backend.
func Implementation() string {
	transformInitOnce.Do(initTransformKernel)
	return transformName
}
