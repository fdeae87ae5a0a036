package kernel

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func resetTransformDispatchForTest() {
	transformImpl = nil
	transformName = ""
	transformInitOnce = sync.Once{}
}

func TestTransformDispatchForceGeneric(t *testing.T) {
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	defer cpu.ResetDetection()

	resetTransformDispatchForTest()
	defer resetTransformDispatchForTest()

	backends := Backends()
	if len(backends) == 0 {
		t.Fatal("no backends registered")
	}

	// With SIMD disabled the highest-priority SIMD-free backend wins.
	var want string
	for _, b := range backends {
		if b.SIMDLevel == cpu.SIMDNone {
			want = b.Name
			break
		}
	}
	if got := Implementation(); got != want {
		t.Fatalf("Implementation() = %q, want %q", got, want)
	}
}

func TestBackendsIncludeGeneric(t *testing.T) {
	for _, b := range Backends() {
		if b.Name == "generic" {
			if b.Priority != 0 {
				t.Fatalf("generic priority = %d, want 0", b.Priority)
			}
			return
		}
	}
	t.Fatal("generic backend not registered")
}
