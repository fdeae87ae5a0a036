package kernel

import (
	archregistry "github.com/cwbudde/algo-kernel/kernel/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Backend describes a registered transform implementation.
type Backend struct {
	Name      string
	Priority  int
	SIMDLevel cpu.SIMDLevel
}

// Backends lists the compiled-in transform implementations, highest
// priority first.
func Backends() []Backend {
	entries := archregistry.Global.ListEntries()
	out := make([]Backend, len(entries))
	for i, e := range entries {
		out[i] = Backend{Name: e.Name, Priority: e.Priority, SIMDLevel: e.SIMDLevel}
	}
	return out
}
