// Package marshal copies numeric buffers across the host/kernel boundary.
//
// Host memory is only ever read: In copies a host array into a fresh
// kernel-owned slice, Out copies a kernel-owned slice into a fresh buffer
// allocated on the host side. Values are copied verbatim, including NaN payloads,
// infinities and negative zero.
package marshal

// Source is a host-owned array of float64 values.
type Source interface {
	// Len returns the declared number of elements.
	Len() int
	// CopyTo copies up to len(dst) elements into dst and returns the count.
	CopyTo(dst []float64) int
}

// Floats adapts a Go slice, or a slice view over foreign memory, as a Source.
type Floats []float64

// Len implements Source.
func (f Floats) Len() int { return len(f) }

// CopyTo implements Source.
func (f Floats) CopyTo(dst []float64) int { return copy(dst, f) }

// In returns a kernel-owned copy of src. The result is never nil.
func In(src Source) []float64 {
	n := 0
	if src != nil {
		n = src.Len()
	}
	out := make([]float64, n)
	if n > 0 {
		src.CopyTo(out)
	}
	return out
}

// Out copies values into a buffer obtained from alloc and returns it.
// alloc returns a fresh host buffer of n values together with a writable
// view of its memory.
func Out[T any](values []float64, alloc func(n int) (T, []float64)) T {
	buf, view := alloc(len(values))
	copy(view, values)
	return buf
}
