//go:build cgo

// Command libkernel builds the kernel as a C shared library:
//
//	go build -buildmode=c-shared -o libkernel.so ./cmd/libkernel
//
// Results are allocated on the C heap and must be released with
// kernel_free. Input arrays are copied and never written.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/cwbudde/algo-kernel/internal/marshal"
)

// compute_double returns a new array of n transformed values, or NULL
// when n is 0.
//
//export compute_double
func compute_double(in *C.double, n C.size_t) *C.double {
	return computeDouble(hostArray(in, n), cHeap)
}

// compute_vwap returns a new one-element array holding the weighted
// average, 0.0 for invalid input.
//
//export compute_vwap
func compute_vwap(prices *C.double, np C.size_t, vols *C.double, nv C.size_t) *C.double {
	return computeVWAP(hostArray(prices, np), hostArray(vols, nv), cHeap)
}

// compute_vwap_checked stores the weighted average in *out and returns a
// status code; *out is 0.0 unless the status is 0.
//
//export compute_vwap_checked
func compute_vwap_checked(prices *C.double, np C.size_t, vols *C.double, nv C.size_t, out *C.double) C.int {
	value, status := computeVWAPChecked(hostArray(prices, np), hostArray(vols, nv))
	if out != nil {
		*out = C.double(value)
	}
	return C.int(status)
}

// kernel_free releases an array returned by this library.
//
//export kernel_free
func kernel_free(p *C.double) {
	C.free(unsafe.Pointer(p))
}

// hostArray views n doubles at p without copying.
func hostArray(p *C.double, n C.size_t) marshal.Floats {
	if p == nil || n == 0 {
		return nil
	}
	return marshal.Floats(unsafe.Slice((*float64)(unsafe.Pointer(p)), int(n)))
}

// cHeap allocates n doubles with malloc. n == 0 yields NULL.
func cHeap(n int) (*C.double, []float64) {
	if n == 0 {
		return nil, nil
	}
	p := (*C.double)(C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(float64(0)))))
	return p, unsafe.Slice((*float64)(unsafe.Pointer(p)), n)
}

func main() {}
