package main

import (
	"github.com/cwbudde/algo-kernel/internal/marshal"
	"github.com/cwbudde/algo-kernel/kernel"
)

// computeDouble copies in, transforms the kernel-owned copy and copies
// the result out through alloc.
func computeDouble[T any](in marshal.Source, alloc func(n int) (T, []float64)) T {
	v := marshal.In(in)
	kernel.Transform(v, v)
	return marshal.Out(v, alloc)
}

// computeVWAP returns the one-element sentinel average through alloc.
func computeVWAP[T any](prices, vols marshal.Source, alloc func(n int) (T, []float64)) T {
	p := marshal.In(prices)
	v := marshal.In(vols)
	return marshal.Out(kernel.ComputeVWAP(p, v), alloc)
}

// computeVWAPChecked returns the weighted average and its status code.
// The value is 0 unless the status is statusOK.
func computeVWAPChecked(prices, vols marshal.Source) (float64, int) {
	res, err := kernel.WeightedAverage(marshal.In(prices), marshal.In(vols))
	if err != nil {
		return 0, statusOf(err)
	}
	return res.Value, statusOK
}
