// Package kernel implements the numeric operations exposed to host
// runtimes: an elementwise transform and a volume-weighted average.
//
// Every function here is a pure function of its arguments. Inputs are
// read, never written; results are freshly allocated slices owned by the
// caller. Non-finite values follow IEEE-754 arithmetic in the transform
// and are skipped pairwise in the weighted average.
//
// ComputeDouble and ComputeVWAP mirror the exported boundary surface, with
// ComputeVWAP returning the historical sentinel 0.0 for invalid input.
// WeightedAverage returns the same value together with a distinct error
// for each invalid case.
package kernel
