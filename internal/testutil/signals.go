// Package testutil provides deterministic inputs and float assertions
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicPrices generates a positive random walk starting at base.
// Each step moves by at most 1% of the previous price.
func DeterministicPrices(seed int64, base float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	p := base
	for i := range out {
		p *= 1 + (rng.Float64()*2-1)*0.01
		out[i] = p
	}
	return out
}

// DeterministicVolumes generates volumes uniformly distributed in [0, maxVolume).
func DeterministicVolumes(seed int64, maxVolume float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64() * maxVolume
	}
	return out
}

// Ramp returns start, start+step, start+2*step, ...
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// DC generates a constant-valued slice.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Special returns the IEEE-754 edge values: signed zeros, infinities, NaN,
// the smallest subnormal and the largest finite value.
func Special() []float64 {
	return []float64{
		0,
		math.Copysign(0, -1),
		math.Inf(1),
		math.Inf(-1),
		math.NaN(),
		math.SmallestNonzeroFloat64,
		math.MaxFloat64,
	}
}
