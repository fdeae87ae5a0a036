package kernel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Result is a checked weighted average.
type Result struct {
	Value       float64 // sum(p*v) / sum(v) over finite pairs
	TotalWeight float64 // sum(v) over finite pairs
	Pairs       int     // pairs accumulated
	Skipped     int     // pairs dropped because p or v was NaN or Inf
}

// ComputeVWAP returns the volume-weighted average of prices as a
// one-element slice.
//
// Mismatched lengths, empty input and a zero total volume all yield
// []float64{0}. Use WeightedAverage to tell these cases apart.
func ComputeVWAP(prices, volumes []float64) []float64 {
	res, err := WeightedAverage(prices, volumes)
	if err != nil {
		return []float64{0}
	}
	return []float64{res.Value}
}

// WeightedAverage computes sum(p*v)/sum(v) over all index pairs where both
// price and volume are finite. Accumulation runs left to right in index
// order, so results are reproducible bit for bit.
func WeightedAverage(prices, volumes []float64) (Result, error) {
	n := len(prices)
	if len(volumes) != n {
		return Result{}, fmt.Errorf("%w: %d prices, %d volumes", ErrLengthMismatch, n, len(volumes))
	}
	if n == 0 {
		return Result{}, ErrEmptyInput
	}

	products := make([]float64, n)
	vecmath.MulBlock(products, prices, volumes)

	var (
		res Result
		num float64
	)
	for i, p := range prices {
		v := volumes[i]
		if !isFinite(p) || !isFinite(v) {
			res.Skipped++
			continue
		}
		num += products[i]
		res.TotalWeight += v
		res.Pairs++
	}

	if res.TotalWeight == 0 {
		return res, fmt.Errorf("%w: %d of %d pairs finite", ErrZeroWeight, res.Pairs, n)
	}

	res.Value = num / res.TotalWeight
	return res, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
