package kernel

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-kernel/internal/testutil"
)

func BenchmarkComputeDouble(b *testing.B) {
	sizes := []int{64, 1024, 16384, 65536}
	for _, n := range sizes {
		in := testutil.DeterministicPrices(1, 100, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				ComputeDouble(in)
			}
		})
	}
}

func BenchmarkWeightedAverage(b *testing.B) {
	sizes := []int{64, 1024, 16384, 65536}
	for _, n := range sizes {
		prices := testutil.DeterministicPrices(1, 100, n)
		volumes := testutil.DeterministicVolumes(2, 1000, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(2 * n * 8))

			for range b.N {
				_, _ = WeightedAverage(prices, volumes)
			}
		})
	}
}
