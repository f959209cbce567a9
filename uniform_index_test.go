package ripshuffle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenIndexBelowBound(t *testing.T) {
	src := NewPCG(1234, 0)

	for _, ub := range []int{1, 2, 5, 10, 1000, maxUint32Bound + 5} {
		for i := 0; i < 1000; i++ {
			v := genIndex(src, ub)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, ub)
		}
	}
}

// TestGenIndexMatchesExpectation is a coarse sanity check: the sum of many
// draws has to land in the middle half of its possible range.
func TestGenIndexMatchesExpectation(t *testing.T) {
	src := NewPCG(12345, 0)
	const iterations = 1000

	for _, ub := range []uint64{100, 1000, 10000, 1 << 40} {
		var sum uint64
		for i := 0; i < iterations; i++ {
			sum += genIndex64(src, ub)
		}
		require.Greater(t, sum, iterations*ub/4)
		require.Less(t, sum, iterations*ub*3/4)
	}
}

func TestGenIndex32MatchesExpectation(t *testing.T) {
	src := NewPCG(54321, 0)
	const iterations = 1000

	for _, ub := range []uint32{100, 1000, 10000, 1 << 20} {
		var sum uint64
		for i := 0; i < iterations; i++ {
			sum += uint64(genIndex32(src, ub))
		}
		require.Greater(t, sum, uint64(iterations)*uint64(ub)/4)
		require.Less(t, sum, uint64(iterations)*uint64(ub)*3/4)
	}
}

// TestGenIndexSmallBoundsExact exercises every bound up to 64 and checks that
// every admissible value is eventually produced.
func TestGenIndexSmallBoundsExact(t *testing.T) {
	src := NewPCG(31337, 0)

	for ub := 1; ub <= 64; ub++ {
		seen := make([]bool, ub)
		for i := 0; i < 200*ub; i++ {
			seen[genIndex(src, ub)] = true
		}
		for v, ok := range seen {
			require.True(t, ok, "bound %d: value %d never drawn", ub, v)
		}
	}
}
