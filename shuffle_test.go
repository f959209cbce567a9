package ripshuffle

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingSource wraps a PCG and counts how often randomness is consumed.
type countingSource struct {
	*PCG
	calls int
}

func (c *countingSource) Uint32() uint32 {
	c.calls++
	return c.PCG.Uint32()
}

func (c *countingSource) Uint64() uint64 {
	c.calls++
	return c.PCG.Uint64()
}

func (c *countingSource) Fill(p []byte) {
	c.calls++
	c.PCG.Fill(p)
}

func TestShuffleEmptyConsumesNoRandomness(t *testing.T) {
	src := &countingSource{PCG: NewPCG(1, 1)}

	SeqShuffle([]int(nil), src)
	SeqShuffle([]int{}, src)
	ParShuffleSeedWith([]int{}, src)
	MergeShuffle([]int{}, src)
	require.Equal(t, 0, src.calls)

	ParShuffle([]int{}, NewPCG(1, 1))
}

func TestShuffleSingleElement(t *testing.T) {
	src := &countingSource{PCG: NewPCG(2, 2)}

	data := []int{42}
	SeqShuffle(data, src)
	require.Equal(t, []int{42}, data)

	ParShuffleSeedWith(data, src)
	require.Equal(t, []int{42}, data)

	MergeShuffle(data, src)
	require.Equal(t, []int{42}, data)

	require.Equal(t, 0, src.calls)
}

// TestTwoElementBalance flips a pair 100000 times; the identity outcome has
// to land within 4 sigma of half the trials.
func TestTwoElementBalance(t *testing.T) {
	src := NewPCG(1001, 17)

	const trials = 100_000
	identity := 0

	for i := 0; i < trials; i++ {
		data := []int{0, 1}
		SeqShuffle(data, src)
		if data[0] == 0 {
			identity++
		}
	}

	sigma := math.Sqrt(trials * 0.25)
	require.InDelta(t, trials/2, identity, 4*sigma)
}

// TestThreeElementFrequencies shuffles [0,1,2] a million times; each of the
// six permutations has to occur with relative frequency close to 1/6.
func TestThreeElementFrequencies(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}

	src := NewPCG(1002, 18)

	const trials = 1_000_000
	var counts [6]int

	for i := 0; i < trials; i++ {
		data := []int{0, 1, 2}
		SeqShuffle(data, src)
		counts[permRank(data)]++
	}

	for rank, c := range counts {
		freq := float64(c) / trials
		require.GreaterOrEqual(t, freq, 0.160, "permutation %d", rank)
		require.LessOrEqual(t, freq, 0.173, "permutation %d", rank)
	}
}

func TestShuffleStructElements(t *testing.T) {
	type pair struct {
		key   int
		value string
	}

	src := NewPCG(7, 7)

	data := make([]pair, 500)
	for i := range data {
		data[i] = pair{key: i, value: "v"}
	}

	SeqShuffle(data, src)

	keys := make([]int, len(data))
	for i, p := range data {
		require.Equal(t, "v", p.value)
		keys[i] = p.key
	}
	sort.Ints(keys)
	for i, k := range keys {
		require.Equal(t, i, k)
	}
}

func TestMergeShuffleConservation(t *testing.T) {
	src := NewPCG(31, 41)

	for _, n := range []int{0, 1, 2, 100, 1 << 17} {
		data := make([]int, n)
		for i := range data {
			data[i] = i
		}

		MergeShuffle(data, src)

		sorted := append([]int(nil), data...)
		sort.Ints(sorted)
		for i, v := range sorted {
			require.Equal(t, i, v, "n=%d", n)
		}
	}
}

func BenchmarkSeqShuffle(b *testing.B) {
	src := NewPCG(1, 2)
	data := make([]uint64, 1<<22)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SeqShuffle(data, src)
	}
}

func BenchmarkParShuffle(b *testing.B) {
	src := NewPCG(1, 2)
	data := make([]uint64, 1<<22)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParShuffle(data, src)
	}
}
