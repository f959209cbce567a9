package ripshuffle

import "unsafe"

const (
	// fyPrefetchWidth is the lookahead of the prefetched Fisher-Yates: the
	// number of sampled indices in flight between the draw that prefetches
	// an element and the swap that touches it.
	fyPrefetchWidth = 16
)

// fisherYates shuffles data in place so that every permutation is equally
// likely. It is the base case of the recursive shuffles and is also exposed
// through SeqShuffle for inputs below the recursion threshold.
func fisherYates[T any](src Source, data []T) {
	if prefetchSupported && len(data) > 2*fyPrefetchWidth {
		prefetchFisherYates(src, data)
		return
	}
	naiveFisherYates(src, data)
}

// naiveFisherYates is the classic descending swap loop.
func naiveFisherYates[T any](src Source, data []T) {
	for i := len(data) - 1; i > 0; i-- {
		j := genIndex(src, i+1)
		data[i], data[j] = data[j], data[i]
	}
}

// prefetchFisherYates runs the same loop but keeps a ring of fyPrefetchWidth
// pre-drawn indices. Each step draws the index needed fyPrefetchWidth swaps
// ahead, issues a write-prefetch for its element, and performs the swap for
// the oldest ring entry. Drawing ahead is safe because sampling has no side
// effect on the slice; the ring padding drawn at shutdown is discarded.
func prefetchFisherYates[T any](src Source, data []T) {
	const width = fyPrefetchWidth

	n := len(data)
	if n <= 2*width {
		naiveFisherYates(src, data)
		return
	}

	var ring [width]int
	ringIdx := 0
	enqueue := func(v int) int {
		old := ring[ringIdx]
		ring[ringIdx] = v
		ringIdx = (ringIdx + 1) % width
		return old
	}
	drawAndFetch := func(ub int) int {
		j := genIndex(src, ub)
		prefetchWrite(unsafe.Pointer(&data[j]))
		return j
	}

	// warm the ring with the draws for the first width positions
	for i := n - 1; i >= n-width; i-- {
		enqueue(drawAndFetch(i + 1))
	}

	// steady state: the draw for position i-width pairs with the swap for i
	for i := n - 1; i > width; i-- {
		j := enqueue(drawAndFetch(i - width + 1))
		data[i], data[j] = data[j], data[i]
	}

	// drain the ring; the zero paddings pushed here are never used as swaps
	for i := width; i > 0; i-- {
		j := enqueue(0)
		data[i], data[j] = data[j], data[i]
	}
}

// noncontiguousFisherYates shuffles a set of disjoint ranges as one logical
// sequence. Positions are addressed as (range, offset) pairs and out-of-range
// offsets are rejected, which keeps the draw uniform over the remaining
// prefix. It assumes ranges of roughly equal length and pays a rejection
// overhead for every draw; the scatter-shuffle only reaches it when the
// residual staging items of a partition do not fit the last bucket, which
// requires a tiny input.
func noncontiguousFisherYates[T any](src Source, ranges [][]T) {
	if len(ranges) == 0 {
		return
	}

	maxLen := 0
	for _, r := range ranges {
		if len(r) > maxLen {
			maxLen = len(r)
		}
	}
	maxLenTol := len(ranges) * maxLen / 2

	for ri := len(ranges) - 1; ri >= 0; ri-- {
		start := 0
		if ri == 0 {
			start = 1
		}

		for i := len(ranges[ri]) - 1; i >= start; i-- {
			for {
				var ub int
				if ri == 0 {
					ub = i
				} else {
					// refresh the rejection bound occasionally so it
					// tightens as whole ranges are completed
					if maxLenTol == 0 {
						maxLen = 0
						for _, r := range ranges[:ri+1] {
							if len(r) > maxLen {
								maxLen = len(r)
							}
						}
						maxLenTol = (ri + 1) * maxLen / 2
					} else {
						maxLenTol--
					}
					ub = maxLen
				}

				jr := genIndex(src, ri+1)
				j := genIndex(src, ub+1)

				// offsets past i in the current range are already final
				if j < len(ranges[jr]) && (jr < ri || j <= i) {
					ranges[ri][i], ranges[jr][j] = ranges[jr][j], ranges[ri][i]
					break
				}
			}
		}
	}
}
