package ripshuffle

import (
	"unsafe"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// maxFanOut is the default number of buckets per partition level.
	maxFanOut = 256

	// stagingBlockItems is the minimum staging reserve per bucket; the
	// fan-out is halved until every bucket holds at least this many items,
	// and inputs too small for even a 2-way split fall through to the
	// Fisher-Yates base case.
	stagingBlockItems = 64

	// seqBaseCaseBytes is the input size below which recursion stops and the
	// run is shuffled directly with Fisher-Yates. Half an L2 slice is a
	// conservative cross-hardware default.
	seqBaseCaseBytes = 4096 * int(CacheLineSize)
)

// seqScatterShuffle shuffles data with the cache-aware recursive
// scatter-shuffle: partition into buckets, then shuffle each bucket,
// recursing until a bucket fits the base case.
func seqScatterShuffle[T any](src Source, data []T) {
	seqScatterShuffleImpl(src, data, seqConfig[T]())
}

// scatterConfig carries the tuning knobs of the recursion so tests can
// exercise the partition machinery on small inputs.
type scatterConfig struct {
	maxK      int
	baseCase  int
	minBucket int
}

func seqConfig[T any]() scatterConfig {
	return scatterConfig{
		maxK:      maxFanOut,
		baseCase:  seqBaseCaseItems[T](),
		minBucket: stagingBlockItems,
	}
}

func seqBaseCaseItems[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}
	return max(2*maxFanOut*stagingBlockItems, seqBaseCaseBytes/size)
}

func seqScatterShuffleImpl[T any](src Source, data []T, cfg scatterConfig) {
	n := len(data)
	if n <= cfg.baseCase {
		fisherYates(src, data)
		return
	}

	k := fanOut(n, cfg)
	if k < 2 {
		fisherYates(src, data)
		return
	}

	bs := splitIntoBuckets(n, k)
	roughShuffle(src, data, bs)

	residual := shuffleResiduals(src, data, bs, func(d []T) {
		seqScatterShuffleImpl(src, d, cfg)
	})

	targets := make([]int, k)
	drawTargetLengths(src, residual, bs, targets)
	fitTargetLengths(data, bs, targets)

	for i := range bs {
		seqScatterShuffleImpl(src, data[bs[i].begin:bs[i].end], cfg)
	}
}

// fanOut picks the partition width: the largest power of two not above
// cfg.maxK for which every bucket keeps at least cfg.minBucket items.
// Returns a value below 2 when no split is worthwhile.
func fanOut(n int, cfg scatterConfig) int {
	k := cfg.maxK
	for k >= 2 && n < k*cfg.minBucket {
		k >>= 1
	}
	return k
}

// shuffleResiduals shuffles the items left unplaced by the partition sweep so
// their relative order carries no information, and returns their count.
//
// Normally the residuals fit the last bucket: they are compacted into one
// contiguous run at its tail, shuffled by recursing, and swapped back. For
// degenerate inputs where they do not fit, the residual staging areas are
// shuffled in place across buckets instead.
func shuffleResiduals[T any](src Source, data []T, bs []bucket, recurse func([]T)) int {
	total := 0
	for i := range bs {
		total += bs[i].staged()
	}

	last := &bs[len(bs)-1]
	if total <= last.len() {
		compactResiduals(data, bs)
		recurse(data[last.end-total : last.end])
		compactResiduals(data, bs)
	} else {
		ranges := make([][]T, 0, len(bs))
		for i := range bs {
			if bs[i].staged() > 0 {
				ranges = append(ranges, data[bs[i].head():bs[i].end])
			}
		}
		noncontiguousFisherYates(src, ranges)
	}

	return total
}

// drawTargetLengths assigns the residual items to buckets and writes the
// final bucket lengths to targets. The residual counts are drawn by chained
// binomial splitting, which realizes an exact multinomial: together with the
// i.i.d. placements of the partition sweep this makes the bucket sizes
// distributed exactly as if every item had drawn its bucket independently.
// The tail bucket takes the remainder.
func drawTargetLengths(src Source, residual int, bs []bucket, targets []int) {
	gs := gonumSource{src: src}
	balls := residual

	for i := range bs {
		remaining := len(bs) - i

		extra := balls
		if remaining > 1 && balls > 0 {
			bin := distuv.Binomial{
				N:   float64(balls),
				P:   1 / float64(remaining),
				Src: gs,
			}
			extra = int(bin.Rand())
		}

		balls -= extra
		targets[i] = bs[i].placed + extra
	}
}

// fitTargetLengths moves the bucket boundaries so bucket i ends up with
// exactly targets[i] items. Two sweeps suffice: the right sweep pushes every
// surplus toward higher buckets, the left sweep pulls the remaining surplus
// back down. Both sweeps only move staged items, so every placed prefix
// survives untouched.
func fitTargetLengths[T any](data []T, bs []bucket, targets []int) {
	for i := 0; i < len(bs)-1; i++ {
		b := &bs[i]
		if b.len() <= targets[i] {
			continue
		}
		shedRight(data, b, &bs[i+1], b.len()-targets[i])
	}

	for i := len(bs) - 1; i >= 1; i-- {
		b := &bs[i]
		if b.len() <= targets[i] {
			continue
		}
		takeRight(data, &bs[i-1], b, b.len()-targets[i])
	}
}
