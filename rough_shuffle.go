package ripshuffle

import (
	"math/bits"
	"unsafe"
)

// roughShuffle is phase 1 of the scatter partition. It sweeps the staging
// head of the first bucket and, for every item there, draws a uniform target
// bucket: a draw of the first bucket places the item where it stands, any
// other draw swaps it against the target's staging head and places it there.
// Either way exactly one head advances per draw, so every placed item is an
// independent uniform assignment and the conservation invariant
// sum(placed) + sum(staged) == n holds after every step.
//
// The sweep stops as soon as any bucket runs out of staging items; the
// leftovers are handled by the caller's drain phase.
//
// Preconditions: len(bs) is a power of two and no bucket is empty.
func roughShuffle[T any](src Source, data []T, bs []bucket) {
	for i := range bs {
		if bs[i].fullyPlaced() {
			return
		}
	}

	logK := uint(bits.TrailingZeros(uint(len(bs))))

	if prefetchSupported {
		roughShuffleBatched(src, data, bs, logK)
		// the batched kernel bails out near the end of a bucket; the plain
		// loop finishes the tail
		for i := range bs {
			if bs[i].fullyPlaced() {
				return
			}
		}
	}
	roughShufflePlain(src, data, bs, logK)
}

func roughShufflePlain[T any](src Source, data []T, bs []bucket, logK uint) {
	var rbs bitSource
	active := &bs[0]
	partners := bs[1:]

	for {
		idx := int(rbs.next(src, logK))
		if idx < len(partners) {
			p := &partners[idx]
			i, j := active.head(), p.head()
			data[i], data[j] = data[j], data[i]
			p.placed++
			if p.fullyPlaced() {
				return
			}
		} else {
			active.placed++
			if active.fullyPlaced() {
				return
			}
		}
	}
}

// roughBatch is the number of bucket indices drawn per batch in the
// prefetching kernel. Two batches are in flight: while one executes, the
// other's target heads are already being pulled into cache.
const roughBatch = 8

// roughShuffleBatched executes the same placement step as roughShufflePlain
// but draws bucket indices in batches so the target cache lines can be
// prefetched a full batch ahead of their swaps. Head positions move by at
// most roughBatch between hint and access, which keeps the hints accurate
// enough; they carry no semantics either way.
//
// The kernel does nothing when the shortest bucket starts with fewer than
// 4*roughBatch staging items, and returns at the first batch boundary where
// some bucket has fewer than roughBatch staging items left, leaving the exact
// draining to the plain loop. The roughBatch indices already drawn for the
// next batch are discarded at that point, which is safe because drawing has
// no effect on the slice.
func roughShuffleBatched[T any](src Source, data []T, bs []bucket, logK uint) {
	minStaged := bs[0].staged()
	for i := 1; i < len(bs); i++ {
		if s := bs[i].staged(); s < minStaged {
			minStaged = s
		}
	}
	if minStaged < 4*roughBatch {
		return
	}

	var rbs bitSource
	active := &bs[0]
	partners := bs[1:]

	fill := func(batch *[roughBatch]int) {
		for m := range batch {
			batch[m] = int(rbs.next(src, logK))
		}
		for _, idx := range batch {
			var b *bucket
			if idx < len(partners) {
				b = &partners[idx]
			} else {
				b = active
			}
			if !b.fullyPlaced() {
				prefetchWrite(unsafe.Pointer(&data[b.head()]))
			}
		}
	}

	var batches [2][roughBatch]int
	cur := &batches[0]
	nxt := &batches[1]
	fill(cur)

	// budget counts the guaranteed-safe steps before a head could run out
	budget := minStaged - 2*roughBatch
	for budget >= roughBatch {
		fill(nxt)
		for _, idx := range cur {
			if idx < len(partners) {
				p := &partners[idx]
				i, j := active.head(), p.head()
				data[i], data[j] = data[j], data[i]
				p.placed++
				if p.staged() < budget {
					budget = p.staged()
				}
			} else {
				active.placed++
				if active.staged() < budget {
					budget = active.staged()
				}
			}
		}
		cur, nxt = nxt, cur
	}
}
