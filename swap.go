package ripshuffle

import "unsafe"

// swapRanges exchanges the contents of two equal-length, non-overlapping
// ranges. The kernel is selected at compile time; see the
// ripshuffle_opt_unsafeswap option files.
func swapRanges[T any](a, b []T) {
	if useUnsafeSwap {
		swapRangesUnchecked(a, b)
	} else {
		swapRangesChecked(a, b)
	}
}

// swapRangesChecked is the element-wise, bounds-checked kernel. It works for
// every element type.
func swapRangesChecked[T any](a, b []T) {
	if len(a) != len(b) {
		panic("ripshuffle: swap of unequal ranges")
	}
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

// swapScratchBytes is the size of the stack buffer the unchecked kernel moves
// bytes through. Larger ranges are exchanged in chunks of this size.
const swapScratchBytes = 512

// swapRangesUnchecked exchanges the two ranges byte-wise through a stack
// scratch buffer.
//
// Preconditions, enforced by the caller: equal length, no overlap, and an
// element type that contains no pointers. The byte moves bypass the write
// barrier, so pointer-bearing elements may be missed by a concurrent garbage
// collection cycle.
func swapRangesUnchecked[T any](a, b []T) {
	if len(a) == 0 {
		return
	}
	n := uintptr(len(a)) * unsafe.Sizeof(a[0])
	pa := unsafe.Pointer(unsafe.SliceData(a))
	pb := unsafe.Pointer(unsafe.SliceData(b))

	var scratch [swapScratchBytes]byte
	for n > 0 {
		c := n
		if c > swapScratchBytes {
			c = swapScratchBytes
		}
		ab := unsafe.Slice((*byte)(pa), c)
		bb := unsafe.Slice((*byte)(pb), c)
		copy(scratch[:c], ab)
		copy(ab, bb)
		copy(bb, scratch[:c])
		pa = unsafe.Add(pa, c)
		pb = unsafe.Add(pb, c)
		n -= c
	}
}
