package ripshuffle

import "math/bits"

// maxUint32Bound is the largest exclusive upper bound for which the 32-bit
// sampler is used. Bounds up to 1<<32 would still be correct, but the
// rejection rate of the 32-bit path grows with the bound and the 64-bit path
// becomes faster well before the bound reaches the word size.
const maxUint32Bound = (1 << 32) / 16

// genIndex returns a uniform integer in [0, n) using Lemire's nearly
// divisionless reduction. It is functionally equivalent to a modulo draw but
// avoids the division on the fast path and is free of modulo bias.
//
// The bound must be strictly positive; this is not checked.
func genIndex(src Source, n int) int {
	if uint64(n) <= maxUint32Bound {
		return int(genIndex32(src, uint32(n)))
	}
	return int(genIndex64(src, uint64(n)))
}

func genIndex32(src Source, n uint32) uint32 {
	hi, lo := bits.Mul32(src.Uint32(), n)
	if lo >= n {
		return hi
	}
	t := -n % n
	for {
		if lo >= t {
			return hi
		}
		hi, lo = bits.Mul32(src.Uint32(), n)
	}
}

func genIndex64(src Source, n uint64) uint64 {
	hi, lo := bits.Mul64(src.Uint64(), n)
	if lo >= n {
		return hi
	}
	t := -n % n
	for {
		if lo >= t {
			return hi
		}
		hi, lo = bits.Mul64(src.Uint64(), n)
	}
}
