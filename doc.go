// Package ripshuffle provides high-performance, in-place uniform random
// permutation of slices.
//
// The package exposes two entry points. SeqShuffle is a drop-in replacement
// for a Fisher-Yates shuffle that is typically noticeably faster on large
// inputs due to a cache-aware recursive scatter-shuffle. ParShuffle
// additionally distributes the recursion over goroutines and reaches much
// higher throughput on inputs of a million elements and more.
//
// Both variants are strictly in-place: no heap allocation proportional to the
// input size is performed, only bounded per-call scratch. The permutation
// depends only on the random source provided, so a deterministic source
// yields the same output on every run of the same build.
//
// Randomness is consumed through the Source capability; seeding is the
// caller's responsibility. ParShuffle requires a Splittable source so that
// every parallel task owns an independently seeded child. Callers without a
// splittable generator can use ParShuffleSeedWith, which seeds the packaged
// PCG source from any Source.
//
// Compile-time options follow the build-tag convention of the option files in
// this package:
//
//   - ripshuffle_opt_noprefetch disables software write-prefetch hints
//   - ripshuffle_opt_unsafeswap selects the unchecked block-swap kernels
//   - ripshuffle_opt_cachelinesize_64 / _128 pin the assumed cache-line size
package ripshuffle
