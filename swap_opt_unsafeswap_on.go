//go:build ripshuffle_opt_unsafeswap

package ripshuffle

// Unchecked swap kernels selected. Element types must be free of pointers;
// see swapRangesUnchecked.
const useUnsafeSwap = true
