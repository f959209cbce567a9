//go:build !ripshuffle_opt_unsafeswap

package ripshuffle

const useUnsafeSwap = false
