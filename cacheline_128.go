//go:build ripshuffle_opt_cachelinesize_128

package ripshuffle

const CacheLineSize = 128
