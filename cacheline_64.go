//go:build ripshuffle_opt_cachelinesize_64

package ripshuffle

const CacheLineSize = 64
