//go:build !ripshuffle_opt_cachelinesize_64 && !ripshuffle_opt_cachelinesize_128

package ripshuffle

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the assumed cache-line size of the target platform. It is
// automatically derived via the `golang.org/x/sys` package and sizes the
// base-case threshold of the recursive shuffles.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
