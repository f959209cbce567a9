//go:build !amd64 || ripshuffle_opt_noprefetch

package ripshuffle

import "unsafe"

const prefetchSupported = false

func prefetchWrite(addr unsafe.Pointer) {
	_ = addr
}
