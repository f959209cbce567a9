//go:build amd64 && !ripshuffle_opt_noprefetch

package ripshuffle

import "unsafe"

// prefetchSupported reports whether prefetchWrite is a real hint on this
// build. Callers use it to collapse lookahead rings to single-step when the
// hint would be a no-op anyway.
const prefetchSupported = true

// prefetchWrite hints that the cache line containing addr is about to be
// written. It has no observable semantics.
//
//go:noescape
func prefetchWrite(addr unsafe.Pointer)
