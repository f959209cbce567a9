package ripshuffle

import (
	"encoding/binary"
	"math/rand/v2"
)

// Source is the random-number capability consumed by every shuffle in this
// package. Implementations must produce uniformly distributed words; all
// de-biasing for bounded draws happens inside the package. A Source is not
// required to be safe for concurrent use: the sequential shuffles own it for
// the duration of the call, and the parallel shuffle only ever hands disjoint
// child sources to its tasks.
type Source interface {
	// Uint32 returns a uniformly distributed 32-bit word.
	Uint32() uint32
	// Uint64 returns a uniformly distributed 64-bit word.
	Uint64() uint64
	// Fill fills p with uniformly distributed bytes.
	Fill(p []byte)
}

// Splittable is a Source that can derive independently seeded child sources.
// Children must not be a linear transformation of the parent state; the
// packaged PCG source derives children by drawing fresh seed bytes from the
// parent stream.
type Splittable interface {
	Source
	// Split returns a new source seeded from this one. The parent remains
	// valid and both streams are independent.
	Split() Splittable
}

// PCG is the packaged default source, a splittable wrapper around the
// PCG generator of math/rand/v2. It is fast, has 128 bits of state and is
// cheap to reseed, which makes it a good fit for the per-task sources of the
// parallel shuffle. It is not cryptographically secure.
type PCG struct {
	pcg rand.PCG
}

// NewPCG returns a PCG source seeded with the given pair of words.
func NewPCG(seed1, seed2 uint64) *PCG {
	p := &PCG{}
	p.pcg = *rand.NewPCG(seed1, seed2)
	return p
}

// NewPCGFrom returns a PCG source seeded with 16 bytes drawn from src.
func NewPCGFrom(src Source) *PCG {
	var seed [16]byte
	src.Fill(seed[:])
	return NewPCG(
		binary.LittleEndian.Uint64(seed[0:8]),
		binary.LittleEndian.Uint64(seed[8:16]),
	)
}

// Uint64 returns a uniformly distributed 64-bit word.
func (p *PCG) Uint64() uint64 {
	return p.pcg.Uint64()
}

// Uint32 returns a uniformly distributed 32-bit word. The high half of the
// underlying 64-bit output is used.
func (p *PCG) Uint32() uint32 {
	return uint32(p.pcg.Uint64() >> 32)
}

// Fill fills b with uniformly distributed bytes.
func (p *PCG) Fill(b []byte) {
	for len(b) >= 8 {
		binary.LittleEndian.PutUint64(b, p.pcg.Uint64())
		b = b[8:]
	}
	if len(b) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], p.pcg.Uint64())
		copy(b, tail[:])
	}
}

// Split returns a child PCG seeded from this source.
func (p *PCG) Split() Splittable {
	return NewPCGFrom(p)
}

// gonumSource adapts a Source to the rand source interface consumed by the
// gonum samplers, so that distribution draws stay on the caller's stream and
// the determinism guarantee of the shuffles is preserved.
type gonumSource struct {
	src Source
}

func (g gonumSource) Uint64() uint64 {
	return g.src.Uint64()
}

// Seed is required by the interface; the stream is owned by the caller and is
// never reseeded from here.
func (g gonumSource) Seed(uint64) {}
