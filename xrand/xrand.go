/*
Package xrand is the PRNG collaborator every randomized algorithm in this
module takes as an explicit argument: Karger–Stein's contraction order, the
clustering-coefficient sampler's trials, and the random-graph test fixture.
Nothing in the algorithms package seeds its own randomness — callers supply
a Source, so results are reproducible given a fixed seed.
*/
package xrand

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the capability the algorithms package needs from a PRNG: draw a
// uniform uint64, or reseed deterministically.
type Source interface {
	Uint64() uint64
	Reseed(seed uint64)
}

// pcgSource wraps math/rand/v2's PCG generator, the generator used
// everywhere a concrete default Source is needed and the caller hasn't
// brought their own.
type pcgSource struct {
	pcg *rand.PCG
}

// NewPCGSource returns a Source backed by math/rand/v2's PCG generator,
// seeded deterministically from seed.
func NewPCGSource(seed uint64) Source {
	return &pcgSource{pcg: rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)}
}

func (s *pcgSource) Uint64() uint64 { return s.pcg.Uint64() }

func (s *pcgSource) Reseed(seed uint64) {
	s.pcg = rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)
}

// seedUniquifier is a process-wide xoroshiro128+ generator (its two state
// words seeded through splitmix64 steps), guarded by a mutex
// exactly like the teacher's own in-memory counters guard their state with
// sync.RWMutex. It exists so repeated calls to NewSeed within the same
// nanosecond still diverge.
type seedUniquifier struct {
	mu     sync.Mutex
	s0, s1 uint64
}

const phi = 0x9E3779B97F4A7C15

func staffordMix13(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

func newSeedUniquifier(seed uint64) *seedUniquifier {
	// murmur3 finalizer
	seed ^= seed >> 33
	seed *= 0xff51afd7ed558ccd
	seed ^= seed >> 33
	seed *= 0xc4ceb9fe1a85ec53
	seed ^= seed >> 33

	seed += phi
	s0 := staffordMix13(seed)
	seed += phi
	s1 := staffordMix13(seed)
	return &seedUniquifier{s0: s0, s1: s1}
}

func (g *seedUniquifier) next() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	s0, s1 := g.s0, g.s1
	result := s0 + s1
	s1 ^= s0
	g.s0 = rotl(s0, 24) ^ s1 ^ (s1 << 16)
	g.s1 = rotl(s1, 37)
	return result
}

func rotl(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

var globalSeedUniquifier = newSeedUniquifier(uint64(time.Now().UnixNano()))

// NewSeed returns a fresh process-wide-unique seed, suitable for handing to
// NewPCGSource when a caller wants a reproducible-but-not-hardcoded run.
func NewSeed() uint64 {
	return globalSeedUniquifier.next() ^ uint64(time.Now().UnixNano())
}
