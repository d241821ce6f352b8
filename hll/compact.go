package hll

import (
	"math"

	"github.com/samborick/graphball/bitarray"
)

// CompactHLL is the bit-packed HyperLogLog sketch: registers are exactly as
// wide as the largest rank a HyperLogLog with the expected cardinality can
// ever observe, packed into a bitarray.BitArray instead of one byte each.
// Given the same (seed, hasher, Register call sequence) as a ByteHLL, a
// CompactHLL produces the same register values, widened or narrowed by the
// packing only — never a different count.
type CompactHLL struct {
	registers *bitarray.BitArray
	b         B
	mMinus1   uint64
	alphaMM   float64
	seed      uint64
	hasher    BuildHasher
}

// compactRegisterSize computes the register width needed so that a register
// can hold the largest rank expected when roughly nExpected items are
// eventually registered: max(5, ceil(log2(ln(nExpected)/ln(2)))).
func compactRegisterSize(nExpected uint64) uint8 {
	n := float64(nExpected)
	if n < math.E {
		return 5
	}
	bits := math.Ceil(math.Log2(math.Log(n) / math.Ln2))
	if bits < 5 {
		return 5
	}
	return uint8(bits)
}

// NewCompactHLL allocates a sketch with m = 2^b registers sized to hold ranks
// for roughly nExpected distinct items, seeded with seed and hashing
// observations through hasher.
func NewCompactHLL(b B, nExpected uint64, seed uint64, hasher BuildHasher) *CompactHLL {
	m := b.M()
	return &CompactHLL{
		registers: bitarray.New(compactRegisterSize(nExpected), m),
		b:         b,
		mMinus1:   uint64(m) - 1,
		alphaMM:   alpha(m) * float64(m) * float64(m),
		seed:      seed,
		hasher:    hasher,
	}
}

// Register hashes item through the sketch's build-hasher, mixes it with the
// sketch's seed, and grows the indexed register if the observed rank is
// larger than what's already stored.
func (h *CompactHLL) Register(item uint64) {
	hasher := h.hasher()
	var buf [8]byte
	putUint64(buf[:], item)
	hasher.Write(buf[:])
	mixed := jenkinsMix(hasher.Sum64(), h.seed)
	j, r := registerIndexAndRank(mixed, h.b, h.mMinus1)
	if r > h.registers.Get(j) {
		h.registers.Set(j, r)
	}
}

// Estimate returns the sketch's current cardinality estimate.
func (h *CompactHLL) Estimate() float64 {
	harmonic := 0.0
	zeros := 0
	for _, r := range h.registers.Iter() {
		harmonic += 1.0 / float64(uint64(1)<<r)
		if r == 0 {
			zeros++
		}
	}
	return estimate(h.alphaMM, harmonic, h.registers.Len(), zeros)
}

// UnionOnto takes the element-wise register max of h into other (a
// *CompactHLL), returning whether other changed.
func (h *CompactHLL) UnionOnto(other Sketch) bool {
	o := other.(*CompactHLL)
	return h.registers.Max(o.registers)
}

// CloneFrom resets h to an independent copy of other's state.
func (h *CompactHLL) CloneFrom(other *CompactHLL) {
	h.b = other.b
	h.mMinus1 = other.mMinus1
	h.alphaMM = other.alphaMM
	h.seed = other.seed
	h.hasher = other.hasher
	if h.registers == nil {
		h.registers = other.registers.Clone()
		return
	}
	h.registers.CloneFrom(other.registers)
}

// Clone returns an independent copy of h.
func (h *CompactHLL) Clone() *CompactHLL {
	return &CompactHLL{
		registers: h.registers.Clone(),
		b:         h.b,
		mMinus1:   h.mMinus1,
		alphaMM:   h.alphaMM,
		seed:      h.seed,
		hasher:    h.hasher,
	}
}

// State exposes every register value in order; used by equivalence tests
// that compare CompactHLL against ByteHLL register-for-register.
func (h *CompactHLL) State() []uint8 {
	return h.registers.Iter()
}
