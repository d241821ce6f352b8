package hll

// ByteHLL is the byte-backed HyperLogLog sketch: one 8-bit register per
// bucket, m = 2^b buckets.
type ByteHLL struct {
	registers []uint8
	b         B
	mMinus1   uint64
	alphaMM   float64
	seed      uint64
	hasher    BuildHasher
}

// NewByteHLL allocates a sketch with m = 2^b registers, seeded with seed and
// hashing observations through hasher.
func NewByteHLL(b B, seed uint64, hasher BuildHasher) *ByteHLL {
	m := b.M()
	return &ByteHLL{
		registers: make([]uint8, m),
		b:         b,
		mMinus1:   uint64(m) - 1,
		alphaMM:   alpha(m) * float64(m) * float64(m),
		seed:      seed,
		hasher:    hasher,
	}
}

// Register hashes item through the sketch's build-hasher, mixes it with the
// sketch's seed, and grows the indexed register if the observed rank is
// larger than what's already stored. Registers only ever grow.
func (h *ByteHLL) Register(item uint64) {
	hasher := h.hasher()
	var buf [8]byte
	putUint64(buf[:], item)
	hasher.Write(buf[:])
	mixed := jenkinsMix(hasher.Sum64(), h.seed)
	j, r := registerIndexAndRank(mixed, h.b, h.mMinus1)
	if r > h.registers[j] {
		h.registers[j] = r
	}
}

// Estimate returns the sketch's current cardinality estimate.
func (h *ByteHLL) Estimate() float64 {
	harmonic := 0.0
	zeros := 0
	for _, r := range h.registers {
		harmonic += 1.0 / float64(uint64(1)<<r)
		if r == 0 {
			zeros++
		}
	}
	return estimate(h.alphaMM, harmonic, len(h.registers), zeros)
}

// UnionOnto folds self's registers into other (a *ByteHLL), returning
// whether other changed.
func (h *ByteHLL) UnionOnto(other Sketch) bool {
	o := other.(*ByteHLL)
	modified := false
	for i, s := range h.registers {
		if s > o.registers[i] {
			o.registers[i] = s
			modified = true
		}
	}
	return modified
}

// CloneFrom resets h to an independent copy of other's state; used by
// HyperBall's per-round double buffer instead of allocating a fresh sketch.
func (h *ByteHLL) CloneFrom(other *ByteHLL) {
	h.b = other.b
	h.mMinus1 = other.mMinus1
	h.alphaMM = other.alphaMM
	h.seed = other.seed
	h.hasher = other.hasher
	if cap(h.registers) >= len(other.registers) {
		h.registers = h.registers[:len(other.registers)]
		copy(h.registers, other.registers)
		return
	}
	h.registers = append([]uint8(nil), other.registers...)
}

// Clone returns an independent copy of h.
func (h *ByteHLL) Clone() *ByteHLL {
	c := &ByteHLL{b: h.b, mMinus1: h.mMinus1, alphaMM: h.alphaMM, seed: h.seed, hasher: h.hasher}
	c.registers = append([]uint8(nil), h.registers...)
	return c
}

// State exposes the raw register slice; used by equivalence tests that
// compare ByteHLL against CompactHLL register-for-register.
func (h *ByteHLL) State() []uint8 {
	return append([]uint8(nil), h.registers...)
}

func putUint64(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
