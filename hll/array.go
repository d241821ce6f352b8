package hll

// ByteArray and CompactArray are the two concrete shapes HyperBall's
// double-buffered rounds run over: one counter per vertex, with per-index
// CloneInto and whole-array Swap. Each array owns a concrete element type
// rather than a slice of the Sketch interface, so the per-vertex hot loop
// never pays for virtual dispatch — only the two outer entry points
// (HyperBall for ByteArray, HyperBall for CompactArray) differ, and they
// differ only in which concrete array they close over.

// ByteArray is the counter array backed by ByteHLL.
type ByteArray struct {
	counters []ByteHLL
}

// NewByteArray allocates n independent ByteHLL counters with m = 2^b
// registers each, all sharing seed and hasher.
func NewByteArray(n int, b B, seed uint64, hasher BuildHasher) *ByteArray {
	counters := make([]ByteHLL, n)
	for i := range counters {
		counters[i] = *NewByteHLL(b, seed, hasher)
	}
	return &ByteArray{counters: counters}
}

// Len returns the number of counters (vertices) in the array.
func (a *ByteArray) Len() int { return len(a.counters) }

// At returns a pointer to the counter at index i.
func (a *ByteArray) At(i int) *ByteHLL { return &a.counters[i] }

// CloneInto overwrites the counter at index dst with a copy of the counter
// at index src, both within a.
func (a *ByteArray) CloneInto(dst, src int) {
	a.counters[dst].CloneFrom(&a.counters[src])
}

// ResetFrom overwrites the counter at index i with a copy of the counter at
// index i in other, a separate array of the same shape. Used at the start
// of each HyperBall round to reset a vertex's scratch counter from its
// current-round counter before unioning in its neighbors.
func (a *ByteArray) ResetFrom(other *ByteArray, i int) {
	a.counters[i].CloneFrom(&other.counters[i])
}

// Swap exchanges the entire backing slice of a with other's, turning the
// "next" round buffer into the "current" one (and vice versa) in O(1).
func (a *ByteArray) Swap(other *ByteArray) {
	a.counters, other.counters = other.counters, a.counters
}

// CloneShape returns a new ByteArray of the same length as a, with every
// counter independently cloned from a's corresponding counter.
func (a *ByteArray) CloneShape() *ByteArray {
	out := make([]ByteHLL, len(a.counters))
	for i := range out {
		out[i] = *a.counters[i].Clone()
	}
	return &ByteArray{counters: out}
}

// CompactArray is the counter array backed by CompactHLL.
type CompactArray struct {
	counters []CompactHLL
}

// NewCompactArray allocates n independent CompactHLL counters with m = 2^b
// registers each, sized for roughly nExpected items, sharing seed and
// hasher.
func NewCompactArray(n int, b B, nExpected uint64, seed uint64, hasher BuildHasher) *CompactArray {
	counters := make([]CompactHLL, n)
	for i := range counters {
		counters[i] = *NewCompactHLL(b, nExpected, seed, hasher)
	}
	return &CompactArray{counters: counters}
}

// Len returns the number of counters (vertices) in the array.
func (a *CompactArray) Len() int { return len(a.counters) }

// At returns a pointer to the counter at index i.
func (a *CompactArray) At(i int) *CompactHLL { return &a.counters[i] }

// CloneInto overwrites the counter at index dst with a copy of the counter
// at index src, both within a.
func (a *CompactArray) CloneInto(dst, src int) {
	a.counters[dst].CloneFrom(&a.counters[src])
}

// ResetFrom overwrites the counter at index i with a copy of the counter at
// index i in other, a separate array of the same shape. Used at the start
// of each HyperBall round to reset a vertex's scratch counter from its
// current-round counter before unioning in its neighbors.
func (a *CompactArray) ResetFrom(other *CompactArray, i int) {
	a.counters[i].CloneFrom(&other.counters[i])
}

// Swap exchanges the entire backing slice of a with other's, turning the
// "next" round buffer into the "current" one (and vice versa) in O(1).
func (a *CompactArray) Swap(other *CompactArray) {
	a.counters, other.counters = other.counters, a.counters
}

// CloneShape returns a new CompactArray of the same length as a, with every
// counter independently cloned from a's corresponding counter.
func (a *CompactArray) CloneShape() *CompactArray {
	out := make([]CompactHLL, len(a.counters))
	for i := range out {
		out[i] = *a.counters[i].Clone()
	}
	return &CompactArray{counters: out}
}
