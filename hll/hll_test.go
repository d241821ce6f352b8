package hll

import "testing"

func TestByteAndCompactAgreeOnRegisters(t *testing.T) {
	const seed = 0x0BAD5EED
	byteHLL := NewByteHLL(B10, seed, NewXXHasher())
	compactHLL := NewCompactHLL(B10, 100000, seed, NewXXHasher())

	for i := uint64(0); i < 50000; i++ {
		byteHLL.Register(i)
		compactHLL.Register(i)
	}

	bs := byteHLL.State()
	cs := compactHLL.State()
	if len(bs) != len(cs) {
		t.Fatalf("register count mismatch: byte=%d compact=%d", len(bs), len(cs))
	}
	for i := range bs {
		if bs[i] != cs[i] {
			t.Fatalf("register %d diverged: byte=%d compact=%d", i, bs[i], cs[i])
		}
	}
}

func TestByteAndCompactAgreeAfterUnion(t *testing.T) {
	const seed = 42
	b1 := NewByteHLL(B8, seed, NewXXHasher())
	b2 := NewByteHLL(B8, seed, NewXXHasher())
	c1 := NewCompactHLL(B8, 10000, seed, NewXXHasher())
	c2 := NewCompactHLL(B8, 10000, seed, NewXXHasher())

	for i := uint64(0); i < 5000; i++ {
		b1.Register(i)
		c1.Register(i)
	}
	for i := uint64(3000); i < 8000; i++ {
		b2.Register(i)
		c2.Register(i)
	}

	b1.UnionOnto(b2)
	c1.UnionOnto(c2)

	bs, cs := b2.State(), c2.State()
	for i := range bs {
		if bs[i] != cs[i] {
			t.Fatalf("post-union register %d diverged: byte=%d compact=%d", i, bs[i], cs[i])
		}
	}
}

func TestCardinalityWithinTolerance(t *testing.T) {
	const n = 100000
	for b := B9; b <= B15; b++ {
		h := NewByteHLL(b, 1, NewXXHasher())
		for i := uint64(0); i < n; i++ {
			h.Register(i)
		}
		est := h.Estimate()
		lo, hi := float64(n-n/16), float64(n+n/16)
		if est < lo || est > hi {
			t.Fatalf("b=%d: estimate %.1f outside [%.1f, %.1f]", b, est, lo, hi)
		}
	}
}

func TestRegisterIsIdempotentUnderDuplicates(t *testing.T) {
	h := NewByteHLL(B8, 7, NewXXHasher())
	for i := uint64(0); i < 1000; i++ {
		h.Register(i % 100)
	}
	est := h.Estimate()
	if est < 80 || est > 120 {
		t.Fatalf("estimate %.1f far from true cardinality 100", est)
	}
}

func TestUnionOntoReportsNoChangeWhenAlreadyDominant(t *testing.T) {
	h := NewByteHLL(B6, 3, NewXXHasher())
	for i := uint64(0); i < 2000; i++ {
		h.Register(i)
	}
	same := h.Clone()
	if changed := h.UnionOnto(same); changed {
		t.Fatalf("union of identical sketches reported a change")
	}
}
