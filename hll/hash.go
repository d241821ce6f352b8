package hll

import (
	"encoding/binary"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/gtank/blake2/blake2b"
)

// BuildHasher is a factory producing a fresh 64-bit hasher per call, the
// external "build-hasher" collaborator the sketches consume. hash.Hash64
// (Write([]byte)(int,error) + Sum64() uint64) is exactly the contract the
// spec asks for, so no adapter type is needed.
type BuildHasher func() hash.Hash64

// NewXXHasher is the default BuildHasher, backed by the xxHash64 algorithm.
// Sketch constructors do not fall back to it: every constructor takes the
// BuildHasher as an explicit argument.
func NewXXHasher() BuildHasher {
	return func() hash.Hash64 {
		return xxhash.New()
	}
}

// NewBlake2Hasher is an alternate BuildHasher backed by unkeyed BLAKE2b,
// truncated to a 64-bit finish value. Sketches constructed with different
// hashers are independent; this exists to demonstrate that
// HyperLogLog correctness never depends on which real hash algorithm backs
// the build-hasher slot.
func NewBlake2Hasher() BuildHasher {
	return func() hash.Hash64 {
		d, err := blake2b.NewDigest(nil, nil, nil, 8)
		if err != nil {
			panic("hll: blake2b digest construction failed: " + err.Error())
		}
		return &blake2Hash64{d}
	}
}

type blake2Hash64 struct {
	d *blake2b.Digest
}

func (b *blake2Hash64) Write(p []byte) (int, error) { return b.d.Write(p) }
func (b *blake2Hash64) Reset()                      { b.d.Reset() }
func (b *blake2Hash64) Size() int                    { return b.d.Size() }
func (b *blake2Hash64) BlockSize() int               { return b.d.BlockSize() }
func (b *blake2Hash64) Sum(p []byte) []byte          { return b.d.Sum(p) }
func (b *blake2Hash64) Sum64() uint64 {
	return binary.BigEndian.Uint64(b.d.Sum(nil))
}
