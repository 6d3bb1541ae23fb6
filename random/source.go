package random

import (
	"encoding/binary"
	"math/rand"

	"golang.org/x/crypto/chacha20"

	"github.com/shabbyrobe/go-bignum"
)

// Source is a deterministic stream of uniform words: the ChaCha20 keystream
// keyed by a Seed, with a zero nonce.
type Source struct {
	cipher *chacha20.Cipher
	block  [64]byte
	pos    int
}

var (
	_ rand.Source64     = (*Source)(nil)
	_ bignum.RandSource = (*Source)(nil)
)

var zeroBlock [64]byte

func NewSource(seed Seed) *Source {
	s := &Source{}
	s.reset(seed)
	return s
}

func (s *Source) reset(seed Seed) {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Only reachable with a bad key or nonce length.
		panic(err)
	}
	s.cipher = c
	s.pos = len(s.block)
}

func (s *Source) Uint64() uint64 {
	if s.pos+8 > len(s.block) {
		s.cipher.XORKeyStream(s.block[:], zeroBlock[:])
		s.pos = 0
	}
	v := binary.LittleEndian.Uint64(s.block[s.pos:])
	s.pos += 8
	return v
}

func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed restarts the stream from SeedFromUint64(uint64(seed)), to satisfy
// rand.Source.
func (s *Source) Seed(seed int64) {
	s.reset(SeedFromUint64(uint64(seed)))
}

// uniformBelow returns a uniform value in [0, limit) by rejection sampling
// over the smallest number of bits that can hold limit-1.
func uniformBelow(src *Source, limit uint64) uint64 {
	if limit == 0 {
		panic("random: limit must be positive")
	}
	if limit == 1 {
		return 0
	}
	// A 64-bit shift yields 0, so the mask wraps to all ones.
	mask := uint64(1)<<bignum.CeilingLogBase2(limit) - 1
	for {
		if x := src.Uint64() & mask; x < limit {
			return x
		}
	}
}

// Unsigneds generates uniformly distributed values of T.
type Unsigneds[T bignum.Unsigned] struct {
	src *Source
}

func NewUnsigneds[T bignum.Unsigned](seed Seed) *Unsigneds[T] {
	return &Unsigneds[T]{src: NewSource(seed)}
}

func (u *Unsigneds[T]) Next() T { return T(u.src.Uint64()) }

// UnsignedRange generates uniformly distributed values in [a, b).
type UnsignedRange[T bignum.Unsigned] struct {
	src  *Source
	a    T
	size uint64
}

func NewUnsignedRange[T bignum.Unsigned](seed Seed, a, b T) *UnsignedRange[T] {
	if a >= b {
		panic("random: empty range")
	}
	return &UnsignedRange[T]{src: NewSource(seed), a: a, size: uint64(b - a)}
}

func (u *UnsignedRange[T]) Next() T {
	return u.a + T(uniformBelow(u.src, u.size))
}
