package random

import (
	"github.com/shabbyrobe/go-bignum"
)

// StripedBitSource generates bits in runs. The first bit of each block is a
// fair coin flip; every later bit repeats the previous one unless a weighted
// trial says to flip it, so runs have mean length n/d.
type StripedBitSource struct {
	firstBitOfBlock bool
	previousBit     bool
	bs              *Bools
	xs              *WeightedBools
}

// NewStripedBitSource panics unless n/d is greater than 1.
func NewStripedBitSource(seed Seed, n, d uint64) *StripedBitSource {
	if d == 0 {
		panic("random: mean denominator must be positive")
	}
	if n <= d {
		panic("random: mean run length must exceed 1")
	}
	p, pq := meanToPWithMin(1, n, d)
	return &StripedBitSource{
		firstBitOfBlock: true,
		bs:              NewBools(seed.Fork("bs")),
		xs:              NewWeightedBools(seed.Fork("xs"), p, pq),
	}
}

func (s *StripedBitSource) Next() bool {
	if s.firstBitOfBlock {
		s.firstBitOfBlock = false
		s.previousBit = s.bs.Next()
	} else {
		s.previousBit = s.previousBit != s.xs.Next()
	}
	return s.previousBit
}

// EndBlock makes the next bit independent of the previous one.
func (s *StripedBitSource) EndBlock() { s.firstBitOfBlock = true }

func (s *StripedBitSource) SetPreviousBit(bit bool) { s.previousBit = bit }

// StripedLimbs draws bitLen bits from src as a new block and packs them into
// limbs, least significant bit first. The result is not normalized.
func StripedLimbs(src *StripedBitSource, bitLen uint64) []bignum.Limb {
	src.EndBlock()
	xs := make([]bignum.Limb, (bitLen+bignum.LimbBits-1)/bignum.LimbBits)
	for i := uint64(0); i < bitLen; i++ {
		if src.Next() {
			xs[i/bignum.LimbBits] |= bignum.Limb(1) << (i % bignum.LimbBits)
		}
	}
	return xs
}

// StripedUnsignedBitChunks generates striped values of T with chunkSize
// significant bits at most. Each value is a new block, filled from the most
// significant bit down.
type StripedUnsignedBitChunks[T bignum.Unsigned] struct {
	bits      *StripedBitSource
	chunkSize uint64
}

func NewStripedUnsignedBitChunks[T bignum.Unsigned](seed Seed, chunkSize, n, d uint64) *StripedUnsignedBitChunks[T] {
	if chunkSize > bignum.BitWidth[T]() {
		panic("random: chunk size exceeds the width of the type")
	}
	return &StripedUnsignedBitChunks[T]{
		bits:      NewStripedBitSource(seed, n, d),
		chunkSize: chunkSize,
	}
}

// NewStripedUnsigneds generates striped values using every bit of T.
func NewStripedUnsigneds[T bignum.Unsigned](seed Seed, n, d uint64) *StripedUnsignedBitChunks[T] {
	return NewStripedUnsignedBitChunks[T](seed, bignum.BitWidth[T](), n, d)
}

func (s *StripedUnsignedBitChunks[T]) Next() T {
	s.bits.EndBlock()
	var x T
	for i := uint64(0); i < s.chunkSize; i++ {
		x <<= 1
		if s.bits.Next() {
			x |= 1
		}
	}
	return x
}

// StripedSigneds generates striped values of S. The bits below the sign are
// striped; the sign is an independent coin flip.
type StripedSigneds[S bignum.Signed] struct {
	bits *StripedBitSource
	bs   *Bools
}

func NewStripedSigneds[S bignum.Signed](seed Seed, n, d uint64) *StripedSigneds[S] {
	return &StripedSigneds[S]{
		bits: NewStripedBitSource(seed.Fork("bits"), n, d),
		bs:   NewBools(seed.Fork("bs")),
	}
}

func (s *StripedSigneds[S]) Next() S {
	w := bignum.SignedBitWidth[S]()
	s.bits.EndBlock()
	var x S
	for i := uint64(0); i < w-1; i++ {
		x <<= 1
		if s.bits.Next() {
			x |= 1
		}
	}
	if s.bs.Next() {
		var sign S = 1
		sign <<= w - 1
		x |= sign
	}
	return x
}
