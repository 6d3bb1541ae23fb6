package random

import (
	"github.com/shabbyrobe/go-bignum"
)

// NaturalWithBits returns a uniformly random Natural with exactly bits
// significant bits.
func NaturalWithBits(src *Source, bits uint64) bignum.Natural {
	return bignum.RandNaturalWithBits(src, bits)
}

// NaturalWithUpToBits returns a uniformly random Natural below 2^bits.
func NaturalWithUpToBits(src *Source, bits uint64) bignum.Natural {
	return bignum.RandNatural(src, bits)
}

// StripedNaturalWithBits returns a striped Natural with exactly bits
// significant bits.
func StripedNaturalWithBits(src *StripedBitSource, bits uint64) bignum.Natural {
	if bits == 0 {
		return bignum.Natural{}
	}
	n := bignum.FromOwnedLimbsAsc(StripedLimbs(src, bits))
	n.SetBit(bits - 1)
	return n
}

// StripedNaturalWithUpToBits returns a striped Natural below 2^bits.
func StripedNaturalWithUpToBits(src *StripedBitSource, bits uint64) bignum.Natural {
	if bits == 0 {
		return bignum.Natural{}
	}
	return bignum.FromOwnedLimbsAsc(StripedLimbs(src, bits))
}

// Naturals generates uniformly random Naturals whose bit lengths are
// geometrically distributed.
type Naturals struct {
	bits  *Geometric[uint64]
	limbs *Source
}

// NewNaturals generates Naturals with a mean bit length of n/d.
func NewNaturals(seed Seed, n, d uint64) *Naturals {
	return &Naturals{
		bits:  NewGeometricUnsigneds[uint64](seed.Fork("bits"), n, d),
		limbs: NewSource(seed.Fork("limbs")),
	}
}

// NewPositiveNaturals is NewNaturals without zero. n/d must exceed 1.
func NewPositiveNaturals(seed Seed, n, d uint64) *Naturals {
	return &Naturals{
		bits:  NewGeometricPositiveUnsigneds[uint64](seed.Fork("bits"), n, d),
		limbs: NewSource(seed.Fork("limbs")),
	}
}

func (g *Naturals) Next() bignum.Natural {
	return NaturalWithBits(g.limbs, g.bits.Next())
}

// StripedNaturals generates striped Naturals whose bit lengths are
// geometrically distributed.
type StripedNaturals struct {
	bits *Geometric[uint64]
	src  *StripedBitSource
}

// NewStripedNaturals generates Naturals with runs of mean length
// stripeN/stripeD and a mean bit length of bitsN/bitsD.
func NewStripedNaturals(seed Seed, stripeN, stripeD, bitsN, bitsD uint64) *StripedNaturals {
	return &StripedNaturals{
		bits: NewGeometricUnsigneds[uint64](seed.Fork("bits"), bitsN, bitsD),
		src:  NewStripedBitSource(seed.Fork("bit_source"), stripeN, stripeD),
	}
}

func NewStripedPositiveNaturals(seed Seed, stripeN, stripeD, bitsN, bitsD uint64) *StripedNaturals {
	return &StripedNaturals{
		bits: NewGeometricPositiveUnsigneds[uint64](seed.Fork("bits"), bitsN, bitsD),
		src:  NewStripedBitSource(seed.Fork("bit_source"), stripeN, stripeD),
	}
}

func (g *StripedNaturals) Next() bignum.Natural {
	return StripedNaturalWithBits(g.src, g.bits.Next())
}

// NaturalsLessThan generates Naturals uniformly distributed in [0, limit).
type NaturalsLessThan struct {
	bits  uint64
	limit bignum.Natural
	src   *Source
}

// NewNaturalsLessThan panics if limit is zero.
func NewNaturalsLessThan(seed Seed, limit bignum.Natural) *NaturalsLessThan {
	if limit.IsZero() {
		panic("random: limit must be positive")
	}
	return &NaturalsLessThan{
		bits:  limit.CeilingLogBase2(),
		limit: limit,
		src:   NewSource(seed),
	}
}

func (g *NaturalsLessThan) Next() bignum.Natural {
	for {
		if x := NaturalWithUpToBits(g.src, g.bits); x.LessThan(g.limit) {
			return x
		}
	}
}

// UniformNaturalRange generates Naturals uniformly distributed in [a, b).
type UniformNaturalRange struct {
	xs *NaturalsLessThan
	a  bignum.Natural
}

func NewUniformNaturalRange(seed Seed, a, b bignum.Natural) *UniformNaturalRange {
	if a.Cmp(b) >= 0 {
		panic("random: empty range")
	}
	return &UniformNaturalRange{
		xs: NewNaturalsLessThan(seed, bignum.DifferenceNatural(b, a)),
		a:  a,
	}
}

// NewUniformNaturalInclusiveRange generates Naturals uniformly distributed in
// [a, b].
func NewUniformNaturalInclusiveRange(seed Seed, a, b bignum.Natural) *UniformNaturalRange {
	if a.Cmp(b) > 0 {
		panic("random: empty range")
	}
	return NewUniformNaturalRange(seed, a, b.AddLimb(1))
}

func (g *UniformNaturalRange) Next() bignum.Natural {
	return g.xs.Next().Add(g.a)
}
