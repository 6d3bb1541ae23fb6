//go:build !bignum_limb32
// +build !bignum_limb32

package bignum

import "math/bits"

// Limb is a single word of a Natural's limb buffer.
type Limb = uint64

const (
	LimbBits    = 64
	MaxLimb     = Limb(1<<64 - 1)
	limbLogBits = 6

	// Largest power of 10 that fits in a Limb, and its exponent. Used to peel
	// decimal digits off a Natural a whole limb at a time.
	limbDecimalBase   = Limb(10000000000000000000)
	limbDecimalDigits = 19
)

func limbAdd(x, y, c Limb) (s, carry Limb) { return bits.Add64(x, y, c) }
func limbSub(x, y, b Limb) (d, borrow Limb) { return bits.Sub64(x, y, b) }
func limbMul(x, y Limb) (hi, lo Limb)       { return bits.Mul64(x, y) }

// limbDiv returns the quotient and remainder of (hi<<64 | lo) / y. hi must be
// less than y.
func limbDiv(hi, lo, y Limb) (q, r Limb) { return bits.Div64(hi, lo, y) }

func limbLeadingZeros(x Limb) uint  { return uint(bits.LeadingZeros64(x)) }
func limbTrailingZeros(x Limb) uint { return uint(bits.TrailingZeros64(x)) }
func limbLen(x Limb) uint           { return uint(bits.Len64(x)) }

// limbsFromUint64 splits v into limbs, least significant first.
func limbsFromUint64(v uint64) []Limb {
	if v == 0 {
		return nil
	}
	return []Limb{v}
}
