//go:build bignum_limb32
// +build bignum_limb32

package bignum

import "math/bits"

// Limb is a single word of a Natural's limb buffer.
type Limb = uint32

const (
	LimbBits    = 32
	MaxLimb     = Limb(1<<32 - 1)
	limbLogBits = 5

	limbDecimalBase   = Limb(1000000000)
	limbDecimalDigits = 9
)

func limbAdd(x, y, c Limb) (s, carry Limb) { return bits.Add32(x, y, c) }
func limbSub(x, y, b Limb) (d, borrow Limb) { return bits.Sub32(x, y, b) }
func limbMul(x, y Limb) (hi, lo Limb)       { return bits.Mul32(x, y) }

// limbDiv returns the quotient and remainder of (hi<<32 | lo) / y. hi must be
// less than y.
func limbDiv(hi, lo, y Limb) (q, r Limb) { return bits.Div32(hi, lo, y) }

func limbLeadingZeros(x Limb) uint  { return uint(bits.LeadingZeros32(x)) }
func limbTrailingZeros(x Limb) uint { return uint(bits.TrailingZeros32(x)) }
func limbLen(x Limb) uint           { return uint(bits.Len32(x)) }

func limbsFromUint64(v uint64) []Limb {
	switch {
	case v == 0:
		return nil
	case v>>32 == 0:
		return []Limb{Limb(v)}
	default:
		return []Limb{Limb(v), Limb(v >> 32)}
	}
}
