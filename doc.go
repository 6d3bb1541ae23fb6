/*
Package bignum provides Natural, a non-negative integer of unbounded size, and
the limb-level kernel it is built from: carry and borrow primitives, rounded
division and shifting, bit-block access, congruence tests modulo powers of two
and integer logarithms.

A Natural is stored as a single Limb while it fits in one, and as a limb
buffer, least significant first, once it doesn't. Limb is uint64 unless the
package is built with the bignum_limb32 tag, which makes it uint32.

Simple example:

	n := NaturalFrom64(math.MaxUint64)
	q, o := n.Mul(n).DivRound(NaturalFrom64(10), Nearest)
	fmt.Println(q, o) // 34028236692093846342648111928434910822 Less

Every operation whose exact result may not be representable takes a
RoundingMode and returns an Ordering saying whether the result is below, at
or above the exact value:

	Down     toward zero
	Up       away from zero
	Floor    toward negative infinity
	Ceiling  toward positive infinity
	Nearest  to the nearest value, ties to even
	Exact    panic unless the result is exact

The same algorithms are available for Go's machine integers through generic
functions constrained by Unsigned and Signed, for example DivRound,
ShrRound, GetBits and FloorLogBase.

Naturals can be created from a variety of sources:

	NaturalFromLimb(x Limb) Natural
	NaturalFrom64(x uint64) Natural
	FromLimbsAsc(xs []Limb) Natural
	FromLimbsDesc(xs []Limb) Natural
	FromOwnedLimbsAsc(xs []Limb) Natural
	FromOwnedLimbsDesc(xs []Limb) Natural
	NaturalFromString(s string, base int) (Natural, error)
	NaturalFromBigInt(v *big.Int) (out Natural, ok bool)
	NaturalRoundingFromFloat64(f float64, rm RoundingMode) (Natural, Ordering)

Natural supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Contract violations, such as division by zero, an inverted bit range or an
inexact result under Exact, panic. Results that may legitimately be absent are
returned with a bool.

*/
package bignum
