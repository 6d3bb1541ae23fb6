package bignum

import "math/bits"

// Unsigned is satisfied by every unsigned machine integer type. Algorithms
// written against it are shared by Limb (whatever its configured width) and
// by callers working on plain Go integers.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Signed is satisfied by every signed machine integer type.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// BitWidth returns the number of bits in T.
func BitWidth[T Unsigned]() uint64 {
	return uint64(bits.Len64(uint64(^T(0))))
}

// SignedBitWidth returns the number of bits in S, including the sign bit.
func SignedBitWidth[S Signed]() uint64 {
	var max S = 1
	n := uint64(1)
	for max<<1 > 0 {
		max <<= 1
		n++
	}
	return n + 1
}

func maxOf[T Unsigned]() T { return ^T(0) }

// lowMask returns a T with the low n bits set. n may exceed the width of T.
func lowMask[T Unsigned](n uint64) T {
	if n >= BitWidth[T]() {
		return ^T(0)
	}
	return T(1)<<n - 1
}

func isPowerOf2[T Unsigned](x T) bool {
	return x != 0 && x&(x-1) == 0
}

// significantBits returns the number of bits needed to represent x; zero for
// x == 0.
func significantBits[T Unsigned](x T) uint64 {
	return uint64(bits.Len64(uint64(x)))
}

func trailingZeros[T Unsigned](x T) uint64 {
	if x == 0 {
		return BitWidth[T]()
	}
	return uint64(bits.TrailingZeros64(uint64(x)))
}

// unsignedAbs returns |x| as a uint64. It is defined for the minimum value of
// every signed type.
func unsignedAbs[S Signed](x S) uint64 {
	if x >= 0 {
		return uint64(x)
	}
	return uint64(-(int64(x) + 1)) + 1
}

// fromMagnitude converts (neg, mag) back to S, panicking if the value does not
// fit.
func fromMagnitude[S Signed](neg bool, mag uint64) S {
	w := SignedBitWidth[S]()
	limit := uint64(1) << (w - 1) // |min|
	if neg {
		if mag > limit {
			panic("bignum: signed result overflow")
		}
		if mag == limit {
			var min S = 1
			min <<= w - 1
			return min
		}
		return -S(mag)
	}
	if mag >= limit {
		panic("bignum: signed result overflow")
	}
	return S(mag)
}
