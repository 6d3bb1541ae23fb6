package bignum

// roundIncrement decides whether an inexact, truncated magnitude quotient q
// must be incremented under rm. half is the comparison of the discarded
// remainder with the rest of the divisor (r against d - r): positive above
// the midpoint, zero on an exact tie.
//
// The operands are magnitudes, so Floor behaves like Down and Ceiling like
// Up; callers rounding a negative value pass rm.Neg().
func roundIncrement(rm RoundingMode, half int, qOdd bool) bool {
	switch rm {
	case Down, Floor:
		return false
	case Up, Ceiling:
		return true
	case Nearest:
		return half > 0 || (half == 0 && qOdd)
	case Exact:
		panic("bignum: inexact result with rounding mode Exact")
	default:
		panic("bignum: invalid rounding mode")
	}
}

func cmpHalf[T Unsigned](r, d T) int {
	rest := d - r
	switch {
	case r > rest:
		return 1
	case r < rest:
		return -1
	default:
		return 0
	}
}

// DivRound returns x / y rounded with rm. It panics if y is zero, or if rm is
// Exact and y does not divide x.
func DivRound[T Unsigned](x, y T, rm RoundingMode) (T, Ordering) {
	if y == 0 {
		panic("bignum: division by zero")
	}
	q, r := x/y, x%y
	if r == 0 {
		return q, Equal
	}
	if roundIncrement(rm, cmpHalf(r, y), q&1 == 1) {
		return q + 1, Greater
	}
	return q, Less
}

// DivRoundSigned is DivRound for signed integers. It panics on division by
// zero and when the quotient overflows S (the minimum value divided by -1).
func DivRoundSigned[S Signed](x, y S, rm RoundingMode) (S, Ordering) {
	if y == 0 {
		panic("bignum: division by zero")
	}
	neg := (x < 0) != (y < 0)
	if neg {
		rm = rm.Neg()
	}
	q, o := DivRound(unsignedAbs(x), unsignedAbs(y), rm)
	if neg {
		return fromMagnitude[S](true, q), o.Reverse()
	}
	return fromMagnitude[S](false, q), o
}

// ShrRound returns x >> bits, rounding the discarded bits with rm. A negative
// bits shifts left instead; left shifts are exact and wrap.
func ShrRound[T Unsigned](x T, bits int64, rm RoundingMode) (T, Ordering) {
	if bits < 0 {
		return x << uint64(-bits), Equal
	}
	return shrRoundUnsigned(x, uint64(bits), rm)
}

func shrRoundUnsigned[T Unsigned](x T, bits uint64, rm RoundingMode) (T, Ordering) {
	if bits == 0 || x == 0 {
		return x, Equal
	}
	width := BitWidth[T]()
	if bits > width {
		// 0 < x < 2^bits/2: the only candidates are 0 and 1, and x is below the
		// midpoint.
		if roundIncrement(rm, -1, false) {
			return 1, Greater
		}
		return 0, Less
	}

	var q, r T
	if bits == width {
		q, r = 0, x
	} else {
		q, r = x>>bits, x&lowMask[T](bits)
	}
	if r == 0 {
		return q, Equal
	}
	half := T(1) << (bits - 1)
	c := 0
	if r > half {
		c = 1
	} else if r < half {
		c = -1
	}
	if roundIncrement(rm, c, q&1 == 1) {
		return q + 1, Greater
	}
	return q, Less
}

// ShrRoundSigned shifts x right, rounding with rm. The result is that of
// dividing x by 2^bits, so negative values round toward negative infinity
// under Floor. A negative bits shifts left instead, wrapping.
func ShrRoundSigned[S Signed](x S, bits int64, rm RoundingMode) (S, Ordering) {
	if bits < 0 {
		return x << uint64(-bits), Equal
	}
	if x >= 0 {
		q, o := shrRoundUnsigned(uint64(x), uint64(bits), rm)
		return fromMagnitude[S](false, q), o
	}
	q, o := shrRoundUnsigned(unsignedAbs(x), uint64(bits), rm.Neg())
	return fromMagnitude[S](true, q), o.Reverse()
}

// ShlRound returns x << bits. A negative bits is a right shift rounded with
// rm.
func ShlRound[T Unsigned](x T, bits int64, rm RoundingMode) (T, Ordering) {
	if bits >= 0 {
		return x << uint64(bits), Equal
	}
	return shrRoundUnsigned(x, uint64(-bits), rm)
}

// RoundToMultipleOfPowerOf2 rounds x to a multiple of 2^pow. It panics if the
// rounded value does not fit in T.
func RoundToMultipleOfPowerOf2[T Unsigned](x T, pow uint64, rm RoundingMode) (T, Ordering) {
	q, o := shrRoundUnsigned(x, pow, rm)
	if q == 0 {
		return 0, o
	}
	if pow >= BitWidth[T]() || q > maxOf[T]()>>pow {
		panic("bignum: rounded result overflows")
	}
	return q << pow, o
}

// RoundToMultiple rounds x to a multiple of y. Rounding to a multiple of zero
// yields zero under Down, Floor and Nearest, and panics otherwise unless x is
// zero. It panics if the result does not fit in T.
func RoundToMultiple[T Unsigned](x, y T, rm RoundingMode) (T, Ordering) {
	if x == y {
		return x, Equal
	}
	if y == 0 {
		switch rm {
		case Down, Floor, Nearest:
			return 0, Less
		default:
			panic("bignum: cannot round to a multiple of zero")
		}
	}
	r := x % y
	if r == 0 {
		return x, Equal
	}
	floor := x - r
	if !roundIncrement(rm, cmpHalf(r, y), (x/y)&1 == 1) {
		return floor, Less
	}
	c, ok := CheckedAdd(floor, y)
	if !ok {
		panic("bignum: rounded result overflows")
	}
	return c, Greater
}
