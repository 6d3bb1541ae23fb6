package bignum

// Bit blocks of negative integers. A negative integer -m is stored as its
// magnitude m, but its bits are those of the infinite two's complement
// representation, which is the complement of m - 1: every bit of -m is the
// inverse of the same bit of m - 1, including the infinitely many leading
// ones.

func limbsDecrement(xs []Limb) []Limb {
	if limbsIsZero(xs) {
		panic("bignum: negative value must have a non-zero magnitude")
	}
	t := make([]Limb, len(xs))
	copy(t, xs)
	limbsSubLimbInPlace(t, 1)
	return limbsNorm(t)
}

// limbsComplement returns the complement of xs within its low bits bits, as
// normalized limbs.
func limbsComplement(xs []Limb, bits uint64) []Limb {
	n := (bits + LimbBits - 1) >> limbLogBits
	out := make([]Limb, n)
	copy(out, xs)
	for i := range out {
		out[i] = ^out[i]
	}
	return limbsTruncate(out, bits)
}

// LimbsNegGetBits returns bits [start, end) of -m, where xs holds the
// magnitude m. It panics if xs is zero.
func LimbsNegGetBits(xs []Limb, start, end uint64) []Limb {
	checkBitRange(start, end)
	t := limbsDecrement(xs)
	return limbsComplement(LimbsGetBits(t, start, end), end-start)
}

// LimbsNegAssignBits replaces bits [start, end) of -m with bits, where xs holds
// the magnitude m, and returns the new magnitude. xs is not modified. The
// result stays negative: its magnitude is the complement of the updated
// m - 1, plus one.
func LimbsNegAssignBits(xs []Limb, start, end uint64, bits []Limb) []Limb {
	checkBitRange(start, end)
	w := end - start
	if limbsSignificantBits(bits) > w {
		panic("bignum: replacement bits do not fit in the bit range")
	}
	t := limbsDecrement(xs)
	t = LimbsAssignBits(t, start, end, limbsComplement(bits, w))
	out := make([]Limb, len(t)+1)
	copy(out, t)
	limbsAddLimbInPlace(out, 1)
	return limbsNorm(out)
}

// NegGetBits returns bits [start, end) of -mag. It panics if mag is zero.
func NegGetBits(mag Natural, start, end uint64) Natural {
	return naturalFromNorm(LimbsNegGetBits(mag.limbs(), start, end))
}

// NegAssignBits replaces bits [start, end) of -*mag with bits, updating the
// magnitude in place.
func NegAssignBits(mag *Natural, start, end uint64, bits Natural) {
	*mag = naturalFromNorm(LimbsNegAssignBits(mag.limbs(), start, end, bits.limbs()))
}
