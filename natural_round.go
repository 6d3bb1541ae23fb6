package bignum

// DivRound returns n / m rounded with rm. It panics if m is zero, or if rm is
// Exact and m does not divide n.
func (n Natural) DivRound(m Natural, rm RoundingMode) (Natural, Ordering) {
	q, r := n.DivMod(m)
	if r.IsZero() {
		return q, Equal
	}
	if roundIncrement(rm, r.Cmp(m.Sub(r)), q.IsOdd()) {
		return q.AddLimb(1), Greater
	}
	return q, Less
}

func (n *Natural) DivRoundAssign(m Natural, rm RoundingMode) Ordering {
	q, o := n.DivRound(m, rm)
	*n = q
	return o
}

// ShrRound returns n >> bits with the discarded bits rounded by rm. A
// negative bits shifts left, which is always exact; a left shift of a
// non-zero n by 2^31 limbs or more panics.
func (n Natural) ShrRound(bits int64, rm RoundingMode) (Natural, Ordering) {
	if bits < 0 {
		return n.Shl(uint64(-bits)), Equal
	}
	return n.shrRound(uint64(bits), rm)
}

func (n Natural) shrRound(bits uint64, rm RoundingMode) (Natural, Ordering) {
	if bits == 0 || n.IsZero() {
		return n, Equal
	}
	xs := n.limbs()
	if LimbsDivisibleByPowerOf2(xs, bits) {
		return n.Shr(bits), Equal
	}

	// The discarded part is above, at or below half of 2^bits depending on
	// bit (bits-1) and whether anything below it is set.
	half := -1
	if n.Bit(bits - 1) {
		half = 0
		if !LimbsDivisibleByPowerOf2(xs, bits-1) {
			half = 1
		}
	}
	q := n.Shr(bits)
	if roundIncrement(rm, half, q.IsOdd()) {
		return q.AddLimb(1), Greater
	}
	return q, Less
}

func (n *Natural) ShrRoundAssign(bits int64, rm RoundingMode) Ordering {
	q, o := n.ShrRound(bits, rm)
	*n = q
	return o
}

// ShlRound returns n << bits. A negative bits is a right shift rounded with
// rm. Like Shl, it panics if a non-zero n would grow by 2^31 limbs or more.
func (n Natural) ShlRound(bits int64, rm RoundingMode) (Natural, Ordering) {
	if bits >= 0 {
		return n.Shl(uint64(bits)), Equal
	}
	return n.shrRound(uint64(-bits), rm)
}

func (n *Natural) ShlRoundAssign(bits int64, rm RoundingMode) Ordering {
	q, o := n.ShlRound(bits, rm)
	*n = q
	return o
}

// RoundToMultipleOfPowerOf2 rounds n to a multiple of 2^pow.
func (n Natural) RoundToMultipleOfPowerOf2(pow uint64, rm RoundingMode) (Natural, Ordering) {
	q, o := n.shrRound(pow, rm)
	return q.Shl(pow), o
}

func (n *Natural) RoundToMultipleOfPowerOf2Assign(pow uint64, rm RoundingMode) Ordering {
	q, o := n.RoundToMultipleOfPowerOf2(pow, rm)
	*n = q
	return o
}

// RoundToMultiple rounds n to a multiple of m. Rounding to a multiple of
// zero yields zero under Down, Floor and Nearest, and panics under the other
// modes unless n is zero.
func (n Natural) RoundToMultiple(m Natural, rm RoundingMode) (Natural, Ordering) {
	if n.Equal(m) {
		return n, Equal
	}
	if m.IsZero() {
		switch rm {
		case Down, Floor, Nearest:
			return Natural{}, Less
		default:
			panic("bignum: cannot round to a multiple of zero")
		}
	}
	q, r := n.DivMod(m)
	if r.IsZero() {
		return n, Equal
	}
	floor := n.Sub(r)
	if roundIncrement(rm, r.Cmp(m.Sub(r)), q.IsOdd()) {
		return floor.Add(m), Greater
	}
	return floor, Less
}

func (n *Natural) RoundToMultipleAssign(m Natural, rm RoundingMode) Ordering {
	v, o := n.RoundToMultiple(m, rm)
	*n = v
	return o
}
