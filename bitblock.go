package bignum

func checkBitRange(start, end uint64) {
	if start > end {
		panic("bignum: bit range start must not exceed end")
	}
}

// GetBits returns bits [start, end) of x, shifted down to bit 0. Bits past
// the width of T are zero.
func GetBits[T Unsigned](x T, start, end uint64) T {
	checkBitRange(start, end)
	if start >= BitWidth[T]() {
		return 0
	}
	return (x >> start) & lowMask[T](end-start)
}

// AssignBits replaces bits [start, end) of *x with bits. It panics if bits
// has a set bit at or above end-start, or if a set bit would land past the
// width of T.
func AssignBits[T Unsigned](x *T, start, end uint64, bits T) {
	checkBitRange(start, end)
	w := end - start
	if bits&^lowMask[T](w) != 0 {
		panic("bignum: replacement bits do not fit in the bit range")
	}
	width := BitWidth[T]()
	if bits != 0 && (start >= width || significantBits(bits) > width-start) {
		panic("bignum: replacement bits exceed the width of the value")
	}
	if start >= width {
		return
	}
	if width-start < w {
		w = width - start
	}
	*x = *x&^(lowMask[T](w)<<start) | bits<<start
}

// GetBitsSigned returns bits [start, end) of the two's complement
// representation of x. Negative values have infinitely many leading ones, so
// for them the range must be at most 64 bits wide.
func GetBitsSigned[S Signed](x S, start, end uint64) uint64 {
	checkBitRange(start, end)
	if x >= 0 {
		return GetBits(uint64(x), start, end)
	}
	if end-start > 64 {
		panic("bignum: bit range too wide for a negative value")
	}
	v := uint64(int64(x))
	if start >= 64 {
		v = maxOf[uint64]()
	} else {
		v = v>>start | ^(maxOf[uint64]() >> start)
	}
	return v & lowMask[uint64](end-start)
}

// AssignBitsSigned replaces bits [start, end) of the two's complement
// representation of *x. The sign of *x cannot change: every replacement bit
// at or above the sign bit must equal the sign, otherwise AssignBitsSigned
// panics.
func AssignBitsSigned[S Signed](x *S, start, end uint64, bits uint64) {
	checkBitRange(start, end)
	w := end - start
	if bits&^lowMask[uint64](w) != 0 {
		panic("bignum: replacement bits do not fit in the bit range")
	}
	neg := *x < 0
	sign := SignedBitWidth[S]() - 1

	if end > sign {
		lo := start
		if lo < sign {
			lo = sign
		}
		got := GetBits(bits, lo-start, w)
		if neg {
			if w > 64 || got != lowMask[uint64](end-lo) {
				panic("bignum: replacement bits would change the sign")
			}
		} else if got != 0 {
			panic("bignum: replacement bits would change the sign")
		}
	}

	if start >= sign {
		return
	}
	low := end
	if low > sign {
		low = sign
	}
	u := uint64(int64(*x))
	AssignBits(&u, start, low, GetBits(bits, 0, low-start))
	*x = S(int64(u))
}

// LimbsGetBits returns bits [start, end) of xs as normalized limbs.
func LimbsGetBits(xs []Limb, start, end uint64) []Limb {
	checkBitRange(start, end)
	lo := start >> limbLogBits
	if lo >= uint64(len(xs)) || start == end {
		return nil
	}
	// One limb past the one holding bit end-1 feeds the top of the shift.
	hi := uint64(len(xs))
	if e := (end-1)>>limbLogBits + 2; e < hi {
		hi = e
	}
	out := make([]Limb, hi-lo)
	shrVU(out, xs[lo:hi], uint(start%LimbBits))
	return limbsTruncate(out, end-start)
}

// limbsTruncate reduces xs mod 2^bits in place and normalizes it.
func limbsTruncate(xs []Limb, bits uint64) []Limb {
	i := bits >> limbLogBits
	if i < uint64(len(xs)) {
		xs = xs[:i+1]
		xs[i] &= lowMask[Limb](bits % LimbBits)
	}
	return limbsNorm(xs)
}

func limbsSignificantBits(xs []Limb) uint64 {
	xs = limbsNorm(xs)
	if len(xs) == 0 {
		return 0
	}
	return uint64(len(xs)-1)*LimbBits + uint64(limbLen(xs[len(xs)-1]))
}

// LimbsAssignBits replaces bits [start, end) of xs with bits and returns the
// normalized result, growing xs if needed. xs may be overwritten. It panics if
// bits is wider than end-start.
func LimbsAssignBits(xs []Limb, start, end uint64, bits []Limb) []Limb {
	checkBitRange(start, end)
	if limbsSignificantBits(bits) > end-start {
		panic("bignum: replacement bits do not fit in the bit range")
	}
	limbsClearBits(xs, start, end)

	shifted := limbsShl(limbsNorm(bits), start%LimbBits)
	if len(shifted) == 0 {
		return limbsNorm(xs)
	}
	off := int(start >> limbLogBits)
	if need := off + len(shifted); need > len(xs) {
		grown := make([]Limb, need)
		copy(grown, xs)
		xs = grown
	}
	for i, s := range shifted {
		xs[off+i] |= s
	}
	return limbsNorm(xs)
}

// limbsClearBits zeroes bits [start, end) of xs that fall inside the buffer.
func limbsClearBits(xs []Limb, start, end uint64) {
	total := uint64(len(xs)) * LimbBits
	if end > total {
		end = total
	}
	for start < end {
		i := start >> limbLogBits
		base := i * LimbBits
		hi := end - base
		if hi > LimbBits {
			hi = LimbBits
		}
		xs[i] &^= lowMask[Limb](hi) &^ lowMask[Limb](start-base)
		start = base + hi
	}
}

// GetBits returns bits [start, end) of n.
func (n Natural) GetBits(start, end uint64) Natural {
	if n.large == nil {
		checkBitRange(start, end)
		return Natural{small: GetBits(n.small, start, end)}
	}
	return naturalFromNorm(LimbsGetBits(n.large, start, end))
}

// AssignBits replaces bits [start, end) of n with bits. It panics if bits is
// not less than 2^(end-start).
func (n *Natural) AssignBits(start, end uint64, bits Natural) {
	if n.large == nil && bits.large == nil && end <= LimbBits {
		x := n.small
		AssignBits(&x, start, end, bits.small)
		n.small = x
		return
	}
	xs := n.ToLimbsAsc()
	*n = naturalFromNorm(LimbsAssignBits(xs, start, end, bits.limbs()))
}

// SetBit sets bit i of n.
func (n *Natural) SetBit(i uint64) {
	if n.large == nil && i < LimbBits {
		n.small |= Limb(1) << i
		return
	}
	if n.Bit(i) {
		return
	}
	xs := n.ToLimbsAsc()
	j := i >> limbLogBits
	if j >= uint64(len(xs)) {
		grown := make([]Limb, j+1)
		copy(grown, xs)
		xs = grown
	}
	xs[j] |= Limb(1) << (i % LimbBits)
	*n = naturalFromNorm(xs)
}

// ClearBit clears bit i of n.
func (n *Natural) ClearBit(i uint64) {
	if !n.Bit(i) {
		return
	}
	if n.large == nil {
		n.small &^= Limb(1) << i
		return
	}
	xs := n.ToLimbsAsc()
	xs[i>>limbLogBits] &^= Limb(1) << (i % LimbBits)
	*n = naturalFromNorm(limbsNorm(xs))
}
