package bignum

// DivisibleByPowerOf2 reports whether x is a multiple of 2^pow. Zero is a
// multiple of every power of 2.
func DivisibleByPowerOf2[T Unsigned](x T, pow uint64) bool {
	return x == 0 || trailingZeros(x) >= pow
}

// EqModPowerOf2 reports whether x and y agree in their low pow bits.
func EqModPowerOf2[T Unsigned](x, y T, pow uint64) bool {
	return (x^y)&lowMask[T](pow) == 0
}

// ModPowerOf2 returns x mod 2^pow.
func ModPowerOf2[T Unsigned](x T, pow uint64) T {
	return x & lowMask[T](pow)
}

func limbAt(xs []Limb, i uint64) Limb {
	if i < uint64(len(xs)) {
		return xs[i]
	}
	return 0
}

// LimbsDivisibleByPowerOf2 reports whether the number with limbs xs (least
// significant first) is a multiple of 2^pow. Only the limbs below the one
// containing bit pow are read.
func LimbsDivisibleByPowerOf2(xs []Limb, pow uint64) bool {
	i := pow >> limbLogBits
	if i >= uint64(len(xs)) {
		return limbsIsZero(xs)
	}
	return limbsIsZero(xs[:i]) && DivisibleByPowerOf2(xs[i], pow%LimbBits)
}

// LimbsEqModPowerOf2 reports whether xs and ys agree in their low pow bits.
// The slices may have different lengths; missing limbs are zero.
func LimbsEqModPowerOf2(xs, ys []Limb, pow uint64) bool {
	i := pow >> limbLogBits
	n := uint64(len(xs))
	if m := uint64(len(ys)); m > n {
		n = m
	}
	if n > i {
		n = i
	}
	for j := uint64(0); j < n; j++ {
		if limbAt(xs, j) != limbAt(ys, j) {
			return false
		}
	}
	return EqModPowerOf2(limbAt(xs, i), limbAt(ys, i), pow%LimbBits)
}

// LimbsModPowerOf2 returns the normalized limbs of xs mod 2^pow in a new
// slice.
func LimbsModPowerOf2(xs []Limb, pow uint64) []Limb {
	i := pow >> limbLogBits
	if i >= uint64(len(xs)) {
		out := make([]Limb, len(xs))
		copy(out, xs)
		return limbsNorm(out)
	}
	out := make([]Limb, i+1)
	copy(out, xs[:i+1])
	out[i] = ModPowerOf2(out[i], pow%LimbBits)
	return limbsNorm(out)
}

func (n Natural) DivisibleByPowerOf2(pow uint64) bool {
	if n.large == nil {
		return DivisibleByPowerOf2(n.small, pow)
	}
	return LimbsDivisibleByPowerOf2(n.large, pow)
}

// EqModPowerOf2 reports whether n and m are congruent modulo 2^pow.
func (n Natural) EqModPowerOf2(m Natural, pow uint64) bool {
	if n.large == nil && m.large == nil {
		return EqModPowerOf2(n.small, m.small, pow)
	}
	return LimbsEqModPowerOf2(n.limbs(), m.limbs(), pow)
}

func (n Natural) ModPowerOf2(pow uint64) Natural {
	if n.large == nil {
		return Natural{small: ModPowerOf2(n.small, pow)}
	}
	return naturalFromNorm(LimbsModPowerOf2(n.large, pow))
}

// ModPowerOf2Assign truncates n to its low pow bits in place.
func (n *Natural) ModPowerOf2Assign(pow uint64) {
	if n.large == nil {
		n.small = ModPowerOf2(n.small, pow)
		return
	}
	i := pow >> limbLogBits
	if i >= uint64(len(n.large)) {
		return
	}
	xs := n.large[:i+1]
	xs[i] = ModPowerOf2(xs[i], pow%LimbBits)
	*n = naturalFromNorm(limbsNorm(xs))
}
