package bignum

// RandSource supplies uniformly distributed 64-bit words. *math/rand.Rand
// and the random package's Source both satisfy it.
type RandSource interface {
	Uint64() uint64
}

func randLimbs(source RandSource, bits uint64) []Limb {
	xs := make([]Limb, (bits+LimbBits-1)>>limbLogBits)
	for i := range xs {
		xs[i] = Limb(source.Uint64())
	}
	return limbsTruncate(xs, bits)
}

// RandNatural generates a Natural uniformly distributed in [0, 2^bits) from
// an external source.
func RandNatural(source RandSource, bits uint64) Natural {
	if bits == 0 {
		return Natural{}
	}
	return naturalFromNorm(randLimbs(source, bits))
}

// RandNaturalWithBits generates a Natural with exactly bits significant bits:
// the top bit is always set and the rest are uniform.
func RandNaturalWithBits(source RandSource, bits uint64) Natural {
	if bits == 0 {
		return Natural{}
	}
	xs := randLimbs(source, bits)
	top := (bits - 1) >> limbLogBits
	if uint64(len(xs)) <= top {
		grown := make([]Limb, top+1)
		copy(grown, xs)
		xs = grown
	}
	xs[top] |= Limb(1) << ((bits - 1) % LimbBits)
	return naturalFromNorm(xs)
}

// DifferenceNatural subtracts the smaller of a and b from the larger.
func DifferenceNatural(a, b Natural) Natural {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}
