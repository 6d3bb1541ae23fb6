package bignum

// Natural is a non-negative integer of unbounded size.
//
// Values that fit in a single Limb are stored inline. Larger values are
// stored as a limb buffer, least significant limb first, with at least two
// limbs and a non-zero most significant limb. Every exported operation
// returns values in this form, so two equal Naturals always have equal
// representations.
//
// The zero value is 0. Natural is a value type, but a plain copy of a large
// Natural shares its buffer with the original: methods returning a Natural
// never write to the receiver's buffer, while the *Assign methods may reuse
// it. Clone before calling an *Assign method on a copy whose original is
// still in use.
type Natural struct {
	small Limb
	large []Limb
}

func NaturalFromLimb(x Limb) Natural { return Natural{small: x} }

func NaturalFrom64(x uint64) Natural { return FromOwnedLimbsAsc(limbsFromUint64(x)) }

// FromLimbsAsc creates a Natural from limbs, least significant first. xs is
// not retained. Any number of most significant zero limbs is allowed, and an
// empty slice is zero.
func FromLimbsAsc(xs []Limb) Natural {
	n := limbsSignificantLen(xs)
	switch n {
	case 0:
		return Natural{}
	case 1:
		return Natural{small: xs[0]}
	default:
		large := make([]Limb, n)
		copy(large, xs)
		return Natural{large: large}
	}
}

// FromLimbsDesc creates a Natural from limbs, most significant first. xs is
// not retained.
func FromLimbsDesc(xs []Limb) Natural {
	i := 0
	for i < len(xs) && xs[i] == 0 {
		i++
	}
	xs = xs[i:]
	switch len(xs) {
	case 0:
		return Natural{}
	case 1:
		return Natural{small: xs[0]}
	default:
		large := make([]Limb, len(xs))
		for j, x := range xs {
			large[len(xs)-1-j] = x
		}
		return Natural{large: large}
	}
}

// FromOwnedLimbsAsc is like FromLimbsAsc, but takes ownership of xs instead
// of copying it. The caller must not use xs afterwards.
func FromOwnedLimbsAsc(xs []Limb) Natural {
	n := limbsSignificantLen(xs)
	switch n {
	case 0:
		return Natural{}
	case 1:
		return Natural{small: xs[0]}
	default:
		return Natural{large: xs[:n]}
	}
}

// FromOwnedLimbsDesc reverses xs in place and takes ownership of it.
func FromOwnedLimbsDesc(xs []Limb) Natural {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
	return FromOwnedLimbsAsc(xs)
}

// PowerOf2Natural returns 2^pow.
func PowerOf2Natural(pow uint64) Natural {
	if pow < LimbBits {
		return Natural{small: Limb(1) << pow}
	}
	xs := make([]Limb, pow>>limbLogBits+1)
	xs[len(xs)-1] = Limb(1) << (pow % LimbBits)
	return Natural{large: xs}
}

// LowMaskNatural returns 2^bits - 1.
func LowMaskNatural(bits uint64) Natural {
	if bits <= LimbBits {
		return Natural{small: lowMask[Limb](bits)}
	}
	xs := make([]Limb, (bits+LimbBits-1)>>limbLogBits)
	for i := range xs {
		xs[i] = MaxLimb
	}
	if rem := bits % LimbBits; rem != 0 {
		xs[len(xs)-1] = lowMask[Limb](rem)
	}
	return Natural{large: xs}
}

// naturalFromNorm wraps an already-normalized limb buffer without copying.
func naturalFromNorm(xs []Limb) Natural {
	switch len(xs) {
	case 0:
		return Natural{}
	case 1:
		return Natural{small: xs[0]}
	default:
		return Natural{large: xs}
	}
}

// limbs returns a read-only normalized view of n's limbs. Zero has no limbs.
func (n Natural) limbs() []Limb {
	if n.large != nil {
		return n.large
	}
	if n.small == 0 {
		return nil
	}
	return []Limb{n.small}
}

// ToLimbsAsc returns a copy of n's limbs, least significant first. Zero
// returns an empty slice.
func (n Natural) ToLimbsAsc() []Limb {
	xs := n.limbs()
	out := make([]Limb, len(xs))
	copy(out, xs)
	return out
}

// ToLimbsDesc returns a copy of n's limbs, most significant first.
func (n Natural) ToLimbsDesc() []Limb {
	xs := n.limbs()
	out := make([]Limb, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

// IntoLimbsAsc hands n's buffer to the caller without copying and resets n
// to zero.
func (n *Natural) IntoLimbsAsc() []Limb {
	xs := n.limbs()
	if xs == nil {
		xs = []Limb{}
	}
	*n = Natural{}
	return xs
}

// IntoLimbsDesc is IntoLimbsAsc with the buffer reversed in place.
func (n *Natural) IntoLimbsDesc() []Limb {
	xs := n.IntoLimbsAsc()
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
	return xs
}

// Limb returns the i'th limb of n, counting from the least significant. It
// returns 0 for any i past the end.
func (n Natural) Limb(i uint64) Limb {
	if n.large == nil {
		if i == 0 {
			return n.small
		}
		return 0
	}
	if i >= uint64(len(n.large)) {
		return 0
	}
	return n.large[i]
}

func (n Natural) LimbCount() uint64 {
	if n.large == nil {
		if n.small == 0 {
			return 0
		}
		return 1
	}
	return uint64(len(n.large))
}

func (n Natural) IsZero() bool { return n.large == nil && n.small == 0 }
func (n Natural) IsOdd() bool  { return n.Limb(0)&1 == 1 }
func (n Natural) IsEven() bool { return n.Limb(0)&1 == 0 }

// SignificantBits returns the bit length of n. Zero has zero significant
// bits.
func (n Natural) SignificantBits() uint64 {
	if n.large == nil {
		return uint64(limbLen(n.small))
	}
	top := len(n.large) - 1
	return uint64(top)*LimbBits + uint64(limbLen(n.large[top]))
}

// TrailingZeros returns the number of trailing zero bits of n, or false if n
// is zero.
func (n Natural) TrailingZeros() (uint64, bool) {
	if n.large == nil {
		if n.small == 0 {
			return 0, false
		}
		return uint64(limbTrailingZeros(n.small)), true
	}
	for i, x := range n.large {
		if x != 0 {
			return uint64(i)*LimbBits + uint64(limbTrailingZeros(x)), true
		}
	}
	panic("bignum: unnormalized natural")
}

// Bit reports whether bit i of n is set.
func (n Natural) Bit(i uint64) bool {
	return (n.Limb(i>>limbLogBits)>>(i%LimbBits))&1 == 1
}

func (n Natural) IsPowerOf2() bool {
	if n.large == nil {
		return isPowerOf2(n.small)
	}
	top := len(n.large) - 1
	return limbsIsZero(n.large[:top]) && isPowerOf2(n.large[top])
}

// Uint64 returns n as a uint64, or false if it does not fit.
func (n Natural) Uint64() (uint64, bool) {
	xs := n.limbs()
	if LimbBits == 64 {
		switch len(xs) {
		case 0:
			return 0, true
		case 1:
			return uint64(xs[0]), true
		default:
			return 0, false
		}
	}
	var v uint64
	if len(xs)*LimbBits > 64 {
		return 0, false
	}
	for i := len(xs) - 1; i >= 0; i-- {
		v = v<<(LimbBits%64) | uint64(xs[i])
	}
	return v, true
}

// Clone returns a copy of n that shares no storage with it.
func (n Natural) Clone() Natural {
	if n.large == nil {
		return n
	}
	large := make([]Limb, len(n.large))
	copy(large, n.large)
	return Natural{large: large}
}

// Cmp returns -1 if n < m, 0 if n == m and 1 if n > m.
func (n Natural) Cmp(m Natural) int {
	if n.large == nil && m.large == nil {
		if n.small < m.small {
			return -1
		} else if n.small > m.small {
			return 1
		}
		return 0
	}
	return limbsCmp(n.limbs(), m.limbs())
}

func (n Natural) Equal(m Natural) bool {
	if n.large == nil || m.large == nil {
		return n.large == nil && m.large == nil && n.small == m.small
	}
	return limbsCmp(n.large, m.large) == 0
}

func (n Natural) LessThan(m Natural) bool         { return n.Cmp(m) < 0 }
func (n Natural) GreaterThan(m Natural) bool      { return n.Cmp(m) > 0 }
func (n Natural) LessOrEqualTo(m Natural) bool    { return n.Cmp(m) <= 0 }
func (n Natural) GreaterOrEqualTo(m Natural) bool { return n.Cmp(m) >= 0 }
