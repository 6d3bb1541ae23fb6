package bignum

func (n Natural) Add(m Natural) Natural {
	if n.large == nil && m.large == nil {
		s, c := limbAdd(n.small, m.small, 0)
		if c == 0 {
			return Natural{small: s}
		}
		return Natural{large: []Limb{s, c}}
	}
	return naturalFromNorm(limbsAdd(n.limbs(), m.limbs()))
}

func (n Natural) AddLimb(y Limb) Natural {
	return n.Add(Natural{small: y})
}

// AddAssign sets n to n + m. If n's buffer has room for the result it is
// reused.
func (n *Natural) AddAssign(m Natural) {
	if n.large == nil || len(n.large) < len(m.limbs()) {
		*n = n.Add(m)
		return
	}
	ml := m.limbs()
	c := addVV(n.large, n.large, ml)
	c = addVW(n.large[len(ml):], n.large[len(ml):], c)
	if c != 0 {
		n.large = append(n.large, c)
	}
}

// Sub returns n - m. It panics if m > n.
func (n Natural) Sub(m Natural) Natural {
	d, ok := n.CheckedSub(m)
	if !ok {
		panic("bignum: subtraction underflow")
	}
	return d
}

// CheckedSub returns n - m, or false if m > n.
func (n Natural) CheckedSub(m Natural) (Natural, bool) {
	if n.large == nil && m.large == nil {
		if m.small > n.small {
			return Natural{}, false
		}
		return Natural{small: n.small - m.small}, true
	}
	d, borrow := limbsSub(n.limbs(), m.limbs())
	if borrow {
		return Natural{}, false
	}
	return naturalFromNorm(d), true
}

// SubAssign sets n to n - m. It panics if m > n.
func (n *Natural) SubAssign(m Natural) {
	if n.large == nil {
		*n = n.Sub(m)
		return
	}
	ml := m.limbs()
	if len(ml) > len(n.large) {
		panic("bignum: subtraction underflow")
	}
	if limbsCmp(n.large, ml) < 0 {
		panic("bignum: subtraction underflow")
	}
	c := subVV(n.large, n.large, ml)
	subVW(n.large[len(ml):], n.large[len(ml):], c)
	*n = naturalFromNorm(limbsNorm(n.large))
}

func (n Natural) Mul(m Natural) Natural {
	if n.large == nil && m.large == nil {
		hi, lo := limbMul(n.small, m.small)
		if hi == 0 {
			return Natural{small: lo}
		}
		return Natural{large: []Limb{lo, hi}}
	}
	return naturalFromNorm(limbsMul(n.limbs(), m.limbs()))
}

func (n Natural) MulLimb(y Limb) Natural {
	if y == 0 || n.IsZero() {
		return Natural{}
	}
	xs := n.limbs()
	z := make([]Limb, len(xs)+1)
	z[len(xs)] = mulAddVWW(z[:len(xs)], xs, y, 0)
	return naturalFromNorm(limbsNorm(z))
}

func (n *Natural) MulAssign(m Natural) { *n = n.Mul(m) }

// DivMod returns the quotient and remainder of n / m, rounding the quotient
// down. It panics if m is zero.
func (n Natural) DivMod(m Natural) (q, r Natural) {
	if m.IsZero() {
		panic("bignum: division by zero")
	}
	if n.large == nil && m.large == nil {
		return Natural{small: n.small / m.small}, Natural{small: n.small % m.small}
	}
	if n.Cmp(m) < 0 {
		return Natural{}, n
	}
	if m.large == nil {
		ql, rl := limbsDivModLimb(n.large, m.small)
		return naturalFromNorm(ql), Natural{small: rl}
	}
	ql, rl := limbsDivMod(n.large, m.large)
	return naturalFromNorm(ql), naturalFromNorm(rl)
}

func (n Natural) Div(m Natural) Natural {
	q, _ := n.DivMod(m)
	return q
}

func (n Natural) Mod(m Natural) Natural {
	_, r := n.DivMod(m)
	return r
}

// DivModLimb returns the quotient and remainder of n / y. It panics if y is
// zero.
func (n Natural) DivModLimb(y Limb) (Natural, Limb) {
	if y == 0 {
		panic("bignum: division by zero")
	}
	if n.large == nil {
		return Natural{small: n.small / y}, n.small % y
	}
	q, r := limbsDivModLimb(n.large, y)
	return naturalFromNorm(q), r
}

// DivAssignMod sets n to n / m and returns n % m.
func (n *Natural) DivAssignMod(m Natural) Natural {
	q, r := n.DivMod(m)
	*n = q
	return r
}

// Shl returns n << bits. It panics if a non-zero n would grow by 2^31 limbs
// or more.
func (n Natural) Shl(bits uint64) Natural {
	if n.IsZero() || bits == 0 {
		return n
	}
	if bits>>limbLogBits >= maxShlLimbs {
		panic("bignum: left shift too large")
	}
	if n.large == nil && bits < LimbBits && limbLeadingZeros(n.small) >= uint(bits) {
		return Natural{small: n.small << bits}
	}
	return naturalFromNorm(limbsShl(n.limbs(), bits))
}

// Shr returns n >> bits, discarding the bits shifted out.
func (n Natural) Shr(bits uint64) Natural {
	if n.large == nil {
		if bits >= LimbBits {
			return Natural{}
		}
		return Natural{small: n.small >> bits}
	}
	return naturalFromNorm(limbsShr(n.large, bits))
}

func (n *Natural) ShlAssign(bits uint64) { *n = n.Shl(bits) }

// ShrAssign shifts n right in place, reusing its buffer.
func (n *Natural) ShrAssign(bits uint64) {
	if n.large == nil {
		*n = n.Shr(bits)
		return
	}
	nw := bits >> limbLogBits
	if nw >= uint64(len(n.large)) {
		*n = Natural{}
		return
	}
	xs := n.large
	copy(xs, xs[nw:])
	xs = xs[:len(xs)-int(nw)]
	shrVU(xs, xs, uint(bits%LimbBits))
	*n = naturalFromNorm(limbsNorm(xs))
}
