package bignum

// Limb-vector primitives. These follow the math/big conventions: z, x and y
// are little-endian limb slices, the loops stop at the shortest operand, and
// the carry or borrow leaving the most significant limb is returned rather
// than stored. Every carry produced at limb i is folded into limb i+1 before
// that limb's result is written.

// addVV sets z = x + y and returns the carry, which is 0 or 1.
func addVV(z, x, y []Limb) (c Limb) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = limbAdd(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y and returns the borrow, which is 0 or 1.
func subVV(z, x, y []Limb) (c Limb) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = limbSub(x[i], y[i], c)
	}
	return c
}

// addVW sets z = x + y and returns the carry.
func addVW(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], c = limbAdd(x[i], c, 0)
	}
	return c
}

// subVW sets z = x - y and returns the borrow.
func subVW(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], c = limbSub(x[i], c, 0)
	}
	return c
}

// shlVU sets z = x << s for s < LimbBits and returns the bits shifted out of
// the top limb.
func shlVU(z, x []Limb, s uint) (c Limb) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	ŝ := LimbBits - s
	n := len(z) - 1
	w1 := x[n]
	c = w1 >> ŝ
	for i := n; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>ŝ
	}
	z[0] = w1 << s
	return c
}

// shrVU sets z = x >> s for s < LimbBits and returns the bits shifted out of
// the bottom limb, left-aligned.
func shrVU(z, x []Limb, s uint) (c Limb) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	ŝ := LimbBits - s
	w1 := x[0]
	c = w1 << ŝ
	for i := 0; i < len(z)-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<ŝ
	}
	z[len(z)-1] = w1 >> s
	return c
}

// mulAddVWW sets z = x*y + r and returns the high limb.
func mulAddVWW(z, x []Limb, y, r Limb) (c Limb) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := limbMul(x[i], y)
		var cc Limb
		z[i], cc = limbAdd(lo, c, 0)
		c = hi + cc
	}
	return c
}

// addMulVVW sets z = z + x*y and returns the high limb.
func addMulVVW(z, x []Limb, y Limb) (c Limb) {
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := limbMul(x[i], y)
		var c1, c2 Limb
		lo, c1 = limbAdd(lo, z[i], 0)
		z[i], c2 = limbAdd(lo, c, 0)
		c = hi + c1 + c2
	}
	return c
}

// divWVW sets z = (xn<<W | x) / y and returns the remainder. xn must be less
// than y.
func divWVW(z []Limb, xn Limb, x []Limb, y Limb) (r Limb) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = limbDiv(r, x[i], y)
	}
	return r
}

// limbsSignificantLen returns the length of xs without its most significant
// zero limbs.
func limbsSignificantLen(xs []Limb) int {
	i := len(xs)
	for i > 0 && xs[i-1] == 0 {
		i--
	}
	return i
}

func limbsNorm(xs []Limb) []Limb {
	return xs[:limbsSignificantLen(xs)]
}

// limbsCmp compares two normalized limb slices.
func limbsCmp(xs, ys []Limb) int {
	if len(xs) != len(ys) {
		if len(xs) < len(ys) {
			return -1
		}
		return 1
	}
	return limbsCmpSameLen(xs, ys)
}

func limbsCmpSameLen(xs, ys []Limb) int {
	for i := len(xs) - 1; i >= 0; i-- {
		if xs[i] != ys[i] {
			if xs[i] < ys[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func limbsIsZero(xs []Limb) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

// limbsAdd returns xs + ys in a new slice.
func limbsAdd(xs, ys []Limb) []Limb {
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}
	z := make([]Limb, len(xs)+1)
	c := addVV(z, xs, ys)
	c = addVW(z[len(ys):len(xs)], xs[len(ys):], c)
	z[len(xs)] = c
	return limbsNorm(z)
}

// limbsSub returns xs - ys and whether the subtraction borrowed. On borrow
// the returned limbs are the two's complement wrap and should be discarded.
func limbsSub(xs, ys []Limb) ([]Limb, bool) {
	if len(xs) < len(ys) {
		return nil, true
	}
	z := make([]Limb, len(xs))
	c := subVV(z, xs, ys)
	c = subVW(z[len(ys):], xs[len(ys):], c)
	return limbsNorm(z), c != 0
}

// limbsSubLimbInPlace subtracts y from xs and returns the borrow.
func limbsSubLimbInPlace(xs []Limb, y Limb) bool {
	return subVW(xs, xs, y) != 0
}

// limbsAddLimbInPlace adds y to xs and returns the carry.
func limbsAddLimbInPlace(xs []Limb, y Limb) Limb {
	return addVW(xs, xs, y)
}

// limbsMul returns xs * ys using the schoolbook method.
func limbsMul(xs, ys []Limb) []Limb {
	if len(xs) == 0 || len(ys) == 0 {
		return nil
	}
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}
	z := make([]Limb, len(xs)+len(ys))
	for i, y := range ys {
		if y != 0 {
			z[len(xs)+i] = addMulVVW(z[i:i+len(xs)], xs, y)
		}
	}
	return limbsNorm(z)
}

// limbsShl returns xs << s.
func limbsShl(xs []Limb, s uint64) []Limb {
	if len(xs) == 0 {
		return nil
	}
	nw := int(s >> limbLogBits)
	z := make([]Limb, len(xs)+nw+1)
	z[len(xs)+nw] = shlVU(z[nw:len(xs)+nw], xs, uint(s%LimbBits))
	return limbsNorm(z)
}

// limbsShr returns xs >> s.
func limbsShr(xs []Limb, s uint64) []Limb {
	nw := s >> limbLogBits
	if nw >= uint64(len(xs)) {
		return nil
	}
	z := make([]Limb, len(xs)-int(nw))
	shrVU(z, xs[nw:], uint(s%LimbBits))
	return limbsNorm(z)
}

// limbsDivModLimb returns xs / y and xs % y. y must not be zero.
func limbsDivModLimb(xs []Limb, y Limb) ([]Limb, Limb) {
	q := make([]Limb, len(xs))
	r := divWVW(q, 0, xs, y)
	return limbsNorm(q), r
}

// limbsDivMod returns the quotient and remainder of us / vs using Knuth's
// Algorithm D (TAOCP vol. 2, 4.3.1). vs must be normalized and have at least
// two limbs, and len(us) >= len(vs).
func limbsDivMod(us, vs []Limb) (q, r []Limb) {
	n := len(vs)
	m := len(us) - n

	// Normalize so the divisor's top bit is set; quotient digit estimates are
	// then off by at most one after the two-limb correction below.
	s := limbLeadingZeros(vs[n-1])
	vn := make([]Limb, n)
	shlVU(vn, vs, s)
	un := make([]Limb, len(us)+1)
	un[len(us)] = shlVU(un[:len(us)], us, s)

	q = make([]Limb, m+1)
	qv := make([]Limb, n+1)
	vn1, vn2 := vn[n-1], vn[n-2]

	for j := m; j >= 0; j-- {
		ujn, ujn1, ujn2 := un[j+n], un[j+n-1], un[j+n-2]

		var qhat, rhat Limb
		rhatOverflow := false
		if ujn >= vn1 {
			qhat = MaxLimb
			var c Limb
			rhat, c = limbAdd(ujn1, vn1, 0)
			rhatOverflow = c != 0
		} else {
			qhat, rhat = limbDiv(ujn, ujn1, vn1)
		}
		for !rhatOverflow {
			x1, x0 := limbMul(qhat, vn2)
			if x1 < rhat || (x1 == rhat && x0 <= ujn2) {
				break
			}
			qhat--
			var c Limb
			rhat, c = limbAdd(rhat, vn1, 0)
			rhatOverflow = c != 0
		}

		qv[n] = mulAddVWW(qv[:n], vn, qhat, 0)
		if subVV(un[j:j+n+1], un[j:j+n+1], qv) != 0 {
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	r = make([]Limb, n)
	shrVU(r, un[:n], s)
	return limbsNorm(q), limbsNorm(r)
}
