package bignum

// OverflowingAdd returns x + y modulo 2^W and whether the addition carried.
func OverflowingAdd[T Unsigned](x, y T) (T, bool) {
	s := x + y
	return s, s < x
}

// OverflowingSub returns x - y modulo 2^W and whether the subtraction
// borrowed.
func OverflowingSub[T Unsigned](x, y T) (T, bool) {
	return x - y, y > x
}

func WrappingAdd[T Unsigned](x, y T) T { return x + y }
func WrappingSub[T Unsigned](x, y T) T { return x - y }

// CheckedAdd returns x + y, or false if the sum does not fit in T.
func CheckedAdd[T Unsigned](x, y T) (T, bool) {
	s, c := OverflowingAdd(x, y)
	return s, !c
}

// CheckedMul returns x * y, or false if the product does not fit in T.
func CheckedMul[T Unsigned](x, y T) (T, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	p := x * y
	if p/y != x {
		return p, false
	}
	return p, true
}

// XXAddYYToZZ adds two double-width numbers, x1:x0 and y1:y0, most
// significant half first. The sum wraps modulo 2^(2W).
func XXAddYYToZZ[T Unsigned](x1, x0, y1, y0 T) (z1, z0 T) {
	z0 = x0 + y0
	z1 = x1 + y1
	if z0 < x0 {
		z1++
	}
	return z1, z0
}

// XXSubYYToZZ subtracts y1:y0 from x1:x0. The difference wraps modulo
// 2^(2W).
func XXSubYYToZZ[T Unsigned](x1, x0, y1, y0 T) (z1, z0 T) {
	z0 = x0 - y0
	z1 = x1 - y1
	if x0 < y0 {
		z1--
	}
	return z1, z0
}

// XXXAddYYYToZZZ adds two triple-width numbers, most significant word first:
//
//	x2*2^(2W) + x1*2^W + x0
//
// The sum wraps modulo 2^(3W); overflow out of z2 is discarded, not reported.
func XXXAddYYYToZZZ[T Unsigned](x2, x1, x0, y2, y1, y0 T) (z2, z1, z0 T) {
	var carry1, carry2 bool
	z0, carry1 = OverflowingAdd(x0, y0)
	z1, carry2 = OverflowingAdd(x1, y1)
	if carry1 {
		// z1 can only wrap here if it was MAX, in which case carry2 was false.
		z1++
		if z1 == 0 {
			carry2 = true
		}
	}
	z2 = x2 + y2
	if carry2 {
		z2++
	}
	return z2, z1, z0
}

// XXXSubYYYToZZZ subtracts y2:y1:y0 from x2:x1:x0, wrapping modulo 2^(3W).
func XXXSubYYYToZZZ[T Unsigned](x2, x1, x0, y2, y1, y0 T) (z2, z1, z0 T) {
	var borrow1, borrow2 bool
	z0, borrow1 = OverflowingSub(x0, y0)
	z1, borrow2 = OverflowingSub(x1, y1)
	if borrow1 {
		if z1 == 0 {
			borrow2 = true
		}
		z1--
	}
	z2 = x2 - y2
	if borrow2 {
		z2--
	}
	return z2, z1, z0
}

// XXXXAddYYYYToZZZZ adds two quadruple-width numbers, most significant word
// first, wrapping modulo 2^(4W).
func XXXXAddYYYYToZZZZ[T Unsigned](x3, x2, x1, x0, y3, y2, y1, y0 T) (z3, z2, z1, z0 T) {
	var carry1, carry2, carry3 bool
	z0, carry1 = OverflowingAdd(x0, y0)
	z1, carry2 = OverflowingAdd(x1, y1)
	if carry1 {
		z1++
		if z1 == 0 {
			carry2 = true
		}
	}
	z2, carry3 = OverflowingAdd(x2, y2)
	if carry2 {
		z2++
		if z2 == 0 {
			carry3 = true
		}
	}
	z3 = x3 + y3
	if carry3 {
		z3++
	}
	return z3, z2, z1, z0
}

// XXXXSubYYYYToZZZZ subtracts y3:y2:y1:y0 from x3:x2:x1:x0, wrapping modulo
// 2^(4W).
func XXXXSubYYYYToZZZZ[T Unsigned](x3, x2, x1, x0, y3, y2, y1, y0 T) (z3, z2, z1, z0 T) {
	var borrow1, borrow2, borrow3 bool
	z0, borrow1 = OverflowingSub(x0, y0)
	z1, borrow2 = OverflowingSub(x1, y1)
	if borrow1 {
		if z1 == 0 {
			borrow2 = true
		}
		z1--
	}
	z2, borrow3 = OverflowingSub(x2, y2)
	if borrow2 {
		if z2 == 0 {
			borrow3 = true
		}
		z2--
	}
	z3 = x3 - y3
	if borrow3 {
		z3--
	}
	return z3, z2, z1, z0
}
