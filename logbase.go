package bignum

func checkLogArgs(xZero bool) {
	if xZero {
		panic("bignum: logarithm of zero")
	}
}

func checkLogBase[T Unsigned](base T) {
	if base < 2 {
		panic("bignum: logarithm base must be at least 2")
	}
}

// FloorLogBase2 returns floor(log2(x)). It panics if x is zero.
func FloorLogBase2[T Unsigned](x T) uint64 {
	checkLogArgs(x == 0)
	return significantBits(x) - 1
}

// CeilingLogBase2 returns ceiling(log2(x)). It panics if x is zero.
func CeilingLogBase2[T Unsigned](x T) uint64 {
	f := FloorLogBase2(x)
	if isPowerOf2(x) {
		return f
	}
	return f + 1
}

// CheckedLogBase2 returns log2(x) if x is a power of 2.
func CheckedLogBase2[T Unsigned](x T) (uint64, bool) {
	f := FloorLogBase2(x)
	return f, isPowerOf2(x)
}

func checkLogPow(pow uint64) {
	if pow == 0 {
		panic("bignum: logarithm base must be at least 2")
	}
}

// FloorLogBasePowerOf2 returns floor(log_{2^pow}(x)).
func FloorLogBasePowerOf2[T Unsigned](x T, pow uint64) uint64 {
	checkLogPow(pow)
	return FloorLogBase2(x) / pow
}

// CeilingLogBasePowerOf2 returns ceiling(log_{2^pow}(x)).
func CeilingLogBasePowerOf2[T Unsigned](x T, pow uint64) uint64 {
	checkLogPow(pow)
	q, _ := DivRound(CeilingLogBase2(x), pow, Ceiling)
	return q
}

// CheckedLogBasePowerOf2 returns log_{2^pow}(x) if x is an exact power of
// 2^pow.
func CheckedLogBasePowerOf2[T Unsigned](x T, pow uint64) (uint64, bool) {
	checkLogPow(pow)
	l, ok := CheckedLogBase2(x)
	if !ok || l%pow != 0 {
		return 0, false
	}
	return l / pow, true
}

// FloorLogBase returns floor(log_base(x)). It panics if x is zero or base is
// less than 2. Bases that are powers of 2 are answered from the bit length;
// other bases multiply up from 1.
func FloorLogBase[T Unsigned](x, base T) uint64 {
	checkLogArgs(x == 0)
	checkLogBase(base)
	if isPowerOf2(base) {
		return FloorLogBasePowerOf2(x, FloorLogBase2(base))
	}
	return floorLogBaseNaive(x, base)
}

// CeilingLogBase returns ceiling(log_base(x)).
func CeilingLogBase[T Unsigned](x, base T) uint64 {
	checkLogArgs(x == 0)
	checkLogBase(base)
	if isPowerOf2(base) {
		return CeilingLogBasePowerOf2(x, FloorLogBase2(base))
	}
	return ceilingLogBaseNaive(x, base)
}

// CheckedLogBase returns log_base(x) if x is an exact power of base.
func CheckedLogBase[T Unsigned](x, base T) (uint64, bool) {
	checkLogArgs(x == 0)
	checkLogBase(base)
	if isPowerOf2(base) {
		return CheckedLogBasePowerOf2(x, FloorLogBase2(base))
	}
	return checkedLogBaseNaive(x, base)
}

func floorLogBaseNaive[T Unsigned](x, base T) uint64 {
	checkLogArgs(x == 0)
	checkLogBase(base)
	var result uint64
	p := T(1)
	for p <= x {
		result++
		var ok bool
		if p, ok = CheckedMul(p, base); !ok {
			break
		}
	}
	return result - 1
}

func ceilingLogBaseNaive[T Unsigned](x, base T) uint64 {
	checkLogArgs(x == 0)
	checkLogBase(base)
	var result uint64
	p := T(1)
	for p < x {
		result++
		var ok bool
		if p, ok = CheckedMul(p, base); !ok {
			break
		}
	}
	return result
}

func checkedLogBaseNaive[T Unsigned](x, base T) (uint64, bool) {
	checkLogArgs(x == 0)
	checkLogBase(base)
	var result uint64
	p := T(1)
	for p < x {
		result++
		var ok bool
		if p, ok = CheckedMul(p, base); !ok {
			return 0, false
		}
	}
	if p == x {
		return result, true
	}
	return 0, false
}

func (n Natural) FloorLogBase2() uint64 {
	checkLogArgs(n.IsZero())
	return n.SignificantBits() - 1
}

func (n Natural) CeilingLogBase2() uint64 {
	f := n.FloorLogBase2()
	if n.IsPowerOf2() {
		return f
	}
	return f + 1
}

func (n Natural) CheckedLogBase2() (uint64, bool) {
	f := n.FloorLogBase2()
	return f, n.IsPowerOf2()
}

func (n Natural) FloorLogBasePowerOf2(pow uint64) uint64 {
	checkLogPow(pow)
	return n.FloorLogBase2() / pow
}

func (n Natural) CeilingLogBasePowerOf2(pow uint64) uint64 {
	checkLogPow(pow)
	q, _ := DivRound(n.CeilingLogBase2(), pow, Ceiling)
	return q
}

func (n Natural) CheckedLogBasePowerOf2(pow uint64) (uint64, bool) {
	checkLogPow(pow)
	l, ok := n.CheckedLogBase2()
	if !ok || l%pow != 0 {
		return 0, false
	}
	return l / pow, true
}

func checkNaturalLogBase(base Natural) {
	if base.large == nil && base.small < 2 {
		panic("bignum: logarithm base must be at least 2")
	}
}

// FloorLogBase returns floor(log_base(n)). It panics if n is zero or base is
// less than 2.
func (n Natural) FloorLogBase(base Natural) uint64 {
	checkLogArgs(n.IsZero())
	checkNaturalLogBase(base)
	if base.IsPowerOf2() {
		return n.FloorLogBasePowerOf2(base.FloorLogBase2())
	}
	return n.floorLogBaseNaive(base)
}

func (n Natural) CeilingLogBase(base Natural) uint64 {
	checkLogArgs(n.IsZero())
	checkNaturalLogBase(base)
	if base.IsPowerOf2() {
		return n.CeilingLogBasePowerOf2(base.FloorLogBase2())
	}
	return n.ceilingLogBaseNaive(base)
}

// CheckedLogBase returns log_base(n) if n is an exact power of base.
func (n Natural) CheckedLogBase(base Natural) (uint64, bool) {
	checkLogArgs(n.IsZero())
	checkNaturalLogBase(base)
	if base.IsPowerOf2() {
		return n.CheckedLogBasePowerOf2(base.FloorLogBase2())
	}
	return n.checkedLogBaseNaive(base)
}

func (n Natural) floorLogBaseNaive(base Natural) uint64 {
	var result uint64
	p := Natural{small: 1}
	for p.Cmp(n) <= 0 {
		result++
		p = p.Mul(base)
	}
	return result - 1
}

// ceilingLogBaseNaivePower returns ceiling(log_base(n)) and the first power
// of base not below n.
func (n Natural) ceilingLogBaseNaivePower(base Natural) (uint64, Natural) {
	var result uint64
	p := Natural{small: 1}
	for p.Cmp(n) < 0 {
		result++
		p = p.Mul(base)
	}
	return result, p
}

func (n Natural) ceilingLogBaseNaive(base Natural) uint64 {
	result, _ := n.ceilingLogBaseNaivePower(base)
	return result
}

func (n Natural) checkedLogBaseNaive(base Natural) (uint64, bool) {
	result, p := n.ceilingLogBaseNaivePower(base)
	if p.Equal(n) {
		return result, true
	}
	return 0, false
}
