package random

import (
	"math/bits"

	"github.com/shabbyrobe/go-bignum"
)

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// meanToPWithMin converts a mean of n/d, for a geometric distribution that
// starts counting at min, into the success probability of each trial,
// returned as the pair (p, p+q) accepted by NewWeightedBools.
//
// It panics if d is zero, if the mean does not exceed min, or if the reduced
// fraction's numerator and denominator sum past 64 bits.
func meanToPWithMin(min, n, d uint64) (uint64, uint64) {
	if d == 0 {
		panic("random: mean denominator must be positive")
	}
	g := gcd(n, d)
	n, d = n/g, d/g

	hi, md := bits.Mul64(min, d)
	if hi != 0 {
		panic("random: mean is too large")
	}
	if md >= n {
		panic("random: mean must exceed the minimum")
	}
	excess := n - md

	// The excess mean is q/p, where p is the success probability; invert it.
	p, ok := bignum.CheckedAdd(d, excess)
	if !ok {
		panic("random: mean numerator and denominator are too large")
	}
	return d, p
}

// Geometric generates geometrically distributed values: the number of failed
// weighted trials before the first success, counted from min. Values past max
// wrap back to min.
type Geometric[T bignum.Unsigned] struct {
	xs       *WeightedBools
	min, max T
}

// NewGeometricUnsigneds generates values of T with mean n/d. It panics if n
// or d is zero.
func NewGeometricUnsigneds[T bignum.Unsigned](seed Seed, n, d uint64) *Geometric[T] {
	if n == 0 {
		panic("random: mean numerator must be positive")
	}
	return NewGeometricUnsignedInclusiveRange[T](seed, 0, ^T(0), n, d)
}

// NewGeometricPositiveUnsigneds generates positive values of T with mean n/d,
// which must exceed 1.
func NewGeometricPositiveUnsigneds[T bignum.Unsigned](seed Seed, n, d uint64) *Geometric[T] {
	return NewGeometricUnsignedInclusiveRange[T](seed, 1, ^T(0), n, d)
}

// NewGeometricUnsignedInclusiveRange generates values in [min, max] whose
// unbounded mean would be n/d.
func NewGeometricUnsignedInclusiveRange[T bignum.Unsigned](seed Seed, min, max T, n, d uint64) *Geometric[T] {
	if min > max {
		panic("random: empty range")
	}
	p, pq := meanToPWithMin(uint64(min), n, d)
	return &Geometric[T]{
		xs:  NewWeightedBools(seed, p, pq),
		min: min,
		max: max,
	}
}

func (g *Geometric[T]) Next() T {
	failures := g.min
	for {
		if g.xs.Next() {
			return failures
		}
		if failures == g.max {
			failures = g.min
		} else {
			failures++
		}
	}
}

// GeometricSigned generates signed values whose magnitudes are geometrically
// distributed, with either sign equally likely.
type GeometricSigned[S bignum.Signed] struct {
	bs       *Bools
	xs       *WeightedBools
	min, max S
	nonzero  bool
}

// NewGeometricSigneds generates values of S whose absolute values have mean
// n/d. Zero is as likely as it would be for a single sign.
func NewGeometricSigneds[S bignum.Signed](seed Seed, n, d uint64) *GeometricSigned[S] {
	if n == 0 {
		panic("random: mean numerator must be positive")
	}
	return newGeometricSigned[S](seed, 0, n, d, false)
}

// NewGeometricNonzeroSigneds generates non-zero values of S whose absolute
// values have mean n/d, which must exceed 1.
func NewGeometricNonzeroSigneds[S bignum.Signed](seed Seed, n, d uint64) *GeometricSigned[S] {
	return newGeometricSigned[S](seed, 1, n, d, true)
}

func newGeometricSigned[S bignum.Signed](seed Seed, absMin, n, d uint64, nonzero bool) *GeometricSigned[S] {
	p, pq := meanToPWithMin(absMin, n, d)
	var min S = 1
	min <<= bignum.SignedBitWidth[S]() - 1
	return &GeometricSigned[S]{
		bs:      NewBools(seed.Fork("bs")),
		xs:      NewWeightedBools(seed.Fork("xs"), p, pq),
		min:     min,
		max:     ^min,
		nonzero: nonzero,
	}
}

func (g *GeometricSigned[S]) Next() S {
	if g.nonzero {
		for {
			if g.bs.Next() {
				for result := S(1); ; result++ {
					if g.xs.Next() {
						return result
					} else if result == g.max {
						break
					}
				}
			} else {
				for result := S(-1); ; result-- {
					if g.xs.Next() {
						return result
					} else if result == g.min {
						break
					}
				}
			}
		}
	}

	for {
		positive := g.bs.Next()
		var result S
		for {
			if g.xs.Next() {
				// Zero can be reached from either side; flip again so it is
				// not counted twice.
				if result == 0 && g.bs.Next() {
					break
				}
				return result
			}
			if positive {
				if result == g.max {
					break
				}
				result++
			} else {
				if result == g.min {
					break
				}
				result--
			}
		}
	}
}
