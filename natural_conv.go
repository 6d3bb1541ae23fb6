package bignum

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// NaturalFromString parses s in the given base, using the same rules as
// big.Int.SetString. A base of 0 accepts a prefix. Negative values are
// rejected.
func NaturalFromString(s string, base int) (Natural, error) {
	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Natural{}, errors.Errorf("bignum: natural string %q invalid", s)
	}
	n, ok := NaturalFromBigInt(b)
	if !ok {
		return Natural{}, errors.Errorf("bignum: natural string %q is negative", s)
	}
	return n, nil
}

// MustNaturalFromString is like NaturalFromString but panics on error.
func MustNaturalFromString(s string, base int) Natural {
	n, err := NaturalFromString(s, base)
	if err != nil {
		panic(err)
	}
	return n
}

// NaturalFromBigInt creates a Natural from a big.Int. It returns false if v is
// negative.
func NaturalFromBigInt(v *big.Int) (out Natural, ok bool) {
	if v.Sign() < 0 {
		return Natural{}, false
	}
	words := v.Bits()

	switch {
	case intSize == LimbBits:
		xs := make([]Limb, len(words))
		for i, w := range words {
			xs[i] = Limb(w)
		}
		return FromOwnedLimbsAsc(xs), true

	case intSize == 64 && LimbBits == 32:
		xs := make([]Limb, 2*len(words))
		for i, w := range words {
			xs[2*i] = Limb(uint64(w))
			xs[2*i+1] = Limb(uint64(w) >> 32)
		}
		return FromOwnedLimbsAsc(xs), true

	case intSize == 32 && LimbBits == 64:
		xs := make([]Limb, (len(words)+1)/2)
		for i, w := range words {
			xs[i/2] |= Limb(w) << (32 * uint(i%2))
		}
		return FromOwnedLimbsAsc(xs), true

	default:
		panic("bignum: unsupported word size")
	}
}

// IntoBigInt sets b to n.
func (n Natural) IntoBigInt(b *big.Int) {
	xs := n.limbs()

	switch {
	case intSize == LimbBits:
		words := b.Bits()
		if cap(words) < len(xs) {
			words = make([]big.Word, len(xs))
		}
		words = words[:len(xs)]
		for i, x := range xs {
			words[i] = big.Word(x)
		}
		b.SetBits(words)

	case intSize == 64 && LimbBits == 32:
		words := make([]big.Word, (len(xs)+1)/2)
		for i, x := range xs {
			words[i/2] |= big.Word(uint64(x) << (32 * uint(i%2)))
		}
		b.SetBits(words)

	case intSize == 32 && LimbBits == 64:
		words := make([]big.Word, 2*len(xs))
		for i, x := range xs {
			words[2*i] = big.Word(uint32(uint64(x)))
			words[2*i+1] = big.Word(uint32(uint64(x) >> 32))
		}
		b.SetBits(words)

	default:
		panic("bignum: unsupported word size")
	}
}

func (n Natural) AsBigInt() *big.Int {
	var v big.Int
	n.IntoBigInt(&v)
	return &v
}

func (n Natural) String() string {
	if n.large == nil {
		return strconv.FormatUint(uint64(n.small), 10)
	}

	// Peel off limbDecimalDigits digits at a time, least significant chunk
	// first.
	xs := make([]Limb, len(n.large))
	copy(xs, n.large)
	var chunks []Limb
	for len(xs) > 0 {
		r := divWVW(xs, 0, xs, limbDecimalBase)
		chunks = append(chunks, r)
		xs = limbsNorm(xs)
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(chunks[len(chunks)-1]), 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(chunks[i]), 10)
		for j := len(s); j < limbDecimalDigits; j++ {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

func (n Natural) Format(s fmt.State, c rune) {
	// big.Int already implements every verb and flag we care about.
	n.AsBigInt().Format(s, c)
}

func (n Natural) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Natural) UnmarshalText(bts []byte) (err error) {
	v, err := NaturalFromString(string(bts), 10)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Natural) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.String() + `"`), nil
}

func (n *Natural) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Errorf("bignum: natural invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := NaturalFromString(string(bts), 10)
	if err != nil {
		return errors.Wrap(err, "bignum: natural invalid JSON")
	}
	*n = v
	return nil
}

// RoundingToFloat64 converts n to the float64 nearest to it in the direction
// given by rm, and reports how the result compares with n. Values too large
// for a float64 round to math.MaxFloat64 or +Inf depending on rm: Down and
// Floor never produce infinity, Nearest and the rest do. Exact panics if n is
// not representable.
func (n Natural) RoundingToFloat64(rm RoundingMode) (float64, Ordering) {
	sb := n.SignificantBits()
	if sb <= float64MantBits {
		v, _ := n.Uint64()
		return float64(v), Equal
	}

	shift := sb - float64MantBits
	mant, o := n.ShrRound(int64(shift), rm)

	// Rounding up may carry into a 54th bit.
	if mant.SignificantBits() > float64MantBits {
		mant = mant.Shr(1)
		shift++
	}
	if shift+float64MantBits > float64MaxExp {
		switch rm {
		case Down, Floor:
			return math.MaxFloat64, Less
		case Exact:
			panic("bignum: natural is not exactly representable as a float64")
		default:
			return math.Inf(1), Greater
		}
	}
	v, _ := mant.Uint64()
	return math.Ldexp(float64(v), int(shift)), o
}

// NaturalRoundingFromFloat64 converts f to a Natural, rounding any fractional
// part with rm. It panics if f is negative, infinite or NaN.
func NaturalRoundingFromFloat64(f float64, rm RoundingMode) (Natural, Ordering) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("bignum: cannot convert a non-finite float64 to a natural")
	}
	if f < 0 {
		panic("bignum: cannot convert a negative float64 to a natural")
	}
	if f == 0 {
		return Natural{}, Equal
	}

	frac, exp := math.Frexp(f)
	mant := uint64(math.Ldexp(frac, float64MantBits))
	exp -= float64MantBits

	// f == mant * 2^exp. A negative exp is a rounded right shift; the
	// fraction bits shifted out decide the rounding.
	return NaturalFrom64(mant).ShlRound(int64(exp), rm)
}
