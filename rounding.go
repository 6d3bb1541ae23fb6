package bignum

import (
	"github.com/pkg/errors"
)

// RoundingMode selects how a result that is not exactly representable is
// mapped to a representable one. Every lossy operation in this package takes
// one.
type RoundingMode uint8

const (
	// Down rounds toward zero.
	Down RoundingMode = iota

	// Up rounds away from zero.
	Up

	// Floor rounds toward negative infinity.
	Floor

	// Ceiling rounds toward positive infinity.
	Ceiling

	// Nearest rounds to the closest representable value. Exact ties go to the
	// value whose least significant bit is zero.
	Nearest

	// Exact asserts that the result is representable; operations panic if it
	// is not.
	Exact
)

// RoundingModes lists every rounding mode, in declaration order.
var RoundingModes = []RoundingMode{Down, Up, Floor, Ceiling, Nearest, Exact}

var roundingModeNames = [...]string{
	Down:    "Down",
	Up:      "Up",
	Floor:   "Floor",
	Ceiling: "Ceiling",
	Nearest: "Nearest",
	Exact:   "Exact",
}

// Neg returns the rounding mode that satisfies f(x, rm.Neg()) == -f(-x, rm)
// for odd functions f: Floor and Ceiling swap, the others are unchanged.
func (rm RoundingMode) Neg() RoundingMode {
	switch rm {
	case Floor:
		return Ceiling
	case Ceiling:
		return Floor
	default:
		return rm
	}
}

func (rm RoundingMode) String() string {
	if int(rm) < len(roundingModeNames) {
		return roundingModeNames[rm]
	}
	return "RoundingMode(?)"
}

// ParseRoundingMode accepts the names returned by RoundingMode.String.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for rm, name := range roundingModeNames {
		if s == name {
			return RoundingMode(rm), nil
		}
	}
	return 0, errors.Errorf("bignum: invalid rounding mode %q", s)
}

func (rm RoundingMode) MarshalText() ([]byte, error) {
	if int(rm) >= len(roundingModeNames) {
		return nil, errors.Errorf("bignum: invalid rounding mode %d", uint8(rm))
	}
	return []byte(rm.String()), nil
}

func (rm *RoundingMode) UnmarshalText(bts []byte) error {
	v, err := ParseRoundingMode(string(bts))
	if err != nil {
		return err
	}
	*rm = v
	return nil
}

// Ordering reports how a rounded result compares with the exact one.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Reverse swaps Less and Greater. It is the ordering of -result against
// -exact.
func (o Ordering) Reverse() Ordering { return -o }

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(?)"
	}
}

// orderingOf converts a Cmp-style int to an Ordering.
func orderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}
